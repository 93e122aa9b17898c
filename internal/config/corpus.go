package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/sandevgo/memberqa/pkg/log"
)

type CorpusConfig struct {
	URL      string        `env:"MESSAGES_API_URL" envDefault:"http://november7-730026606190.europe-west1.run.app/messages/"`
	Timeout  time.Duration `env:"MESSAGES_TIMEOUT" envDefault:"10s"`
	Retries  int           `env:"MESSAGES_RETRIES" envDefault:"2"`
	MaxBytes int64         `env:"MESSAGES_MAX_BYTES" envDefault:"67108864"`
}

func NewCorpusConfig(ctx context.Context) *CorpusConfig {
	c := &CorpusConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Corpus config")
	}
	return c
}

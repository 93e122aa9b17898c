package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/sandevgo/memberqa/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"QA_RUNTIME_PATH" envDefault:".memberqa"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	// Number of ranked messages handed to extraction and completion.
	TopK int `env:"TOP_K" envDefault:"8"`

	JournalEnabled bool `env:"JOURNAL_ENABLED" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "memberqa.db")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

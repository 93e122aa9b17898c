package config

import (
	"context"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/sandevgo/memberqa/pkg/log"
)

// Switch is a boolean flag that is on only for 1, true, yes or on.
// Any other value, including typos, leaves it off.
type Switch bool

func (s *Switch) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "1", "true", "yes", "on":
		*s = true
	default:
		*s = false
	}
	return nil
}

type CompletionConfig struct {
	Enabled  Switch `env:"USE_LLM" envDefault:"false"`
	Provider string `env:"LLM_PROVIDER" envDefault:"ollama"`

	OllamaHost  string `env:"OLLAMA_HOST" envDefault:"http://localhost:11434"`
	OllamaModel string `env:"OLLAMA_MODEL" envDefault:"llama3"`

	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`
	OpenRouterModel  string `env:"OPENROUTER_MODEL" envDefault:"google/gemma-3-27b-it:free"`

	Timeout       time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"20s"`
	MaxChars      int           `env:"COMPLETION_MAX_CHARS" envDefault:"300"`
	ContextTokens int           `env:"COMPLETION_CONTEXT_TOKENS" envDefault:"2048"`
}

func NewCompletionConfig(ctx context.Context) *CompletionConfig {
	c := &CompletionConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Completion config")
	}
	return c
}

package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/memberqa/internal/config"
	"github.com/sandevgo/memberqa/internal/core"
	"github.com/sandevgo/memberqa/pkg/log"
)

// NewGenerator creates the text generator selected by configuration.
func NewGenerator(ctx context.Context, cfg *config.CompletionConfig) (core.Generator, error) {
	switch cfg.Provider {
	case "", "ollama":
		log.FromCtx(ctx).Info().Str("provider", "ollama").Str("model", cfg.OllamaModel).Msg("starting llm provider")
		return NewOllama(cfg.OllamaHost, cfg.OllamaModel), nil
	case "openai":
		log.FromCtx(ctx).Info().Str("provider", "openai").Str("model", cfg.OpenAIModel).Msg("starting llm provider")
		return NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case "openrouter":
		if cfg.OpenRouterAPIKey == "" {
			return nil, fmt.Errorf("openrouter requires OPENROUTER_API_KEY")
		}
		log.FromCtx(ctx).Info().Str("provider", "openrouter").Str("model", cfg.OpenRouterModel).Msg("starting llm provider")
		return NewOpenRouter(cfg.OpenRouterAPIKey, cfg.OpenRouterModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}

// NewCompleter returns nil when completion is disabled.
func NewCompleter(ctx context.Context, cfg *config.CompletionConfig) (core.Completer, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	gen, err := NewGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewGrounded(gen, GroundedConfig{
		Timeout:       cfg.Timeout,
		MaxChars:      cfg.MaxChars,
		ContextTokens: cfg.ContextTokens,
	}), nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sandevgo/memberqa/internal/config"
	"github.com/sandevgo/memberqa/internal/core"
	"github.com/sandevgo/memberqa/internal/providers/corpus"
	"github.com/sandevgo/memberqa/internal/providers/llm"
	"github.com/sandevgo/memberqa/internal/service/qa"
	"github.com/sandevgo/memberqa/internal/storage/sqlite"
	"github.com/sandevgo/memberqa/pkg/log"
	"github.com/sandevgo/memberqa/pkg/retry"
	"github.com/sandevgo/memberqa/pkg/srv"
)

// NewPipeline wires the ask pipeline from configuration. The returned
// services only release resources and must be shut down by the caller.
func NewPipeline(ctx context.Context, appCfg *config.AppConfig) (*qa.Pipeline, []srv.Service) {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// 1. Configuration
	corpusCfg := config.NewCorpusConfig(ctx)
	completionCfg := config.NewCompletionConfig(ctx)

	// 2. Corpus
	retryCfg := retry.NewDefaultConfig()
	retryCfg.MaxRetries = corpusCfg.Retries
	client := corpus.NewClient(corpus.ClientConfig{
		URL:      corpusCfg.URL,
		Timeout:  corpusCfg.Timeout,
		MaxBytes: corpusCfg.MaxBytes,
		Retry:    retryCfg,
	})
	opts := []qa.Option{qa.WithTopK(appCfg.TopK)}

	// 3. Completion fallback
	completer, err := llm.NewCompleter(ctx, completionCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize completion provider")
	}
	if completer != nil {
		opts = append(opts, qa.WithCompleter(completer))
	}

	// 4. Journal
	if appCfg.JournalEnabled {
		journal, cleanup, err := initJournal(ctx, appCfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize journal")
		}
		services = append(services, cleanup)
		opts = append(opts, qa.WithJournal(journal))
	}

	logger.Debug().
		Str("messages_url", corpusCfg.URL).
		Bool("completion", completer != nil).
		Bool("journal", appCfg.JournalEnabled).
		Int("top_k", appCfg.TopK).
		Msg("pipeline configured")

	return qa.NewPipeline(corpus.NewCache(client), opts...), services
}

func initJournal(ctx context.Context, cfg *config.AppConfig) (core.JournalRepository, srv.Service, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return sqlite.NewJournal(db), srv.NewCleanup(db.Close), nil
}

func initEnv(runtimePath string) error {
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return nil
}

func shutdown(ctx context.Context, services []srv.Service) {
	for _, service := range services {
		if err := service.Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", service)
		}
	}
}

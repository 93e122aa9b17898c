package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sandevgo/memberqa/internal/config"
	"github.com/sandevgo/memberqa/internal/transport/api"
	"github.com/sandevgo/memberqa/pkg/log"
	"github.com/sandevgo/memberqa/pkg/srv"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP query service",
	Long:  `Serves POST /ask, POST /refresh, GET /health and GET /metrics until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting memberqa")

		appCfg := config.NewAppConfig(ctx)
		pipeline, services := NewPipeline(ctx, appCfg)
		services = append([]srv.Service{api.NewServer(ctx, appCfg.HTTPAddr, pipeline)}, services...)

		// Start services
		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("memberqa has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

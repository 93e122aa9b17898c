package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sandevgo/memberqa/internal/config"
	"github.com/sandevgo/memberqa/internal/transport/mcp"
	"github.com/sandevgo/memberqa/pkg/log"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the ask_member tool over MCP stdio",
	Long:  `Runs an MCP server on stdin/stdout. Logs go to stderr so they never corrupt the protocol stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx, log.WithOutput(os.Stderr))
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)
		pipeline, services := NewPipeline(ctx, appCfg)
		defer shutdown(ctx, services)

		return mcp.NewServer(pipeline).Serve(ctx, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

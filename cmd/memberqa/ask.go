package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandevgo/memberqa/internal/config"
	"github.com/sandevgo/memberqa/internal/service/ui"
	"github.com/sandevgo/memberqa/internal/transport/cli"
	"github.com/sandevgo/memberqa/pkg/log"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question, or start an interactive session without arguments",
	Example: `  memberqa ask "When is Layla Kawaguchi's trip?"
  memberqa ask`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx, log.WithOutput(os.Stderr))
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)
		pipeline, services := NewPipeline(ctx, appCfg)
		defer shutdown(ctx, services)

		if len(args) > 0 {
			res, err := pipeline.Ask(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderResult(res))
			return nil
		}

		repl, err := cli.NewReadLine(pipeline, appCfg.GetRuntimePath())
		if err != nil {
			return fmt.Errorf("failed to start readline: %w", err)
		}
		defer repl.Shutdown(ctx)

		return repl.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

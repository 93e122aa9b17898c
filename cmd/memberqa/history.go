package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandevgo/memberqa/internal/config"
	"github.com/sandevgo/memberqa/internal/service/ui"
	"github.com/sandevgo/memberqa/pkg/log"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently asked questions from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), log.WithOutput(os.Stderr))
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)
		journal, cleanup, err := initJournal(ctx, appCfg)
		if err != nil {
			return err
		}
		defer cleanup.Shutdown(ctx)

		entries, err := journal.Recent(ctx, historyLimit)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderJournal(entries))
		if !appCfg.JournalEnabled {
			log.FromCtx(ctx).Info().Msg("journal is disabled; set JOURNAL_ENABLED=true to record new questions")
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

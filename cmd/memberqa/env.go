package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandevgo/memberqa/internal/config"
	"github.com/sandevgo/memberqa/pkg/env"
	"github.com/sandevgo/memberqa/pkg/log"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the effective configuration as a .env file",
	Long: `Prints every non-empty setting in .env format. Save the output to
$QA_RUNTIME_PATH/.env to make it the default for later runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), log.WithOutput(os.Stderr))
		defer flushLog()

		sections := []struct {
			title string
			cfg   any
		}{
			{"app", config.NewAppConfig(ctx)},
			{"corpus", config.NewCorpusConfig(ctx)},
			{"completion", config.NewCompletionConfig(ctx)},
		}

		out := cmd.OutOrStdout()
		for i, s := range sections {
			body, err := env.MarshalEnv(s.cfg)
			if err != nil {
				return fmt.Errorf("marshal %s config: %w", s.title, err)
			}
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# %s\n%s", s.title, body)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

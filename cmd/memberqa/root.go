package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandevgo/memberqa/internal/config"
	"github.com/sandevgo/memberqa/internal/service/ui"
	"github.com/sandevgo/memberqa/pkg/log"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "memberqa",
	Short: "memberqa answers questions about members from their own messages",
	Long: `memberqa resolves the member named in a question, ranks that member's messages
and answers only from them, optionally falling back to a grounded LLM completion.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initEnv(config.GetRuntimePath())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context, opts ...log.Option) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	opts = append([]log.Option{log.WithJSON(os.Getenv("LOG_FORMAT") == "json")}, opts...)
	return log.NewContextWithLogger(ctx, isDebug, opts...)
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{StyleFlag (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/memberqa/internal/core"
	"github.com/sandevgo/memberqa/internal/service/ui"
	"github.com/sandevgo/memberqa/pkg/log"
)

const cmdRefresh = ":refresh"

type Asker interface {
	Ask(ctx context.Context, question string) (core.Result, error)
	Refresh()
}

type ReadLine struct {
	asker Asker
	rl    *readline.Instance
}

func NewReadLine(asker Asker, runtimePath string) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ask> ",
		HistoryFile:     filepath.Join(runtimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		asker: asker,
		rl:    rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("Ask about a member by name. Type ':refresh' to reload messages, 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		if quit := Handle(ctx, r.asker, line, r.rl.Stdout()); quit {
			return nil
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// Handle runs one REPL line and reports whether the session should end.
func Handle(ctx context.Context, asker Asker, line string, out io.Writer) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case "exit":
		return true
	case cmdRefresh:
		asker.Refresh()
		fmt.Fprintln(out, ui.SubtleStyle.Render("Messages will be reloaded on the next question."))
		return false
	}

	res, err := asker.Ask(ctx, line)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("ask failed")
		fmt.Fprintln(out, ui.RenderError(err))
		return false
	}
	fmt.Fprintln(out, ui.RenderResult(res))
	return false
}

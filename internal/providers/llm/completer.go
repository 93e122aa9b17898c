package llm

import (
	"context"
	"strings"
	"time"

	"github.com/sandevgo/memberqa/internal/core"
	"github.com/sandevgo/memberqa/internal/metrics"
	"github.com/sandevgo/memberqa/pkg/log"
)

const (
	defaultCompletionTimeout = 20 * time.Second
	defaultMaxChars          = 300

	generateTemperature = 0.1
	generateMaxTokens   = 64
)

var generateStop = []string{"\n\n", "Messages:", "Question:"}

var abstentionPrefixes = []string{"unknown", "not specified", "not mentioned"}

type GroundedConfig struct {
	Timeout       time.Duration
	MaxChars      int
	ContextTokens int
	Counter       TokenCounter
}

// Grounded asks a generator to answer strictly from the supplied candidates.
// Every failure is reported as no answer.
type Grounded struct {
	gen core.Generator
	cfg GroundedConfig
}

func NewGrounded(gen core.Generator, cfg GroundedConfig) *Grounded {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultCompletionTimeout
	}
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = defaultMaxChars
	}
	if cfg.Counter == nil {
		cfg.Counter = CountTokens
	}
	return &Grounded{gen: gen, cfg: cfg}
}

func (g *Grounded) Complete(ctx context.Context, req core.CompletionRequest) (string, bool) {
	logger := log.FromCtx(ctx).With().Str("component", "completion").Str("intent", string(req.Intent)).Logger()

	budget := 0
	if g.cfg.ContextTokens > 0 {
		budget = g.cfg.ContextTokens - generateMaxTokens
	}
	prompt := BuildPrompt(req, budget, g.cfg.Counter)

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	out, err := g.gen.Generate(ctx, prompt, core.GenerateOptions{
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
		Stop:        generateStop,
	})
	if err != nil {
		metrics.RecordCompletion(metrics.CompletionFailed)
		logger.Warn().Err(err).Msg("completion failed")
		return "", false
	}

	answer, ok := g.clean(out)
	if !ok {
		metrics.RecordCompletion(metrics.CompletionAbstained)
		logger.Debug().Str("raw", out).Msg("completion abstained")
		return "", false
	}

	metrics.RecordCompletion(metrics.CompletionAnswered)
	logger.Debug().Str("answer", answer).Msg("completion answered")
	return answer, true
}

// clean keeps the first line of out, capped at MaxChars runes.
func (g *Grounded) clean(out string) (string, bool) {
	out = strings.TrimSpace(out)
	if out == "" || IsAbstention(out) {
		return "", false
	}

	line, _, _ := strings.Cut(out, "\n")
	line = strings.TrimSpace(line)

	if r := []rune(line); len(r) > g.cfg.MaxChars {
		line = strings.TrimSpace(string(r[:g.cfg.MaxChars]))
	}
	if line == "" {
		return "", false
	}
	return line, true
}

func IsAbstention(out string) bool {
	lower := strings.ToLower(strings.TrimSpace(out))
	for _, p := range abstentionPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

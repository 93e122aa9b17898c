// Package qa answers questions about a single member from that member's own
// messages.
package qa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/memberqa/internal/core"
	"github.com/sandevgo/memberqa/internal/metrics"
	"github.com/sandevgo/memberqa/internal/service/extract"
	"github.com/sandevgo/memberqa/internal/service/nlu"
	"github.com/sandevgo/memberqa/internal/service/rank"
	"github.com/sandevgo/memberqa/pkg/log"
)

type Pipeline struct {
	corpus    core.Corpus
	completer core.Completer
	journal   core.JournalRepository
	topK      int
}

type Option func(*Pipeline)

// WithCompleter enables the completion fallback.
func WithCompleter(c core.Completer) Option {
	return func(p *Pipeline) { p.completer = c }
}

func WithJournal(j core.JournalRepository) Option {
	return func(p *Pipeline) { p.journal = j }
}

func WithTopK(k int) Option {
	return func(p *Pipeline) {
		if k > 0 {
			p.topK = k
		}
	}
}

func NewPipeline(corpus core.Corpus, opts ...Option) *Pipeline {
	p := &Pipeline{
		corpus: corpus,
		topK:   rank.DefaultTopK,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ask returns an error only when the corpus cannot be loaded.
func (p *Pipeline) Ask(ctx context.Context, question string) (core.Result, error) {
	start := time.Now()
	question = strings.TrimSpace(question)

	snap, err := p.corpus.Load(ctx)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("corpus unavailable")
		return core.Result{}, fmt.Errorf("load corpus: %w", err)
	}

	res := p.answer(ctx, question, snap)

	log.FromCtx(ctx).Debug().
		Str("member", res.Member).
		Str("intent", string(res.Intent)).
		Str("outcome", string(res.Outcome)).
		Str("source", string(res.Source)).
		Dur("elapsed", time.Since(start)).
		Msg("ask")
	metrics.RecordAsk(string(res.Intent), string(res.Outcome), time.Since(start))
	p.record(ctx, question, res)

	return res, nil
}

func (p *Pipeline) answer(ctx context.Context, question string, snap core.Snapshot) core.Result {
	member, ok := nlu.Resolve(question, snap.Names)
	if !ok {
		return core.Result{Answer: core.AnswerNoMember, Outcome: core.OutcomeNoMember, Source: core.SourceNone}
	}

	candidates := rank.TopK(question, snap.Messages, member, p.topK)
	if len(candidates) == 0 {
		return core.Result{Answer: core.AnswerNoMember, Member: member, Outcome: core.OutcomeNoEvidence, Source: core.SourceNone}
	}

	intent := nlu.Classify(question)
	res := core.Result{Member: member, Intent: intent, Source: core.SourceNone}

	answer, found := extract.Answer(intent, candidates)
	if found {
		res.Answer, res.Source = answer, core.SourceExtract
	}

	if p.completer != nil && (intent.OpenEnded() || !found) {
		completion, ok := p.completer.Complete(ctx, core.CompletionRequest{
			Question:   question,
			Member:     member,
			Candidates: candidates,
			Intent:     intent,
		})
		if ok {
			res.Answer, res.Source = completion, core.SourceCompletion
		}
	}

	if res.Source == core.SourceNone {
		res.Answer, res.Outcome = core.AnswerNoAnswer, core.OutcomeNoAnswer
		return res
	}
	res.Outcome = core.OutcomeAnswered
	return res
}

// record journals the ask; failures never change the answer.
func (p *Pipeline) record(ctx context.Context, question string, res core.Result) {
	if p.journal == nil {
		return
	}
	err := p.journal.Record(ctx, core.JournalEntry{
		Question:  question,
		Member:    res.Member,
		Intent:    res.Intent,
		Outcome:   res.Outcome,
		Source:    res.Source,
		Answer:    res.Answer,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to journal ask")
	}
}

// Refresh drops the cached corpus so the next ask refetches it.
func (p *Pipeline) Refresh() {
	p.corpus.Invalidate()
}

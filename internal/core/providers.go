package core

import "context"

// Fetcher loads the full message corpus from the upstream API.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Message, error)
}

// Corpus serves a snapshot of the corpus, possibly cached.
type Corpus interface {
	Load(ctx context.Context) (Snapshot, error)
	Invalidate()
}

type CompletionRequest struct {
	Question   string
	Member     string
	Candidates []Message
	Intent     Intent
}

// Completer produces a grounded answer or reports that it has none.
// Implementations never surface transport failures.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, bool)
}

// Generator is a raw text completion backend.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
	Stop        []string
}

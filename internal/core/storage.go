package core

import (
	"context"
	"time"
)

type JournalRepository interface {
	Record(ctx context.Context, entry JournalEntry) error
	Recent(ctx context.Context, limit int) ([]JournalEntry, error)
}

type JournalEntry struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Member    string    `json:"member"`
	Intent    Intent    `json:"intent"`
	Outcome   Outcome   `json:"outcome"`
	Source    Source    `json:"source"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

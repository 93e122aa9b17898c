package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/memberqa/internal/core"
)

// Journal stores one row per answered question.
type Journal struct {
	db *sql.DB
}

func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db}
}

func (j *Journal) Record(ctx context.Context, e core.JournalEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	query := `INSERT INTO asks (question, member, intent, outcome, source, answer, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := j.db.ExecContext(ctx, query,
		e.Question, e.Member, e.Intent, e.Outcome, e.Source, e.Answer,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert ask: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]core.JournalEntry, error) {
	query := `SELECT id, question, member, intent, outcome, source, answer, created_at FROM asks ORDER BY id DESC LIMIT ?`

	rows, err := j.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query asks: %w", err)
	}
	defer rows.Close()

	entries := make([]core.JournalEntry, 0)
	for rows.Next() {
		var e core.JournalEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Question, &e.Member, &e.Intent, &e.Outcome, &e.Source, &e.Answer, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan ask: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return entries, nil
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/memberqa/internal/core"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "nested", "memberqa.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewJournal(db)
}

func TestJournal_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	j := newTestJournal(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []core.JournalEntry{
		{Question: "When is Layla's trip?", Member: "Layla Kawaguchi", Intent: core.IntentWhen, Outcome: core.OutcomeAnswered, Source: core.SourceExtract, Answer: "The timing mentioned is next Friday.", CreatedAt: base},
		{Question: "What does Zed like?", Outcome: core.OutcomeNoMember, Source: core.SourceNone, Answer: core.AnswerNoMember, CreatedAt: base.Add(time.Minute)},
		{Question: "How many tickets for Vikram?", Member: "Vikram Desai", Intent: core.IntentCount, Outcome: core.OutcomeAnswered, Source: core.SourceExtract, Answer: "The count mentioned is 3.", CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, j.Record(ctx, e))
	}

	got, err := j.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "How many tickets for Vikram?", got[0].Question)
	assert.Equal(t, core.IntentCount, got[0].Intent)
	assert.Equal(t, core.OutcomeAnswered, got[0].Outcome)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(2*time.Minute)))
	assert.Greater(t, got[0].ID, got[1].ID)

	assert.Equal(t, core.OutcomeNoMember, got[1].Outcome)
	assert.Equal(t, "", got[1].Member)
}

func TestJournal_RecentEmpty(t *testing.T) {
	j := newTestJournal(t)

	got, err := j.Recent(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestJournal_DefaultsCreatedAt(t *testing.T) {
	ctx := context.Background()
	j := newTestJournal(t)

	require.NoError(t, j.Record(ctx, core.JournalEntry{Question: "q", Outcome: core.OutcomeNoAnswer, Source: core.SourceNone, Answer: core.AnswerNoAnswer}))

	got, err := j.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.WithinDuration(t, time.Now(), got[0].CreatedAt, time.Minute)
}

func TestNewDB_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memberqa.db")

	db, err := NewDB(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = NewDB(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()
}

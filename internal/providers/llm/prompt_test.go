package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandevgo/memberqa/internal/core"
)

func TestBuildPrompt(t *testing.T) {
	req := core.CompletionRequest{
		Question: "When is Vikram's trip?",
		Member:   "Vikram Desai",
		Intent:   core.IntentWhen,
		Candidates: []core.Message{
			{UserName: "Vikram Desai", Message: "Trip is next Friday", Timestamp: "2025-02-01T10:00:00"},
			{UserName: "Vikram Desai", Message: "Book a table", Timestamp: "2025-01-01T10:00:00"},
		},
	}

	got := BuildPrompt(req, 0, wordCounter)

	want := "You are a precise data extraction assistant.\n" +
		"Use ONLY the messages below to answer the question.\n" +
		"If the answer is not clearly stated, reply exactly with: Unknown.\n\n" +
		"Member: Vikram Desai\n" +
		"Messages:\n" +
		"- [2025-02-01T10:00:00] Vikram Desai: Trip is next Friday\n" +
		"- [2025-01-01T10:00:00] Vikram Desai: Book a table\n\n" +
		"Question: When is Vikram's trip?\n" +
		"If you answer, return only a time or date phrase.\n\n" +
		"Answer (short, no extra explanation; reply 'Unknown' if not present):"
	assert.Equal(t, want, got)
}

func TestBuildPrompt_IntentHints(t *testing.T) {
	tests := []struct {
		intent core.Intent
		hint   string
	}{
		{core.IntentWhere, "return only a location or place name."},
		{core.IntentCount, "return only a number."},
		{core.IntentFavorites, "return only the relevant item names."},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			got := BuildPrompt(core.CompletionRequest{Intent: tt.intent}, 0, wordCounter)
			assert.Contains(t, got, tt.hint)
		})
	}

	for _, intent := range []core.Intent{core.IntentWhat, core.IntentOther} {
		got := BuildPrompt(core.CompletionRequest{Intent: intent}, 0, wordCounter)
		assert.NotContains(t, got, "If you answer")
	}
}

func TestBuildPrompt_Budget(t *testing.T) {
	req := core.CompletionRequest{
		Member: "Layla Kawaguchi",
		Candidates: []core.Message{
			{UserName: "Layla Kawaguchi", Message: "top ranked message"},
			{UserName: "Layla Kawaguchi", Message: "second message with many extra words to push it over"},
			{UserName: "Layla Kawaguchi", Message: "third message"},
		},
	}

	full := BuildPrompt(req, 0, wordCounter)
	trimmed := BuildPrompt(req, wordCounter(full)-1, wordCounter)
	tiny := BuildPrompt(req, 1, wordCounter)

	assert.Contains(t, full, "third message")
	assert.NotContains(t, trimmed, "third message")
	assert.Contains(t, trimmed, "top ranked message")
	assert.Contains(t, tiny, "top ranked message", "the best candidate is always kept")
	assert.NotContains(t, tiny, "second message")
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, estimateTokens(""))
	assert.Equal(t, 1, estimateTokens("abc"))
	assert.Equal(t, 2, estimateTokens("abcde"))
}

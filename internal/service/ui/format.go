package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/memberqa/internal/core"
)

// RenderResult styles an answer; abstentions are dimmed so they read as misses.
func RenderResult(res core.Result) string {
	if res.Outcome != core.OutcomeAnswered {
		return MissStyle.Render(res.Answer)
	}
	return AnswerStyle.Render(res.Answer)
}

func RenderError(err error) string {
	return ErrorStyle.Render("Error: " + err.Error())
}

// RenderJournal lists journal entries, one block per ask.
func RenderJournal(entries []core.JournalEntry) string {
	if len(entries) == 0 {
		return SubtleStyle.Render("No questions recorded yet.")
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		meta := fmt.Sprintf("#%d %s  %s  %s/%s", e.ID, e.CreatedAt.Local().Format(time.DateTime), memberOrDash(e.Member), e.Outcome, e.Source)
		b.WriteString(SubtleStyle.Render(meta))
		b.WriteByte('\n')
		b.WriteString("  Q: " + e.Question + "\n")
		b.WriteString("  A: " + RenderResult(core.Result{Answer: e.Answer, Outcome: e.Outcome}) + "\n")
	}
	return b.String()
}

func memberOrDash(m string) string {
	if m == "" {
		return "-"
	}
	return m
}

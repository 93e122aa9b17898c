package llm

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"

	"github.com/sandevgo/memberqa/internal/core"
)

var (
	tk     *tiktoken.Tiktoken
	tkErr  error
	tkOnce sync.Once
)

// TokenCounter reports how many model tokens text occupies.
type TokenCounter func(text string) int

var intentHints = map[core.Intent]string{
	core.IntentWhen:      "If you answer, return only a time or date phrase.",
	core.IntentWhere:     "If you answer, return only a location or place name.",
	core.IntentCount:     "If you answer, return only a number.",
	core.IntentFavorites: "If you answer, return only the relevant item names.",
}

const promptHeader = `You are a precise data extraction assistant.
Use ONLY the messages below to answer the question.
If the answer is not clearly stated, reply exactly with: Unknown.`

const promptFooter = "Answer (short, no extra explanation; reply 'Unknown' if not present):"

// CountTokens uses the cl100k_base encoding and falls back to a
// four-characters-per-token estimate when the encoding cannot be loaded.
func CountTokens(text string) int {
	if text == "" {
		return 0
	}
	tkOnce.Do(func() {
		tk, tkErr = tiktoken.GetEncoding("cl100k_base")
	})
	if tkErr != nil {
		return estimateTokens(text)
	}
	return len(tk.Encode(text, nil, nil))
}

func estimateTokens(text string) int {
	return (utf8.RuneCountInString(text) + 3) / 4
}

// BuildPrompt renders the grounded prompt. When budget is positive, the
// lowest ranked candidates are dropped until the prompt fits.
func BuildPrompt(req core.CompletionRequest, budget int, count TokenCounter) string {
	if count == nil {
		count = CountTokens
	}

	cands := req.Candidates
	prompt := renderPrompt(req, cands)
	for budget > 0 && len(cands) > 1 && count(prompt) > budget {
		cands = cands[:len(cands)-1]
		prompt = renderPrompt(req, cands)
	}
	return prompt
}

func renderPrompt(req core.CompletionRequest, cands []core.Message) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Member: %s\n", req.Member)
	b.WriteString("Messages:\n")
	for i, m := range cands {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- [%s] %s: %s", m.Timestamp, m.UserName, m.Message)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Question: %s\n", req.Question)
	if hint, ok := intentHints[req.Intent]; ok {
		b.WriteString(hint)
	}
	b.WriteString("\n\n")
	b.WriteString(promptFooter)
	return b.String()
}

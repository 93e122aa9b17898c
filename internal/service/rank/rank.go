package rank

import (
	"sort"
	"strings"

	"github.com/sandevgo/memberqa/internal/core"
	"github.com/sandevgo/memberqa/internal/service/nlu"
)

const DefaultTopK = 8

type scored struct {
	msg   core.Message
	score int
}

// TopK returns up to k of member's messages ordered by lexical overlap with
// the question, newest first on ties. Timestamps are compared as strings, so
// they must share one fixed-width, zero-padded format.
func TopK(question string, corpus []core.Message, member string, k int) []core.Message {
	if k <= 0 {
		return []core.Message{}
	}

	target := nlu.Fold(member)
	tokens := nlu.Tokenize(question)

	candidates := make([]scored, 0)
	for _, m := range corpus {
		if nlu.Fold(m.UserName) != target {
			continue
		}
		candidates = append(candidates, scored{msg: m, score: Overlap(tokens, m.Message)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].msg.Timestamp > candidates[j].msg.Timestamp
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	out := make([]core.Message, len(candidates))
	for i, c := range candidates {
		out[i] = c.msg
	}
	return out
}

// Overlap counts the tokens that occur anywhere in text, including inside
// longer words.
func Overlap(tokens []string, text string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, t := range tokens {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}

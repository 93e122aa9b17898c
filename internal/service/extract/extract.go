// Package extract synthesizes short answers from ranked messages using
// intent-specific patterns.
package extract

import (
	"fmt"
	"strings"

	"github.com/sandevgo/memberqa/internal/core"
)

// finder returns a phrased answer found in text, or false.
type finder func(text string) (string, bool)

var finders = map[core.Intent]finder{
	core.IntentWhen:      findWhen,
	core.IntentWhere:     findWhere,
	core.IntentCount:     findCount,
	core.IntentFavorites: findFavorites,
}

// Answer extracts an answer for intent from candidates, which must be ordered
// most relevant first. When no pattern applies it returns the first
// candidate's text.
func Answer(intent core.Intent, candidates []core.Message) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	if find, ok := finders[intent]; ok {
		if ans, ok := find(joinMessages(candidates)); ok {
			return ans, true
		}
	}

	best := strings.TrimSpace(candidates[0].Message)
	if best == "" {
		return "", false
	}
	return best, true
}

func joinMessages(msgs []core.Message) string {
	parts := make([]string, len(msgs))
	for i, m := range msgs {
		parts[i] = m.Message
	}
	return strings.Join(parts, " ")
}

func findWhen(text string) (string, bool) {
	for _, re := range whenFamilies {
		if span := re.FindString(text); span != "" {
			return fmt.Sprintf("The timing mentioned is %s.", span), true
		}
	}
	return "", false
}

func findWhere(text string) (string, bool) {
	m := whereRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("The location mentioned is %s.", strings.TrimSpace(m[2])), true
}

func findCount(text string) (string, bool) {
	n := countRe.FindString(text)
	if n == "" {
		return "", false
	}
	return fmt.Sprintf("The count mentioned is %s.", n), true
}

func findFavorites(text string) (string, bool) {
	matches := favoritesRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", false
	}

	seen := make(map[string]struct{}, len(matches))
	uniq := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		uniq = append(uniq, m[1])
	}
	return "Some favorites mentioned are: " + strings.Join(uniq, ", "), true
}

package nlu

import (
	"strings"

	"github.com/sandevgo/memberqa/internal/core"
)

type intentRule struct {
	intent core.Intent
	match  func(q string) bool
}

// intentRules is an ordered decision list; the first matching rule wins, so
// "how many times" is a COUNT question even though it mentions time.
var intentRules = []intentRule{
	{core.IntentCount, containsAny("how many", "number of", "count")},
	{core.IntentFavorites, containsAny("favorite", "favourite", "favorites", "favourites")},
	{core.IntentWhen, containsAny("when", "what date", "what day", "which day", "time")},
	{core.IntentWhere, containsAny("where", "which city", "which country", "which restaurant", "which hotel")},
	{core.IntentWhat, hasAnyPrefix("what ", "which ")},
}

// Classify maps a question to exactly one intent, OTHER by default.
func Classify(question string) core.Intent {
	q := strings.ToLower(question)
	for _, r := range intentRules {
		if r.match(q) {
			return r.intent
		}
	}
	return core.IntentOther
}

func containsAny(cues ...string) func(string) bool {
	return func(q string) bool {
		for _, c := range cues {
			if strings.Contains(q, c) {
				return true
			}
		}
		return false
	}
}

func hasAnyPrefix(prefixes ...string) func(string) bool {
	return func(q string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(q, p) {
				return true
			}
		}
		return false
	}
}

package nlu

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// nameQuery holds the normalized forms of a question used by name matchers.
type nameQuery struct {
	lower    string
	stripped string
}

// nameMatcher returns the resolved name, or false to let the next matcher run.
type nameMatcher struct {
	name  string
	match func(q nameQuery, names []string) (string, bool)
}

// nameMatchers run in order; the first match wins.
var nameMatchers = []nameMatcher{
	{name: "full_name", match: matchFullName},
	{name: "unique_first_name", match: matchUniqueFirstName},
}

// Resolve maps a question to a single known member name. It prefers
// full names and only falls back to a first name when that first name
// identifies exactly one member.
func Resolve(question string, names []string) (string, bool) {
	lower := strings.ToLower(question)
	q := nameQuery{lower: lower, stripped: StripAccents(lower)}

	for _, m := range nameMatchers {
		if name, ok := m.match(q, names); ok {
			return name, true
		}
	}
	return "", false
}

// containsFolded tests a lowercased term against the question, retrying with
// both sides accent-stripped only when stripping changes the term.
func containsFolded(q nameQuery, term string) bool {
	if ContainsWord(q.lower, term) {
		return true
	}
	stripped := StripAccents(term)
	return stripped != term && ContainsWord(q.stripped, stripped)
}

func matchFullName(q nameQuery, names []string) (string, bool) {
	ordered := make([]string, len(names))
	copy(ordered, names)
	sort.SliceStable(ordered, func(i, j int) bool {
		return utf8.RuneCountInString(ordered[i]) > utf8.RuneCountInString(ordered[j])
	})

	for _, n := range ordered {
		if containsFolded(q, strings.ToLower(n)) {
			return n, true
		}
	}
	return "", false
}

func matchUniqueFirstName(q nameQuery, names []string) (string, bool) {
	firsts := make(map[string]struct{})
	for _, n := range names {
		first := firstWord(n)
		if first == "" {
			continue
		}
		if containsFolded(q, first) {
			firsts[first] = struct{}{}
		}
	}
	if len(firsts) != 1 {
		return "", false
	}

	var first string
	for f := range firsts {
		first = f
	}

	var match string
	count := 0
	for _, n := range names {
		if strings.HasPrefix(strings.ToLower(n), first) {
			match = n
			count++
		}
	}
	if count != 1 {
		return "", false
	}
	return match, true
}

func firstWord(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

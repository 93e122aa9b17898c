package nlu

import (
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`[a-z0-9']+`)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields("the a an to for on at in is are was were of and my your our their his her") {
		stopWords[w] = struct{}{}
	}
}

// Tokenize lowercases s and returns its alphanumeric/apostrophe runs with stop
// words removed. Repeated tokens are kept.
func Tokenize(s string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(s), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := stopWords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

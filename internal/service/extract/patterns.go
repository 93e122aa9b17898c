package extract

import "regexp"

const (
	months   = `(January|February|March|April|May|June|July|August|September|October|November|December)`
	weekdays = `(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)`
	// one or more capitalized words
	properNoun = `([A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*)*)`
)

// whenFamilies are tried in order; within a family the leftmost match wins.
var whenFamilies = []*regexp.Regexp{
	regexp.MustCompile(`\b` + months + `\b(?:\s+\d{1,2})?`),
	regexp.MustCompile(`(?i)\b(first|second|third|last)\s+week\s+of\s+` + months),
	regexp.MustCompile(`(?i)\b(this|next|last)\s+` + weekdays + `\b`),
	regexp.MustCompile(`(?i)\b(this|next|last)\s+weekend\b`),
	regexp.MustCompile(`(?i)\b(tomorrow|today|tonight)\b(?:\s+(morning|afternoon|evening|night))?`),
	regexp.MustCompile(`(?i)\b(this|next|last)\s+(week|month|year)\b`),
}

var (
	whereRe     = regexp.MustCompile(`\b(in|to|at)\s+` + properNoun)
	countRe     = regexp.MustCompile(`\b\d+\b`)
	favoritesRe = regexp.MustCompile(`\bat\s+` + properNoun)
)

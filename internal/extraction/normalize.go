// Package extraction turns raw document text into candidate keyword sets.
//
// Two interchangeable strategies implement the Extractor interface: a
// lexicon-driven extractor that also detects multi-word skill phrases, and a
// regex/stopword fallback that is guaranteed to be available. The strategy is
// chosen once when the engine is constructed.
package extraction

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	punctRe      = regexp.MustCompile(`[^\w\s-]`)
)

// CleanText normalizes raw input: whitespace runs collapse to single spaces,
// punctuation other than hyphens is dropped, and the result is lower-cased.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	text = punctRe.ReplaceAllString(text, " ")
	return strings.ToLower(text)
}

package semantic

import (
	"regexp"
	"strings"
)

// minSegmentLength filters fragments too short to carry a concept.
const minSegmentLength = 10

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// segments splits text into sentences and appends the lexicon skill phrases
// found in it. Sentences come first, in document order; phrases follow in
// lexicon order. Order matters: missing-concept reporting preserves it.
func (a *Analyzer) segments(text string) []string {
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")

	var segs []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len(s) > minSegmentLength {
			segs = append(segs, s)
		}
	}

	lower := strings.ToLower(text)
	for i, re := range a.phraseRes {
		phrase := a.phrases[i]
		if len(phrase) > 3 && len(strings.Fields(phrase)) <= 4 && re.MatchString(lower) {
			segs = append(segs, phrase)
		}
	}
	return segs
}

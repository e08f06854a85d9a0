package extraction

import "sort"

// Extractor turns raw text into a deduplicated, sorted list of lower-cased
// keyword and phrase candidates. Implementations are pure functions of their
// input: no side effects, and empty or very short input yields an empty
// result rather than an error.
type Extractor interface {
	Extract(text string) []string
}

// sorted converts a keyword set to a lexicographically sorted slice.
// Sorted output keeps downstream suggestion text reproducible.
func sorted(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for kw := range set {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

package extraction

// stopWords filters common English words that add noise to keyword matching.
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true,
	"were": true, "been": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true,
	"can": true, "this": true, "that": true, "these": true, "those": true,
	"a": true, "an": true,
}

// IsStopWord reports whether w is in the extraction stopword list.
func IsStopWord(w string) bool {
	return stopWords[w]
}

package extraction

import "regexp"

// vocabularyPatterns match known technology, tooling, and soft-skill terms.
// They run over cleaned (lower-cased, punctuation-stripped) text, so
// dotted names appear with the dot already replaced by a space.
var vocabularyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:python|java|javascript|react|angular|vue|node ?js|typescript|html|css|sql|mysql|postgresql|mongodb|redis|docker|kubernetes|aws|azure|gcp|git|github|linux|windows|macos)\b`),
	regexp.MustCompile(`\b(?:machine learning|data science|artificial intelligence|deep learning|neural networks|tensorflow|pytorch|scikit-learn|pandas|numpy)\b`),
	regexp.MustCompile(`\b(?:project management|agile|scrum|kanban|jira|confluence|slack|microsoft office|excel|powerpoint|word)\b`),
	regexp.MustCompile(`\b(?:communication|leadership|teamwork|problem solving|analytical|creative|detail oriented|time management)\b`),
}

var wordRe = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9]*\b`)

// FallbackExtractor is the guaranteed-available extraction path: a fixed
// battery of vocabulary regexes plus stopword-filtered word tokens. It does
// no phrase detection beyond the curated patterns.
type FallbackExtractor struct{}

// Extract implements Extractor.
func (FallbackExtractor) Extract(text string) []string {
	cleaned := CleanText(text)
	keywords := make(map[string]bool)
	collectTokens(cleaned, keywords)
	return sorted(keywords)
}

// collectTokens adds vocabulary pattern matches and meaningful single words
// from cleaned text into the keyword set.
func collectTokens(cleaned string, keywords map[string]bool) {
	for _, pattern := range vocabularyPatterns {
		for _, match := range pattern.FindAllString(cleaned, -1) {
			keywords[match] = true
		}
	}
	for _, word := range wordRe.FindAllString(cleaned, -1) {
		if len(word) > 2 && !IsStopWord(word) {
			keywords[word] = true
		}
	}
}

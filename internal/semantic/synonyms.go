package semantic

import (
	"sort"
	"strings"
)

// Synonyms maps an anchor skill term to the paraphrases appended to a text
// whenever the anchor occurs. The expansion biases the vectorizer toward
// recognizing rewordings without building a full thesaurus.
type Synonyms map[string][]string

// DefaultSynonyms returns the built-in anchor table.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		"python":             {"python programming", "python development", "python scripting"},
		"javascript":         {"js", "javascript programming", "frontend development"},
		"machine learning":   {"ml", "artificial intelligence", "ai", "data science"},
		"project management": {"pm", "project coordination", "project leadership"},
		"communication":      {"verbal communication", "written communication", "interpersonal skills"},
		"leadership":         {"team leadership", "team management", "leading teams"},
		"sql":                {"database", "database management", "data querying"},
		"react":              {"reactjs", "react.js", "frontend framework"},
		"aws":                {"amazon web services", "cloud computing", "cloud services"},
	}
}

// expand lower-cases the text and appends the synonym phrases for every
// anchor it contains. Anchors are visited in sorted order so the enhanced
// text is identical across runs.
func expand(text string, synonyms Synonyms) string {
	enhanced := strings.ToLower(text)

	anchors := make([]string, 0, len(synonyms))
	for anchor := range synonyms {
		anchors = append(anchors, anchor)
	}
	sort.Strings(anchors)

	var sb strings.Builder
	sb.WriteString(enhanced)
	for _, anchor := range anchors {
		if strings.Contains(enhanced, anchor) {
			sb.WriteString(" ")
			sb.WriteString(strings.Join(synonyms[anchor], " "))
		}
	}
	return sb.String()
}

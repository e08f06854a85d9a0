// Package types provides type definitions for the structured data exchanged
// between the matching engine, the CLI, and the HTTP API.
package types

// KeywordSet holds the categorized keywords extracted from a single text.
// All is the union of the three categories. Entries are trimmed, lower-cased
// tokens or short phrases, deduplicated and sorted lexicographically so that
// downstream iteration and truncation are reproducible.
type KeywordSet struct {
	Technical  []string `json:"technical"`
	SoftSkills []string `json:"soft_skills"`
	General    []string `json:"general"`
	All        []string `json:"all"`
}

// MissingKeywords holds the job-side keywords absent from the resume,
// per category. There is no combined list; the general bucket already
// carries everything uncategorized.
type MissingKeywords struct {
	Technical  []string `json:"technical"`
	SoftSkills []string `json:"soft_skills"`
	General    []string `json:"general"`
}

// SourceKeywords packages the two extracted keyword sets for inspection.
type SourceKeywords struct {
	Resume KeywordSet `json:"resume"`
	Job    KeywordSet `json:"job"`
}

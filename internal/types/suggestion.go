package types

// SuggestionType classifies a suggestion for presentation purposes.
type SuggestionType string

// Suggestion type values. The headline types (success/improvement/focus)
// reflect overall score bands; the rest tag the gap a suggestion addresses.
const (
	SuggestionSuccess     SuggestionType = "success"
	SuggestionImprovement SuggestionType = "improvement"
	SuggestionFocus       SuggestionType = "focus"
	SuggestionStrategy    SuggestionType = "strategy"
	SuggestionTechnical   SuggestionType = "technical"
	SuggestionSoftSkill   SuggestionType = "soft_skill"
	SuggestionKeyword     SuggestionType = "keyword"
	SuggestionSemantic    SuggestionType = "semantic"
	SuggestionConceptual  SuggestionType = "conceptual"
	SuggestionStrength    SuggestionType = "strength"
)

// Suggestion is a single ready-to-render recommendation.
type Suggestion struct {
	Type SuggestionType `json:"type"`
	Text string         `json:"text"`
}

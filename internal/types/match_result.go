package types

// SemanticMatch pairs a job phrase with its best-aligned resume phrase.
// Similarity is a cosine similarity in [0,1].
type SemanticMatch struct {
	JobPhrase    string  `json:"job_phrase"`
	ResumePhrase string  `json:"resume_phrase"`
	Similarity   float64 `json:"similarity"`
}

// SimilarityDistribution reports the percentage mass of sentence-pair
// similarities falling into the low, medium, and high bands.
type SimilarityDistribution struct {
	High   float64 `json:"high"`
	Medium float64 `json:"medium"`
	Low    float64 `json:"low"`
}

// SemanticAnalysis is the distributional-similarity portion of a match.
type SemanticAnalysis struct {
	OverallSimilarity float64                `json:"overall_semantic_similarity"`
	Matches           []SemanticMatch        `json:"semantic_matches"`
	StrongMatches     []SemanticMatch        `json:"strong_matches"`
	MissingConcepts   []string               `json:"missing_concepts"`
	ConceptualGaps    []string               `json:"conceptual_gaps"`
	Distribution      SimilarityDistribution `json:"similarity_distribution"`
}

// ScoreBreakdown records how the fused overall score was assembled, for
// transparency in reports and debugging.
type ScoreBreakdown struct {
	Enhanced          float64 `json:"enhanced_overall_score"`
	KeywordComponent  float64 `json:"keyword_component"`
	SemanticComponent float64 `json:"semantic_component"`
	KeywordWeight     int     `json:"keyword_weight"`
	SemanticWeight    int     `json:"semantic_weight"`
	SemanticBonus     float64 `json:"semantic_bonus"`
}

// MatchResult is the packaged outcome of one resume/job comparison.
// It is built once per request and never mutated after construction.
// All score fields are percentages in [0,100], rounded to one decimal.
type MatchResult struct {
	OverallScore     float64          `json:"overall_score"`
	KeywordScore     float64          `json:"keyword_score"`
	SemanticScore    float64          `json:"semantic_score"`
	TechnicalScore   float64          `json:"technical_score"`
	SoftSkillsScore  float64          `json:"soft_skills_score"`
	Matches          KeywordSet       `json:"matches"`
	Missing          MissingKeywords  `json:"missing"`
	TotalJobKeywords int              `json:"total_job_keywords"`
	TotalMatches     int              `json:"total_matches"`
	Semantic         SemanticAnalysis `json:"semantic_analysis"`
	Breakdown        ScoreBreakdown   `json:"score_breakdown"`
	KeywordsFound    SourceKeywords   `json:"keywords_found"`
}

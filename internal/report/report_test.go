package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func sampleResult() *types.MatchResult {
	return &types.MatchResult{
		OverallScore:    74.0,
		KeywordScore:    80.0,
		SemanticScore:   50.0,
		TechnicalScore:  66.7,
		SoftSkillsScore: 50.0,
		Matches: types.KeywordSet{
			Technical:  []string{"aws", "python"},
			SoftSkills: []string{"leadership"},
		},
		Missing: types.MissingKeywords{
			Technical:  []string{"sql"},
			SoftSkills: []string{"communication"},
		},
		TotalJobKeywords: 10,
		TotalMatches:     6,
		Semantic: types.SemanticAnalysis{
			OverallSimilarity: 50.0,
			StrongMatches: []types.SemanticMatch{
				{JobPhrase: "python development", ResumePhrase: "python engineering", Similarity: 0.8},
			},
			MissingConcepts: []string{"distributed systems experience"},
		},
	}
}

func sampleSuggestions() []types.Suggestion {
	return []types.Suggestion{
		{Type: types.SuggestionSuccess, Text: "Strong match overall."},
		{Type: types.SuggestionTechnical, Text: "**Sql**: add database experience."},
	}
}

func TestForFormat(t *testing.T) {
	r, err := ForFormat("markdown")
	require.NoError(t, err)
	assert.IsType(t, MarkdownRenderer{}, r)

	r, err = ForFormat("md")
	require.NoError(t, err)
	assert.IsType(t, MarkdownRenderer{}, r)

	r, err = ForFormat("json")
	require.NoError(t, err)
	assert.IsType(t, JSONRenderer{}, r)

	_, err = ForFormat("pdf")
	assert.Error(t, err)
}

func TestMarkdownRenderer_Render(t *testing.T) {
	meta := Meta{
		ResumeFilename: "resume.pdf",
		JobTitle:       "Backend Engineer",
		GeneratedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	out, err := MarkdownRenderer{}.Render(sampleResult(), sampleSuggestions(), meta)
	require.NoError(t, err)

	doc := string(out)
	assert.Contains(t, doc, "# Resume Match Report")
	assert.Contains(t, doc, "resume.pdf")
	assert.Contains(t, doc, "Backend Engineer")
	assert.Contains(t, doc, "| Overall | 74.0% |")
	assert.Contains(t, doc, "Matched 6 of 10 job keywords")
	assert.Contains(t, doc, "aws, python")
	assert.Contains(t, doc, "sql")
	assert.Contains(t, doc, "distributed systems experience")
	assert.Contains(t, doc, "Strong match overall.")
}

func TestMarkdownRenderer_NilResult(t *testing.T) {
	_, err := MarkdownRenderer{}.Render(nil, nil, Meta{})
	assert.Error(t, err)
}

func TestJSONRenderer_Render(t *testing.T) {
	out, err := JSONRenderer{}.Render(sampleResult(), sampleSuggestions(), Meta{JobTitle: "Backend Engineer"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Backend Engineer", decoded["job_title"])
	require.Contains(t, decoded, "result")
	require.Contains(t, decoded, "suggestions")
}

func TestJSONRenderer_NilSuggestionsEncodeAsEmptyArray(t *testing.T) {
	out, err := JSONRenderer{}.Render(sampleResult(), nil, Meta{})
	require.NoError(t, err)

	var decoded struct {
		Suggestions []types.Suggestion `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.NotNil(t, decoded.Suggestions)
	assert.Empty(t, decoded.Suggestions)
}

func TestRenderers_ContentTypes(t *testing.T) {
	assert.Contains(t, MarkdownRenderer{}.ContentType(), "text/markdown")
	assert.Equal(t, "application/json", JSONRenderer{}.ContentType())
}

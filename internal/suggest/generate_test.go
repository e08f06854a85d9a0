package suggest

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestGenerate_CappedAtEight(t *testing.T) {
	result := &types.MatchResult{
		OverallScore:  20,
		KeywordScore:  10,
		SemanticScore: 50,
		Missing: types.MissingKeywords{
			Technical:  []string{"aws", "docker", "kubernetes", "python", "sql"},
			SoftSkills: []string{"communication", "leadership", "teamwork"},
			General:    []string{"a", "b", "c", "d", "e", "f", "g"},
		},
		Semantic: types.SemanticAnalysis{
			MissingConcepts: []string{
				"design and operate large distributed systems",
				"mentor junior engineers across multiple teams",
			},
			ConceptualGaps: []string{"Technical skills and programming experience"},
		},
	}

	suggestions := Generate(result)

	assert.Len(t, suggestions, 8)
}

func TestGenerate_Idempotent(t *testing.T) {
	result := &types.MatchResult{
		OverallScore:  55,
		KeywordScore:  60,
		SemanticScore: 45,
		Missing: types.MissingKeywords{
			Technical:  []string{"python", "sql"},
			SoftSkills: []string{"leadership"},
		},
	}

	first := Generate(result)
	second := Generate(result)

	assert.Equal(t, first, second)
}

func TestGenerate_HeadlineBands(t *testing.T) {
	tests := []struct {
		name     string
		overall  float64
		semantic float64
		wantType types.SuggestionType
	}{
		{"high score deep", 85, 70, types.SuggestionSuccess},
		{"high score shallow", 85, 30, types.SuggestionSuccess},
		{"mid score deep", 55, 70, types.SuggestionImprovement},
		{"mid score shallow", 55, 30, types.SuggestionImprovement},
		{"low score deep", 20, 70, types.SuggestionFocus},
		{"low score shallow", 20, 30, types.SuggestionFocus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &types.MatchResult{OverallScore: tt.overall, KeywordScore: tt.overall, SemanticScore: tt.semantic}
			suggestions := Generate(result)
			require.NotEmpty(t, suggestions)
			assert.Equal(t, tt.wantType, suggestions[0].Type)
		})
	}
}

func TestGenerate_KnownSkillTips(t *testing.T) {
	result := &types.MatchResult{
		OverallScore: 50, KeywordScore: 50, SemanticScore: 50,
		Missing: types.MissingKeywords{
			Technical:  []string{"python"},
			SoftSkills: []string{"leadership"},
		},
	}

	suggestions := Generate(result)

	var technical, soft *types.Suggestion
	for i := range suggestions {
		switch suggestions[i].Type {
		case types.SuggestionTechnical:
			technical = &suggestions[i]
		case types.SuggestionSoftSkill:
			soft = &suggestions[i]
		}
	}
	require.NotNil(t, technical)
	require.NotNil(t, soft)
	assert.Contains(t, technical.Text, "**Python**")
	assert.Contains(t, technical.Text, "automated scripts")
	assert.Contains(t, soft.Text, "**Leadership**")
	assert.Contains(t, soft.Text, "mentored colleagues")
}

func TestGenerate_UnknownSkillGetsGenericTip(t *testing.T) {
	result := &types.MatchResult{
		OverallScore: 50, KeywordScore: 50, SemanticScore: 50,
		Missing: types.MissingKeywords{Technical: []string{"zig"}},
	}

	suggestions := Generate(result)

	var found bool
	for _, s := range suggestions {
		if s.Type == types.SuggestionTechnical {
			found = true
			assert.Contains(t, s.Text, "**Zig**")
			assert.Contains(t, s.Text, genericTechnicalTip)
		}
	}
	assert.True(t, found)
}

func TestGenerate_GeneralKeywordsNeedVolume(t *testing.T) {
	base := types.MatchResult{OverallScore: 50, KeywordScore: 50, SemanticScore: 50}

	few := base
	few.Missing = types.MissingKeywords{General: []string{"a", "b", "c"}}
	for _, s := range Generate(&few) {
		assert.NotEqual(t, types.SuggestionKeyword, s.Type)
	}

	many := base
	many.Missing = types.MissingKeywords{General: []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}}
	var keywordCount int
	for _, s := range Generate(&many) {
		if s.Type == types.SuggestionKeyword {
			keywordCount++
		}
	}
	assert.Equal(t, 2, keywordCount)
}

func TestGenerate_StrategyFiresOnImbalance(t *testing.T) {
	keywordHeavy := &types.MatchResult{OverallScore: 60, KeywordScore: 80, SemanticScore: 30}
	suggestions := Generate(keywordHeavy)
	strategyText := findType(suggestions, types.SuggestionStrategy)
	require.NotEmpty(t, strategyText)
	assert.Contains(t, strategyText, "concrete accomplishments")

	semanticHeavy := &types.MatchResult{OverallScore: 60, KeywordScore: 30, SemanticScore: 80}
	suggestions = Generate(semanticHeavy)
	strategyText = findType(suggestions, types.SuggestionStrategy)
	require.NotEmpty(t, strategyText)
	assert.Contains(t, strategyText, "exact terminology")

	balanced := &types.MatchResult{OverallScore: 60, KeywordScore: 55, SemanticScore: 50}
	assert.Empty(t, findType(Generate(balanced), types.SuggestionStrategy))
}

func TestGenerate_ShortConceptsSkipped(t *testing.T) {
	result := &types.MatchResult{
		OverallScore: 50, KeywordScore: 50, SemanticScore: 50,
		Semantic: types.SemanticAnalysis{MissingConcepts: []string{"short concept"}},
	}

	for _, s := range Generate(result) {
		assert.NotEqual(t, types.SuggestionSemantic, s.Type)
	}
}

func TestGenerate_LongConceptsTruncated(t *testing.T) {
	long := strings.Repeat("distributed systems design ", 10)
	result := &types.MatchResult{
		OverallScore: 50, KeywordScore: 50, SemanticScore: 50,
		Semantic: types.SemanticAnalysis{MissingConcepts: []string{long}},
	}

	text := findType(Generate(result), types.SuggestionSemantic)
	require.NotEmpty(t, text)
	assert.Contains(t, text, "...")
}

func TestTruncate_RuneBoundaries(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))

	// The leading single-byte rune puts byte offset 100 in the middle of a
	// two-byte character; the cut must land on the rune boundary instead.
	long := "x" + strings.Repeat("é", 120)
	got := truncate(long, 100)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "x"+strings.Repeat("é", 99)+"...", got)
}

func TestGenerate_MultibyteConceptStaysValidUTF8(t *testing.T) {
	long := strings.Repeat("développement des systèmes distribués à ", 5)
	result := &types.MatchResult{
		OverallScore: 50, KeywordScore: 50, SemanticScore: 50,
		Semantic: types.SemanticAnalysis{MissingConcepts: []string{long}},
	}

	text := findType(Generate(result), types.SuggestionSemantic)
	require.NotEmpty(t, text)
	assert.Contains(t, text, "...")
	assert.True(t, utf8.ValidString(text))
}

func TestGenerate_MultibyteSkillTitleCased(t *testing.T) {
	result := &types.MatchResult{
		OverallScore: 50, KeywordScore: 50, SemanticScore: 50,
		Missing:      types.MissingKeywords{Technical: []string{"études de marché"}},
	}

	text := findType(Generate(result), types.SuggestionTechnical)
	require.NotEmpty(t, text)
	assert.Contains(t, text, "**Études De Marché**")
	assert.True(t, utf8.ValidString(text))
}

func TestGenerate_StrengthReinforcement(t *testing.T) {
	result := &types.MatchResult{
		OverallScore: 75, KeywordScore: 75, SemanticScore: 75,
		Semantic: types.SemanticAnalysis{
			StrongMatches: []types.SemanticMatch{{Similarity: 0.8}, {Similarity: 0.9}},
		},
	}

	text := findType(Generate(result), types.SuggestionStrength)
	require.NotEmpty(t, text)
	assert.Contains(t, text, "2 strong conceptual matches")
}

func findType(suggestions []types.Suggestion, t types.SuggestionType) string {
	for _, s := range suggestions {
		if s.Type == t {
			return s.Text
		}
	}
	return ""
}

package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/extraction"
)

// fixedExtractor returns a canned keyword list regardless of input.
type fixedExtractor struct {
	keywords []string
}

func (e fixedExtractor) Extract(_ string) []string {
	return e.keywords
}

func TestCategorize_Buckets(t *testing.T) {
	c := NewCategorizer(fixedExtractor{keywords: []string{"blockchain", "communication", "python"}}, nil)

	set := c.Categorize("ignored")

	assert.Equal(t, []string{"python"}, set.Technical)
	assert.Equal(t, []string{"communication"}, set.SoftSkills)
	assert.Equal(t, []string{"blockchain"}, set.General)
	assert.Equal(t, []string{"blockchain", "communication", "python"}, set.All)
}

func TestCategorize_SubstringContainment(t *testing.T) {
	c := NewCategorizer(fixedExtractor{keywords: []string{"python development", "team leadership"}}, &Vocabulary{
		TechnicalTerms: []string{"python"},
		SoftSkillTerms: []string{"leadership"},
	})

	set := c.Categorize("ignored")

	assert.Equal(t, []string{"python development"}, set.Technical)
	assert.Equal(t, []string{"team leadership"}, set.SoftSkills)
	assert.Empty(t, set.General)
}

func TestCategorize_TechnicalWinsTies(t *testing.T) {
	// A term present in both lists classifies as technical because the
	// technical bucket is tested first.
	c := NewCategorizer(fixedExtractor{keywords: []string{"communication"}}, &Vocabulary{
		TechnicalTerms: []string{"communication"},
		SoftSkillTerms: []string{"communication"},
	})

	set := c.Categorize("ignored")

	assert.Equal(t, []string{"communication"}, set.Technical)
	assert.Empty(t, set.SoftSkills)
}

func TestCategorize_EmptyInput(t *testing.T) {
	c := NewCategorizer(fixedExtractor{}, nil)

	set := c.Categorize("")

	assert.Empty(t, set.Technical)
	assert.Empty(t, set.SoftSkills)
	assert.Empty(t, set.General)
	assert.NotNil(t, set.Technical)
	assert.NotNil(t, set.SoftSkills)
	assert.NotNil(t, set.General)
}

func TestCategorize_WithRealExtractor(t *testing.T) {
	extractor, err := extraction.NewLexiconExtractor(extraction.DefaultLexicon())
	require.NoError(t, err)
	c := NewCategorizer(extractor, nil)

	set := c.Categorize("Python developer with strong communication skills")

	assert.Contains(t, set.Technical, "python")
	assert.Contains(t, set.SoftSkills, "communication")
}

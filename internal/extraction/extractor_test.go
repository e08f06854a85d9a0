package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackExtractor_EmptyInput(t *testing.T) {
	result := FallbackExtractor{}.Extract("")
	assert.Empty(t, result)
}

func TestFallbackExtractor_DropsStopwordsAndShortTokens(t *testing.T) {
	result := FallbackExtractor{}.Extract("Python and SQL experience")

	assert.Contains(t, result, "python")
	assert.Contains(t, result, "sql")
	assert.Contains(t, result, "experience")
	assert.NotContains(t, result, "and")
}

func TestFallbackExtractor_MatchesVocabularyPhrases(t *testing.T) {
	result := FallbackExtractor{}.Extract("Built models with machine learning and TensorFlow")

	assert.Contains(t, result, "machine learning")
	assert.Contains(t, result, "tensorflow")
}

func TestFallbackExtractor_SortedAndDeduplicated(t *testing.T) {
	result := FallbackExtractor{}.Extract("python Python PYTHON docker")

	assert.Equal(t, []string{"docker", "python"}, result)
}

func TestNewLexiconExtractor_EmptyLexicon(t *testing.T) {
	_, err := NewLexiconExtractor(&Lexicon{})
	assert.Error(t, err)

	_, err = NewLexiconExtractor(nil)
	assert.Error(t, err)
}

func TestLexiconExtractor_FindsCuratedPhrases(t *testing.T) {
	e, err := NewLexiconExtractor(DefaultLexicon())
	require.NoError(t, err)

	result := e.Extract("Led a project using natural language processing and Kubernetes.")

	assert.Contains(t, result, "natural language processing")
	assert.Contains(t, result, "kubernetes")
}

func TestLexiconExtractor_PhraseWindows(t *testing.T) {
	e, err := NewLexiconExtractor(DefaultLexicon())
	require.NoError(t, err)

	// "senior backend engineer" is not in the lexicon; the word-run
	// windows should still surface its 2-3 word sub-phrases.
	result := e.Extract("Senior backend engineer")

	assert.Contains(t, result, "senior backend")
	assert.Contains(t, result, "backend engineer")
	assert.Contains(t, result, "senior backend engineer")
}

func TestLexiconExtractor_StopwordsBreakPhraseRuns(t *testing.T) {
	e, err := NewLexiconExtractor(DefaultLexicon())
	require.NoError(t, err)

	result := e.Extract("python and docker")

	assert.Contains(t, result, "python")
	assert.Contains(t, result, "docker")
	assert.NotContains(t, result, "python docker")
	assert.NotContains(t, result, "python and docker")
}

func TestLexiconExtractor_Deterministic(t *testing.T) {
	e, err := NewLexiconExtractor(DefaultLexicon())
	require.NoError(t, err)

	text := "Experienced Python developer with machine learning and AWS background"
	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
	assert.IsIncreasing(t, first)
}

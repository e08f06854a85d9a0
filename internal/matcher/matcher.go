// Package matcher wires the extraction, categorization, scoring, semantic,
// fusion, and suggestion components into the resume/job matching engine.
package matcher

import (
	"context"
	"log"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/fusion"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/suggest"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Options configures a Matcher. Zero values select the built-in lexicon,
// vocabulary, and synonym table.
type Options struct {
	// Lexicon backs the primary extractor and the semantic segmenter.
	Lexicon *extraction.Lexicon
	// Vocabulary holds the categorization term lists.
	Vocabulary *skills.Vocabulary
	// Synonyms holds the anchor table for semantic expansion.
	Synonyms semantic.Synonyms
	// Extractor overrides strategy selection entirely when set.
	Extractor extraction.Extractor
}

// Matcher is the engine's lifecycle object. The hosting application
// constructs it once and passes it by reference into entry points; it is
// read-only after construction, so concurrent calls need no locking.
type Matcher struct {
	extractor   extraction.Extractor
	categorizer *skills.Categorizer
	analyzer    *semantic.Analyzer
}

// New builds a Matcher. The extraction strategy is selected here, once: the
// lexicon extractor when the lexicon compiles, otherwise the regex fallback.
// Degrading to the fallback is logged once at construction, not per call.
func New(opts Options) *Matcher {
	lex := opts.Lexicon
	if lex == nil {
		lex = extraction.DefaultLexicon()
	}

	extractor := opts.Extractor
	if extractor == nil {
		lexical, err := extraction.NewLexiconExtractor(lex)
		if err != nil {
			log.Printf("[MATCHER] phrase lexicon unavailable, using fallback extraction: %v", err)
			extractor = extraction.FallbackExtractor{}
		} else {
			extractor = lexical
		}
	}

	return &Matcher{
		extractor:   extractor,
		categorizer: skills.NewCategorizer(extractor, opts.Vocabulary),
		analyzer:    semantic.NewAnalyzer(lex, opts.Synonyms),
	}
}

// ExtractSkillsAndKeywords extracts and categorizes the keywords of a single
// text.
func (m *Matcher) ExtractSkillsAndKeywords(text string) types.KeywordSet {
	return m.categorizer.Categorize(text)
}

// CalculateMatchScore compares a resume against a job description and
// returns the full match result. The keyword and semantic paths run in
// parallel; a semantic failure silently degrades inside the analyzer.
// Degenerate input never fails: empty text extracts an empty keyword set
// and scores zero. Callers that should reject empty text outright do so
// before calling in, with an InputError.
func (m *Matcher) CalculateMatchScore(ctx context.Context, resumeText, jobText string) (*types.MatchResult, error) {
	var (
		keywordResult scoring.Result
		resumeSet     types.KeywordSet
		jobSet        types.KeywordSet
		analysis      types.SemanticAnalysis
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		resumeSet = m.categorizer.Categorize(resumeText)
		jobSet = m.categorizer.Categorize(jobText)
		keywordResult = scoring.Score(resumeSet, jobSet)
		return nil
	})
	g.Go(func() error {
		analysis = m.analyzer.Analyze(resumeText, jobText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	semanticScore := round1(analysis.OverallSimilarity)
	breakdown := fusion.Fuse(keywordResult.Overall, semanticScore, len(analysis.StrongMatches))

	return &types.MatchResult{
		OverallScore:     breakdown.Enhanced,
		KeywordScore:     keywordResult.Overall,
		SemanticScore:    semanticScore,
		TechnicalScore:   keywordResult.Technical,
		SoftSkillsScore:  keywordResult.SoftSkills,
		Matches:          keywordResult.Matches,
		Missing:          keywordResult.Missing,
		TotalJobKeywords: keywordResult.TotalJobKeywords,
		TotalMatches:     keywordResult.TotalMatches,
		Semantic:         analysis,
		Breakdown:        breakdown,
		KeywordsFound:    types.SourceKeywords{Resume: resumeSet, Job: jobSet},
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// GenerateSuggestions produces the ranked recommendation list for a result.
// It is a pure function of the result and therefore idempotent.
func (m *Matcher) GenerateSuggestions(result *types.MatchResult) []types.Suggestion {
	return suggest.Generate(result)
}

// Package semantic computes a distributional-similarity score between resume
// and job text using TF-IDF weighted n-gram vectors and cosine similarity.
//
// The analysis is best-effort: degenerate input and internal failures degrade
// to a whole-document word-overlap estimate instead of returning an error,
// because the semantic signal only ever softens the keyword score.
package semantic

import (
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Similarity thresholds. They encode calibration decisions carried over from
// tuning against real resume/job pairs; treat them as configuration knobs,
// not numbers to re-derive.
//
// Match and strong boundaries are inclusive; the gap boundary is exclusive,
// so a pair at exactly GapThreshold is not a missing concept.
const (
	MatchThreshold  = 0.3
	StrongThreshold = 0.5
	GapThreshold    = 0.2

	highBand   = 0.7
	mediumBand = 0.4

	maxMissingConcepts = 10
)

// Conceptual gap families: vocabulary found in unmatched job segments maps to
// one coarse label per family.
var gapFamilies = []struct {
	label string
	terms []string
}{
	{"Technical skills and programming experience", []string{"programming", "software", "development", "technical", "coding", "system"}},
	{"Leadership and project management experience", []string{"manage", "lead", "project", "team", "coordinate"}},
	{"Communication and collaboration skills", []string{"communication", "presentation", "writing", "collaboration"}},
}

// Analyzer computes semantic similarity analyses. It is read-only after
// construction and safe for concurrent use; the TF-IDF vocabulary is refit
// per comparison, so no state leaks between calls.
type Analyzer struct {
	synonyms  Synonyms
	phrases   []string
	phraseRes []*regexp.Regexp
}

// NewAnalyzer builds an Analyzer. Nil arguments select the built-in lexicon
// and synonym table.
func NewAnalyzer(lex *extraction.Lexicon, synonyms Synonyms) *Analyzer {
	if lex == nil {
		lex = extraction.DefaultLexicon()
	}
	if synonyms == nil {
		synonyms = DefaultSynonyms()
	}

	a := &Analyzer{synonyms: synonyms}
	for _, p := range lex.Phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		a.phrases = append(a.phrases, p)
		a.phraseRes = append(a.phraseRes, regexp.MustCompile(`\b`+regexp.QuoteMeta(p)+`\b`))
	}
	return a
}

// Analyze compares resume text against job text. It never fails: any panic
// inside the vector math degrades to the word-overlap fallback.
func (a *Analyzer) Analyze(resumeText, jobText string) (analysis types.SemanticAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[SEMANTIC] analysis failed, using overlap fallback: %v", r)
			analysis = fallbackAnalysis(resumeText, jobText)
		}
	}()

	resumeSegs := a.segments(resumeText)
	jobSegs := a.segments(jobText)
	if len(resumeSegs) == 0 || len(jobSegs) == 0 {
		return fallbackAnalysis(resumeText, jobText)
	}

	enhancedResume := expand(resumeText, a.synonyms)
	enhancedJob := expand(jobText, a.synonyms)

	// Fit one shared vector space over both whole documents and every
	// segment, then transform each text into it.
	docs := make([][]string, 0, 2+len(resumeSegs)+len(jobSegs))
	docs = append(docs, terms(enhancedResume), terms(enhancedJob))
	for _, s := range resumeSegs {
		docs = append(docs, terms(s))
	}
	for _, s := range jobSegs {
		docs = append(docs, terms(s))
	}

	v := fit(docs)
	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = v.transform(doc)
	}
	resumeVecs := vectors[2 : 2+len(resumeSegs)]
	jobVecs := vectors[2+len(resumeSegs):]

	analysis = types.SemanticAnalysis{
		OverallSimilarity: cosine(vectors[0], vectors[1]) * 100,
		Matches:           []types.SemanticMatch{},
		StrongMatches:     []types.SemanticMatch{},
		MissingConcepts:   []string{},
		ConceptualGaps:    []string{},
	}

	allSims := make([]float64, 0, len(resumeSegs)*len(jobSegs))
	for j, jobVec := range jobVecs {
		best, bestIdx := 0.0, 0
		for i, resumeVec := range resumeVecs {
			sim := cosine(resumeVec, jobVec)
			allSims = append(allSims, sim)
			if sim > best {
				best, bestIdx = sim, i
			}
		}

		matched, strong, missing := classify(best)
		if matched {
			m := types.SemanticMatch{
				JobPhrase:    jobSegs[j],
				ResumePhrase: resumeSegs[bestIdx],
				Similarity:   best,
			}
			analysis.Matches = append(analysis.Matches, m)
			if strong {
				analysis.StrongMatches = append(analysis.StrongMatches, m)
			}
		}
		if missing && len(analysis.MissingConcepts) < maxMissingConcepts {
			analysis.MissingConcepts = append(analysis.MissingConcepts, jobSegs[j])
		}
	}

	analysis.Distribution = distribution(allSims)
	analysis.ConceptualGaps = conceptualGaps(analysis.MissingConcepts)
	return analysis
}

// classify maps a job segment's best similarity onto the threshold
// constants: match and strong are inclusive, the gap boundary is exclusive.
func classify(best float64) (matched, strong, missing bool) {
	return best >= MatchThreshold, best >= StrongThreshold, best < GapThreshold
}

// distribution buckets pair similarities into high (>0.7), medium
// (>0.4 and <=0.7), and low (<=0.4) bands as percentages.
func distribution(sims []float64) types.SimilarityDistribution {
	if len(sims) == 0 {
		return types.SimilarityDistribution{Low: 100}
	}
	var high, medium, low int
	for _, s := range sims {
		switch {
		case s > highBand:
			high++
		case s > mediumBand:
			medium++
		default:
			low++
		}
	}
	total := float64(len(sims))
	return types.SimilarityDistribution{
		High:   float64(high) / total * 100,
		Medium: float64(medium) / total * 100,
		Low:    float64(low) / total * 100,
	}
}

// conceptualGaps scans the concatenated missing concepts for each gap
// family's vocabulary and emits one label per matching family, in family
// order.
func conceptualGaps(missingConcepts []string) []string {
	gaps := []string{}
	if len(missingConcepts) == 0 {
		return gaps
	}
	missingText := strings.ToLower(strings.Join(missingConcepts, " "))
	for _, family := range gapFamilies {
		for _, term := range family.terms {
			if strings.Contains(missingText, term) {
				gaps = append(gaps, family.label)
				break
			}
		}
	}
	return gaps
}

var fallbackWordRe = regexp.MustCompile(`\b\w+\b`)

// fallbackAnalysis estimates similarity as the fraction of job words also
// present in the resume. Match and gap collections stay empty and the
// distribution uses the nominal split reported by the degenerate path.
func fallbackAnalysis(resumeText, jobText string) types.SemanticAnalysis {
	resumeWords := make(map[string]bool)
	for _, w := range fallbackWordRe.FindAllString(strings.ToLower(resumeText), -1) {
		resumeWords[w] = true
	}
	jobWords := make(map[string]bool)
	for _, w := range fallbackWordRe.FindAllString(strings.ToLower(jobText), -1) {
		jobWords[w] = true
	}

	similarity := 0.0
	if len(jobWords) > 0 {
		common := 0
		for w := range jobWords {
			if resumeWords[w] {
				common++
			}
		}
		similarity = float64(common) / float64(len(jobWords))
	}

	return types.SemanticAnalysis{
		OverallSimilarity: similarity * 100,
		Matches:           []types.SemanticMatch{},
		StrongMatches:     []types.SemanticMatch{},
		MissingConcepts:   []string{},
		ConceptualGaps:    []string{},
		Distribution:      types.SimilarityDistribution{Low: 70, Medium: 20, High: 10},
	}
}

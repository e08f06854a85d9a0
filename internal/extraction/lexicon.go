package extraction

import (
	"fmt"
	"regexp"
	"strings"
)

// Lexicon is the curated phrase and entity vocabulary backing the primary
// extraction path. It plays the role a full linguistic pipeline would:
// Entities lists known organizations, products, and language names; Phrases
// lists multi-word skill phrases worth extracting as a unit.
type Lexicon struct {
	Entities []string
	Phrases  []string
}

// DefaultLexicon returns the built-in extraction lexicon.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Entities: []string{
			"python", "java", "javascript", "typescript", "golang", "rust",
			"react", "angular", "vue", "django", "flask", "spring",
			"mysql", "postgresql", "mongodb", "redis", "elasticsearch",
			"docker", "kubernetes", "terraform", "jenkins", "github", "gitlab",
			"aws", "azure", "gcp", "salesforce", "tableau", "jira",
			"tensorflow", "pytorch", "pandas", "numpy", "spark", "kafka",
			"linux", "excel", "powerpoint",
		},
		Phrases: []string{
			"machine learning", "deep learning", "data science", "data analysis",
			"artificial intelligence", "neural networks", "natural language processing",
			"computer vision", "software development", "web development",
			"frontend development", "backend development", "full stack development",
			"cloud computing", "distributed systems", "version control",
			"continuous integration", "unit testing", "code review",
			"project management", "product management", "time management",
			"team leadership", "people management", "stakeholder management",
			"problem solving", "critical thinking", "decision making",
			"verbal communication", "written communication", "public speaking",
			"customer service", "business analysis", "quality assurance",
			"agile development", "scrum master", "user experience",
		},
	}
}

// LexiconExtractor is the primary extraction path. On top of the fallback
// token battery it detects curated entities and multi-word phrases, and
// collects short word runs that approximate noun phrases.
type LexiconExtractor struct {
	phraseRes []*regexp.Regexp
	phrases   []string
	fallback  FallbackExtractor
}

// NewLexiconExtractor compiles the lexicon into word-boundary matchers.
// Compilation happens once; the extractor is read-only afterwards and safe
// for concurrent use.
func NewLexiconExtractor(lex *Lexicon) (*LexiconExtractor, error) {
	if lex == nil || (len(lex.Entities) == 0 && len(lex.Phrases) == 0) {
		return nil, fmt.Errorf("lexicon is empty")
	}

	phrases := make([]string, 0, len(lex.Entities)+len(lex.Phrases))
	phrases = append(phrases, lex.Entities...)
	phrases = append(phrases, lex.Phrases...)

	e := &LexiconExtractor{phrases: phrases}
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(p) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compile lexicon entry %q: %w", p, err)
		}
		e.phraseRes = append(e.phraseRes, re)
	}
	return e, nil
}

// Extract implements Extractor.
func (e *LexiconExtractor) Extract(text string) []string {
	cleaned := CleanText(text)
	keywords := make(map[string]bool)

	collectTokens(cleaned, keywords)

	// Curated entities and skill phrases, matched on word boundaries.
	for _, re := range e.phraseRes {
		if m := re.FindString(cleaned); m != "" {
			keywords[m] = true
		}
	}

	// Short word runs stand in for noun phrases: windows of 2-3 adjacent
	// tokens with no stopwords and no very short words.
	for _, phrase := range phraseWindows(cleaned) {
		keywords[phrase] = true
	}

	return sorted(keywords)
}

// phraseWindows returns 2-3 word windows of adjacent meaningful tokens.
// A stopword or a token of length <= 2 breaks the run.
func phraseWindows(cleaned string) []string {
	words := strings.Fields(cleaned)
	var phrases []string
	var run []string
	flush := func() {
		for i := 0; i < len(run); i++ {
			for n := 2; n <= 3 && i+n <= len(run); n++ {
				phrases = append(phrases, strings.Join(run[i:i+n], " "))
			}
		}
		run = run[:0]
	}
	for _, w := range words {
		if len(w) <= 2 || IsStopWord(w) {
			flush()
			continue
		}
		run = append(run, w)
	}
	flush()
	return phrases
}

package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Categorizer runs keyword extraction and buckets the results against its
// vocabulary. It is read-only after construction and safe for concurrent use.
type Categorizer struct {
	extractor extraction.Extractor
	vocab     *Vocabulary
}

// NewCategorizer builds a Categorizer. A nil vocabulary selects the built-in
// term lists.
func NewCategorizer(extractor extraction.Extractor, vocab *Vocabulary) *Categorizer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Categorizer{extractor: extractor, vocab: vocab}
}

// Categorize extracts keywords from text and partitions them into technical,
// soft-skill, and general buckets. A keyword is technical when any curated
// technical term appears within it; soft-skill matching is tested second, so
// a keyword matching both lists is classified technical.
func (c *Categorizer) Categorize(text string) types.KeywordSet {
	all := c.extractor.Extract(text)

	set := types.KeywordSet{
		Technical:  []string{},
		SoftSkills: []string{},
		General:    []string{},
		All:        all,
	}
	for _, keyword := range all {
		switch {
		case containsAny(keyword, c.vocab.TechnicalTerms):
			set.Technical = append(set.Technical, keyword)
		case containsAny(keyword, c.vocab.SoftSkillTerms):
			set.SoftSkills = append(set.SoftSkills, keyword)
		default:
			set.General = append(set.General, keyword)
		}
	}

	sort.Strings(set.Technical)
	sort.Strings(set.SoftSkills)
	sort.Strings(set.General)
	return set
}

// containsAny reports whether any curated term appears within the keyword.
func containsAny(keyword string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(keyword, term) {
			return true
		}
	}
	return false
}

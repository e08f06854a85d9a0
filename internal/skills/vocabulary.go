// Package skills partitions extracted keywords into technical, soft-skill,
// and general buckets using curated term lists.
package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Vocabulary holds the curated term lists used for categorization. The lists
// are static configuration data: fixed for the lifetime of a Categorizer,
// injectable for tests and for user-supplied vocabularies.
type Vocabulary struct {
	TechnicalTerms []string `json:"technical_terms"`
	SoftSkillTerms []string `json:"soft_skill_terms"`
}

// DefaultVocabulary returns the built-in categorization vocabulary.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		TechnicalTerms: []string{
			"python", "java", "javascript", "react", "angular", "vue", "nodejs",
			"typescript", "html", "css", "sql", "mysql", "postgresql", "mongodb",
			"redis", "docker", "kubernetes", "aws", "azure", "gcp", "git",
			"github", "linux", "windows", "machine learning", "data science",
			"ai", "tensorflow", "pytorch", "pandas", "numpy", "scikit-learn",
			"excel", "powerpoint", "word", "office",
		},
		SoftSkillTerms: []string{
			"communication", "leadership", "teamwork", "management", "analytical",
			"creative", "problem solving", "time management", "organization",
			"presentation", "writing", "research",
		},
	}
}

//go:embed vocabulary_schema.json
var vocabularySchema string

// LoadVocabulary reads a user-supplied vocabulary JSON file, validates it
// against the embedded schema, and returns the parsed term lists.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(vocabularySchema)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate vocabulary file %s: %w", path, err)
	}
	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("invalid vocabulary file " + path + ":")
		for _, desc := range result.Errors() {
			sb.WriteString("\n  - " + desc.String())
		}
		return nil, fmt.Errorf("%s", sb.String())
	}

	var vocab Vocabulary
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}
	return &vocab, nil
}

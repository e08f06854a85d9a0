package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// MarkdownRenderer produces a human-readable match report.
type MarkdownRenderer struct{}

func (MarkdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }

func (MarkdownRenderer) Render(result *types.MatchResult, suggestions []types.Suggestion, meta Meta) ([]byte, error) {
	if result == nil {
		return nil, &GenerateError{Format: "markdown", Cause: fmt.Errorf("nil result")}
	}

	var b strings.Builder
	b.WriteString("# Resume Match Report\n\n")
	if meta.ResumeFilename != "" {
		fmt.Fprintf(&b, "**Resume:** %s\n\n", meta.ResumeFilename)
	}
	if meta.JobTitle != "" {
		fmt.Fprintf(&b, "**Position:** %s\n\n", meta.JobTitle)
	}
	if !meta.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "**Generated:** %s\n\n", meta.GeneratedAt.Format("2006-01-02 15:04 MST"))
	}

	b.WriteString("## Scores\n\n")
	b.WriteString("| Metric | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Overall | %.1f%% |\n", result.OverallScore)
	fmt.Fprintf(&b, "| Keyword match | %.1f%% |\n", result.KeywordScore)
	fmt.Fprintf(&b, "| Semantic similarity | %.1f%% |\n", result.SemanticScore)
	fmt.Fprintf(&b, "| Technical skills | %.1f%% |\n", result.TechnicalScore)
	fmt.Fprintf(&b, "| Soft skills | %.1f%% |\n", result.SoftSkillsScore)
	fmt.Fprintf(&b, "\nMatched %d of %d job keywords.\n\n", result.TotalMatches, result.TotalJobKeywords)

	writeKeywordSection(&b, "Matched Keywords", result.Matches.Technical, result.Matches.SoftSkills, result.Matches.General)
	writeKeywordSection(&b, "Missing Keywords", result.Missing.Technical, result.Missing.SoftSkills, result.Missing.General)

	if len(result.Semantic.StrongMatches) > 0 || len(result.Semantic.MissingConcepts) > 0 {
		b.WriteString("## Semantic Analysis\n\n")
		fmt.Fprintf(&b, "Overall similarity: %.2f\n\n", result.Semantic.OverallSimilarity)
		if len(result.Semantic.StrongMatches) > 0 {
			b.WriteString("**Strong conceptual matches:**\n\n")
			for _, m := range result.Semantic.StrongMatches {
				fmt.Fprintf(&b, "- %s (%.2f)\n", m.JobPhrase, m.Similarity)
			}
			b.WriteString("\n")
		}
		if len(result.Semantic.MissingConcepts) > 0 {
			b.WriteString("**Concepts not covered by the resume:**\n\n")
			for _, c := range result.Semantic.MissingConcepts {
				fmt.Fprintf(&b, "- %s\n", c)
			}
			b.WriteString("\n")
		}
	}

	if len(suggestions) > 0 {
		b.WriteString("## Suggestions\n\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "- **[%s]** %s\n", s.Type, s.Text)
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func writeKeywordSection(b *strings.Builder, title string, technical, soft, general []string) {
	if len(technical) == 0 && len(soft) == 0 && len(general) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(technical) > 0 {
		fmt.Fprintf(b, "- **Technical:** %s\n", strings.Join(technical, ", "))
	}
	if len(soft) > 0 {
		fmt.Fprintf(b, "- **Soft skills:** %s\n", strings.Join(soft, ", "))
	}
	if len(general) > 0 {
		fmt.Fprintf(b, "- **General:** %s\n", strings.Join(general, ", "))
	}
	b.WriteString("\n")
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the score summary for a completed match.
func (p *Printer) PrintScores(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:      %5.1f%%\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Keywords:     %5.1f%%\n", result.KeywordScore))
	sb.WriteString(fmt.Sprintf("Semantic:     %5.1f%%\n", result.SemanticScore))
	sb.WriteString(fmt.Sprintf("Technical:    %5.1f%%\n", result.TechnicalScore))
	sb.WriteString(fmt.Sprintf("Soft skills:  %5.1f%%\n", result.SoftSkillsScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matched %d of %d job keywords", result.TotalMatches, result.TotalJobKeywords))
	if result.Breakdown.SemanticBonus > 0 {
		sb.WriteString(fmt.Sprintf("\nSemantic bonus: +%.1f", result.Breakdown.SemanticBonus))
	}

	p.printBox("MATCH SCORES", sb.String())
}

// PrintKeywords outputs the matched and missing keyword lists.
func (p *Printer) PrintKeywords(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	writeKeywordList(&sb, "Matched technical", result.Matches.Technical)
	writeKeywordList(&sb, "Matched soft", result.Matches.SoftSkills)
	writeKeywordList(&sb, "Missing technical", result.Missing.Technical)
	writeKeywordList(&sb, "Missing soft", result.Missing.SoftSkills)
	writeKeywordList(&sb, "Missing general", result.Missing.General)
	if sb.Len() == 0 {
		return
	}

	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSemantic outputs the semantic analysis summary.
func (p *Printer) PrintSemantic(analysis *types.SemanticAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Similarity:   %.2f\n", analysis.OverallSimilarity))
	sb.WriteString(fmt.Sprintf("Distribution: high %.0f%% / medium %.0f%% / low %.0f%%\n",
		analysis.Distribution.High, analysis.Distribution.Medium, analysis.Distribution.Low))

	if len(analysis.StrongMatches) > 0 {
		sb.WriteString("\nStrong matches:\n")
		count := min(len(analysis.StrongMatches), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := analysis.StrongMatches[i]
			phrase := m.JobPhrase
			if len(phrase) > 40 {
				phrase = phrase[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", phrase, m.Similarity))
		}
		if len(analysis.StrongMatches) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.StrongMatches)-maxItemsToShow))
		}
	}

	if len(analysis.ConceptualGaps) > 0 {
		sb.WriteString("\nConceptual gaps:\n")
		for _, gap := range analysis.ConceptualGaps {
			sb.WriteString(fmt.Sprintf("  • %s\n", gap))
		}
	}

	p.printBox("SEMANTIC ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the generated suggestions.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range suggestions {
		sb.WriteString(fmt.Sprintf("[%s]\n", s.Type))
		sb.WriteString(fmt.Sprintf("  %s\n", s.Text))
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeKeywordList(sb *strings.Builder, label string, keywords []string) {
	if len(keywords) == 0 {
		return
	}
	joined := strings.Join(keywords, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	sb.WriteString(fmt.Sprintf("%s: %s\n", label, joined))
}

// Package report renders match results into shareable documents.
package report

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Meta carries presentation details that are not part of the match result
// itself.
type Meta struct {
	ResumeFilename string
	JobTitle       string
	GeneratedAt    time.Time
}

// Renderer turns a match result and its suggestions into a document.
type Renderer interface {
	Render(result *types.MatchResult, suggestions []types.Suggestion, meta Meta) ([]byte, error)
	ContentType() string
}

// GenerateError represents a failure while producing a report.
type GenerateError struct {
	Format string
	Cause  error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report error (%s): %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("report error (%s)", e.Format)
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}

// ForFormat returns the renderer for a format name ("markdown" or "json").
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "markdown", "md":
		return MarkdownRenderer{}, nil
	case "json":
		return JSONRenderer{}, nil
	default:
		return nil, &GenerateError{Format: format, Cause: fmt.Errorf("unknown report format")}
	}
}

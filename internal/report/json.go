package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-matcher/internal/types"
)

// JSONRenderer produces a machine-readable match report.
type JSONRenderer struct{}

func (JSONRenderer) ContentType() string { return "application/json" }

type jsonReport struct {
	ResumeFilename string             `json:"resume_filename,omitempty"`
	JobTitle       string             `json:"job_title,omitempty"`
	GeneratedAt    *time.Time         `json:"generated_at,omitempty"`
	Result         *types.MatchResult `json:"result"`
	Suggestions    []types.Suggestion `json:"suggestions"`
}

func (JSONRenderer) Render(result *types.MatchResult, suggestions []types.Suggestion, meta Meta) ([]byte, error) {
	if result == nil {
		return nil, &GenerateError{Format: "json", Cause: fmt.Errorf("nil result")}
	}
	if suggestions == nil {
		suggestions = []types.Suggestion{}
	}

	doc := jsonReport{
		ResumeFilename: meta.ResumeFilename,
		JobTitle:       meta.JobTitle,
		Result:         result,
		Suggestions:    suggestions,
	}
	if !meta.GeneratedAt.IsZero() {
		doc.GeneratedAt = &meta.GeneratedAt
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, &GenerateError{Format: "json", Cause: err}
	}
	return data, nil
}

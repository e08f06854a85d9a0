package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnalyzeRequest is the JSON request body for POST /analyze.
// Exactly one of JobText or JobURL must be provided.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobText        string `json:"job_text" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
	ResumeFilename string `json:"resume_filename,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
}

// AnalyzeResponse is the JSON response for a completed analysis.
type AnalyzeResponse struct {
	ID          uuid.UUID    `json:"id"`
	Result      *MatchResult `json:"result"`
	Suggestions []Suggestion `json:"suggestions"`
	CreatedAt   time.Time    `json:"created_at"`
}

// AnalysisSummary is the list representation of a stored analysis.
type AnalysisSummary struct {
	ID             uuid.UUID `json:"id"`
	ResumeFilename string    `json:"resume_filename,omitempty"`
	JobTitle       string    `json:"job_title,omitempty"`
	OverallScore   float64   `json:"overall_score"`
	CreatedAt      time.Time `json:"created_at"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

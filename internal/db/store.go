// Package db provides persistence for completed analyses.
package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Analysis is a stored match run.
type Analysis struct {
	ID             uuid.UUID          `json:"id"`
	ResumeFilename string             `json:"resume_filename,omitempty"`
	JobTitle       string             `json:"job_title,omitempty"`
	JobURL         string             `json:"job_url,omitempty"`
	Result         *types.MatchResult `json:"result"`
	Suggestions    []types.Suggestion `json:"suggestions"`
	CreatedAt      time.Time          `json:"created_at"`
}

// Store persists analyses. Get and List return nil (not an error) when
// nothing matches.
type Store interface {
	SaveAnalysis(ctx context.Context, a *Analysis) error
	GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error)
	ListAnalyses(ctx context.Context, limit int) ([]Analysis, error)
	DeleteAnalysis(ctx context.Context, id uuid.UUID) error
	Close()
}

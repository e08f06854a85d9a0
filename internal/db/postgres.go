package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-matcher/internal/types"
)

// PostgresStore wraps a PostgreSQL connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the analyses table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			resume_filename TEXT,
			job_title TEXT,
			job_url TEXT,
			result JSONB NOT NULL,
			suggestions JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}

// SaveAnalysis stores a completed analysis.
func (s *PostgresStore) SaveAnalysis(ctx context.Context, a *Analysis) error {
	resultBytes, err := json.Marshal(a.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	suggestionBytes, err := json.Marshal(a.Suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analyses (id, resume_filename, job_title, job_url, result, suggestions, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.ResumeFilename, a.JobTitle, a.JobURL, resultBytes, suggestionBytes, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetAnalysis retrieves an analysis by ID. Returns nil when not found.
func (s *PostgresStore) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var (
		a               Analysis
		resultBytes     []byte
		suggestionBytes []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, COALESCE(resume_filename, ''), COALESCE(job_title, ''), COALESCE(job_url, ''),
		        result, suggestions, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.ResumeFilename, &a.JobTitle, &a.JobURL, &resultBytes, &suggestionBytes, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	a.Result = &types.MatchResult{}
	if err := json.Unmarshal(resultBytes, a.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	if err := json.Unmarshal(suggestionBytes, &a.Suggestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
	}
	return &a, nil
}

// ListAnalyses retrieves recent analyses, newest first.
func (s *PostgresStore) ListAnalyses(ctx context.Context, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, COALESCE(resume_filename, ''), COALESCE(job_title, ''), COALESCE(job_url, ''),
		        result, suggestions, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var (
			a               Analysis
			resultBytes     []byte
			suggestionBytes []byte
		)
		if err := rows.Scan(&a.ID, &a.ResumeFilename, &a.JobTitle, &a.JobURL, &resultBytes, &suggestionBytes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		a.Result = &types.MatchResult{}
		if err := json.Unmarshal(resultBytes, a.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		if err := json.Unmarshal(suggestionBytes, &a.Suggestions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal suggestions: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// DeleteAnalysis removes an analysis by ID.
func (s *PostgresStore) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/document"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/matcher"
	"github.com/jonathan/resume-matcher/internal/report"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxUploadSize limits resume uploads to 10 MB.
const maxUploadSize = 10 << 20

// handleAnalyze runs an analysis from a JSON request body.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}
	s.runAnalysis(w, r, req)
}

// handleAnalyzeUpload runs an analysis from a multipart resume upload. The
// "resume" part carries the document; job_text, job_url, and job_title come
// from form fields.
func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %v", err))
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing resume file")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("failed to read resume file: %v", err))
		return
	}

	resumeText, err := document.FromBytes(data, header.Filename)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	req := types.AnalyzeRequest{
		ResumeText:     resumeText,
		JobText:        r.FormValue("job_text"),
		JobURL:         r.FormValue("job_url"),
		ResumeFilename: header.Filename,
		JobTitle:       r.FormValue("job_title"),
	}
	if req.JobText == "" && req.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "either job_text or job_url is required")
		return
	}
	s.runAnalysis(w, r, req)
}

// runAnalysis resolves the job text, scores the match, and persists the
// result.
func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request, req types.AnalyzeRequest) {
	ctx := r.Context()

	// The engine scores blank text as zero; the API rejects it instead of
	// storing a meaningless analysis.
	if strings.TrimSpace(req.ResumeText) == "" {
		inputErr := &matcher.InputError{Field: "resume"}
		s.errorResponse(w, HTTPStatus(inputErr), inputErr.Error())
		return
	}

	jobText := req.JobText
	if req.JobURL != "" {
		text, err := fetch.JobText(ctx, req.JobURL, fetch.JobOptions{
			UseBrowser: s.useBrowser,
			Verbose:    s.verbose,
		})
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		jobText = text
	}
	if strings.TrimSpace(jobText) == "" {
		inputErr := &matcher.InputError{Field: "job description"}
		s.errorResponse(w, HTTPStatus(inputErr), inputErr.Error())
		return
	}

	result, err := s.matcher.CalculateMatchScore(ctx, req.ResumeText, jobText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	suggestions := s.matcher.GenerateSuggestions(result)

	analysis := &db.Analysis{
		ID:             uuid.New(),
		ResumeFilename: req.ResumeFilename,
		JobTitle:       req.JobTitle,
		JobURL:         req.JobURL,
		Result:         result,
		Suggestions:    suggestions,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.SaveAnalysis(ctx, analysis); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("failed to save analysis: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, types.AnalyzeResponse{
		ID:          analysis.ID,
		Result:      result,
		Suggestions: suggestions,
		CreatedAt:   analysis.CreatedAt,
	})
}

// handleListAnalyses returns recent analyses as summaries.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	analyses, err := s.store.ListAnalyses(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	summaries := make([]types.AnalysisSummary, 0, len(analyses))
	for _, a := range analyses {
		summary := types.AnalysisSummary{
			ID:             a.ID,
			ResumeFilename: a.ResumeFilename,
			JobTitle:       a.JobTitle,
			CreatedAt:      a.CreatedAt,
		}
		if a.Result != nil {
			summary.OverallScore = a.Result.OverallScore
		}
		summaries = append(summaries, summary)
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleGetAnalysis returns a stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, ok := s.lookupAnalysis(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleAnalysisReport renders a stored analysis as a report. The format
// query parameter selects markdown (default) or json.
func (s *Server) handleAnalysisReport(w http.ResponseWriter, r *http.Request) {
	analysis, ok := s.lookupAnalysis(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "markdown"
	}
	renderer, err := report.ForFormat(format)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := renderer.Render(analysis.Result, analysis.Suggestions, report.Meta{
		ResumeFilename: analysis.ResumeFilename,
		JobTitle:       analysis.JobTitle,
		GeneratedAt:    analysis.CreatedAt,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// handleDeleteAnalysis removes a stored analysis.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	// Distinguish missing from failed so deletes are reported accurately
	existing, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing == nil {
		notFound := &ErrNotFound{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if err := s.store.DeleteAnalysis(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// lookupAnalysis parses the path ID and loads the analysis, writing the
// error response itself on failure.
func (s *Server) lookupAnalysis(w http.ResponseWriter, r *http.Request) (*db.Analysis, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return nil, false
	}

	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if analysis == nil {
		notFound := &ErrNotFound{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	return analysis, true
}

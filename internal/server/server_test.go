package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/matcher"
	"github.com/jonathan/resume-matcher/internal/types"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.Store == nil {
		cfg.Store = db.NewMemoryStore()
	}
	if cfg.Matcher == nil {
		cfg.Matcher = matcher.New(matcher.Options{})
	}
	srv, err := New(cfg)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleAnalyze_Success(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText: "Experienced Python developer skilled in AWS and team leadership",
		JobText:    "Looking for a Python developer with AWS and SQL experience",
		JobTitle:   "Backend Engineer",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	require.NotNil(t, resp.Result)
	assert.Contains(t, resp.Result.Matches.Technical, "python")
	assert.NotEmpty(t, resp.Suggestions)
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	srv := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_MissingJobSource(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{ResumeText: "resume"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation failed")
}

func TestHandleAnalyze_BlankResumeRejected(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText: "   ",
		JobText:    "Python developer needed",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resume text is empty")
}

func TestHandleAnalyze_BlankJobTextRejected(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText: "Python developer with AWS experience",
		JobText:    "   ",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job description text is empty")
}

func TestHandleGetAnalysis_RoundTrip(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText: "Python developer with AWS experience",
		JobText:    "Python and AWS engineer wanted",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created types.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, srv, http.MethodGet, "/analyses/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stored db.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	assert.Equal(t, created.ID, stored.ID)
}

func TestHandleGetAnalysis_NotFound(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodGet, "/analyses/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetAnalysis_InvalidID(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodGet, "/analyses/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListAnalyses(t *testing.T) {
	srv := newTestServer(t, Config{})

	for i := 0; i < 2; i++ {
		rec := doJSON(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{
			ResumeText: "Python developer",
			JobText:    fmt.Sprintf("Python engineer role %d", i),
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, srv, http.MethodGet, "/analyses", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []types.AnalysisSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 2)
}

func TestHandleListAnalyses_BadLimit(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodGet, "/analyses?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalysisReport_Markdown(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText: "Python developer with AWS experience",
		JobText:    "Python and AWS engineer wanted",
		JobTitle:   "Platform Engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created types.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, srv, http.MethodGet, "/analyses/"+created.ID.String()+"/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, rec.Body.String(), "# Resume Match Report")
	assert.Contains(t, rec.Body.String(), "Platform Engineer")
}

func TestHandleAnalysisReport_UnknownFormat(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText: "Python developer",
		JobText:    "Python engineer wanted",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created types.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, srv, http.MethodGet, "/analyses/"+created.ID.String()+"/report?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDeleteAnalysis(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{
		ResumeText: "Python developer",
		JobText:    "Python engineer wanted",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created types.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, srv, http.MethodDelete, "/analyses/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/analyses/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuth_Disabled(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := doJSON(t, srv, http.MethodGet, "/analyses", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_RequiredWhenSecretSet(t *testing.T) {
	srv := newTestServer(t, Config{JWTSecret: "test-secret"})

	rec := doJSON(t, srv, http.MethodGet, "/analyses", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	srv := newTestServer(t, Config{JWTSecret: "test-secret"})

	token, err := NewJWTService("test-secret", 1).GenerateToken("tester")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_WrongSecretRejected(t *testing.T) {
	srv := newTestServer(t, Config{JWTSecret: "test-secret"})

	token, err := NewJWTService("other-secret", 1).GenerateToken("tester")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthNeverRequiresAuth(t *testing.T) {
	srv := newTestServer(t, Config{JWTSecret: "test-secret"})

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNew_RequiresStoreAndMatcher(t *testing.T) {
	_, err := New(Config{Matcher: matcher.New(matcher.Options{})})
	assert.Error(t, err)

	_, err = New(Config{Store: db.NewMemoryStore()})
	assert.Error(t, err)
}

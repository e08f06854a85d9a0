package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/matcher"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      db.Store
	matcher    *matcher.Matcher
	jwtService *JWTService
	useBrowser bool
	verbose    bool
}

// Config holds server configuration.
type Config struct {
	Port int
	// Store persists analyses. Required; use db.NewMemoryStore for an
	// ephemeral server.
	Store db.Store
	// Matcher is the engine instance shared by all requests.
	Matcher *matcher.Matcher
	// JWTSecret enables bearer-token auth on analysis endpoints when set.
	JWTSecret string
	// UseBrowser enables the headless browser fallback for job URLs.
	UseBrowser bool
	Verbose    bool
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("server requires a store")
	}
	if cfg.Matcher == nil {
		return nil, fmt.Errorf("server requires a matcher")
	}

	s := &Server{
		store:      cfg.Store,
		matcher:    cfg.Matcher,
		jwtService: NewJWTService(cfg.JWTSecret, DefaultTokenExpirationHours),
		useBrowser: cfg.UseBrowser,
		verbose:    cfg.Verbose,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /analyze", s.withAuth(s.handleAnalyze))
	mux.HandleFunc("POST /analyze/upload", s.withAuth(s.handleAnalyzeUpload))
	mux.HandleFunc("GET /analyses", s.withAuth(s.handleListAnalyses))
	mux.HandleFunc("GET /analyses/{id}", s.withAuth(s.handleGetAnalysis))
	mux.HandleFunc("GET /analyses/{id}/report", s.withAuth(s.handleAnalysisReport))
	mux.HandleFunc("DELETE /analyses/{id}", s.withAuth(s.handleDeleteAnalysis))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Browser fallback can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.store.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

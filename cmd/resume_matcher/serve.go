package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/matcher"
	"github.com/jonathan/resume-matcher/internal/server"
)

// defaultPort is the listen port when neither flag nor config sets one.
const defaultPort = 8080

var (
	serveConfigPath string
	servePort       int
	serveDBURL      string
	serveJWTSecret  string
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for analyzing resumes
against job descriptions. Analyses are persisted to PostgreSQL when a
database URL is configured, otherwise kept in memory.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", defaultPort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().StringVar(&serveJWTSecret, "jwt-secret", "", "Secret for bearer-token auth (optional, defaults to JWT_SECRET env var; empty disables auth)")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Explicit flags win; the config file fills the gaps; env vars are the
	// last fallback. Bool flags don't merge (see MergeWithDefaults), so they
	// stay flag-only.
	var cfg config.Config
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDBURL
	}
	if cmd.Flags().Changed("jwt-secret") {
		cfg.JWTSecret = serveJWTSecret
	}

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		if serveVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", serveConfigPath)
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}

	var store db.Store
	if cfg.DatabaseURL != "" {
		pg, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return err
		}
		store = pg
	} else {
		log.Println("No database URL configured, analyses will be kept in memory")
		store = db.NewMemoryStore()
	}

	srv, err := server.New(server.Config{
		Port:       cfg.Port,
		Store:      store,
		Matcher:    matcher.New(matcher.Options{}),
		JWTSecret:  cfg.JWTSecret,
		UseBrowser: serveUseBrowser,
		Verbose:    serveVerbose,
	})
	if err != nil {
		store.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

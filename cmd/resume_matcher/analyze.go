package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/document"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matcher"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/report"
	"github.com/jonathan/resume-matcher/internal/skills"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long: `Analyzes how well a resume matches a job description: keyword overlap by skill
category, TF-IDF semantic similarity, a fused overall score, and concrete
improvement suggestions.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeVocabulary string
	analyzeReport     string
	analyzeOutput     string
	analyzeAdvise     bool
	analyzeAPIKey     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (pdf, docx, or txt)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCmd.Flags().StringVar(&analyzeVocabulary, "vocabulary", "", "Path to custom skill vocabulary JSON")
	analyzeCmd.Flags().StringVar(&analyzeReport, "report", "", "Report format: markdown or json (default: boxed summary)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the report to a file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeAdvise, "advise", false, "Generate LLM career advice for the gaps (requires API key)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("vocabulary") {
		cfg.Vocabulary = analyzeVocabulary
	}
	if cmd.Flags().Changed("report") {
		cfg.Report = analyzeReport
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 4: Load inputs
	resumeText, err := document.FromFile(cfg.Resume)
	if err != nil {
		return err
	}

	var jobText string
	if cfg.JobURL != "" {
		jobText, err = fetch.JobText(ctx, cfg.JobURL, fetch.JobOptions{
			UseBrowser: cfg.UseBrowser,
			Verbose:    cfg.Verbose,
		})
		if err != nil {
			return err
		}
	} else {
		jobText, err = document.FromFile(cfg.Job)
		if err != nil {
			return err
		}
	}

	// Step 5: Build the matcher, with a custom vocabulary if configured
	opts := matcher.Options{}
	if cfg.Vocabulary != "" {
		vocab, err := skills.LoadVocabulary(cfg.Vocabulary)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		opts.Vocabulary = vocab
	}
	engine := matcher.New(opts)

	result, err := engine.CalculateMatchScore(ctx, resumeText, jobText)
	if err != nil {
		return err
	}
	suggestions := engine.GenerateSuggestions(result)

	// Step 6: Output
	if cfg.Report != "" {
		renderer, err := report.ForFormat(cfg.Report)
		if err != nil {
			return err
		}
		doc, err := renderer.Render(result, suggestions, report.Meta{
			ResumeFilename: cfg.Resume,
		})
		if err != nil {
			return err
		}
		if analyzeOutput != "" {
			if err := os.WriteFile(analyzeOutput, doc, 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Printf("Report written to %s\n", analyzeOutput)
		} else {
			fmt.Println(string(doc))
		}
	} else {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScores(result)
		printer.PrintKeywords(result)
		if cfg.Verbose {
			printer.PrintSemantic(&result.Semantic)
		}
		printer.PrintSuggestions(suggestions)
	}

	// Step 7: Optional LLM advice
	if analyzeAdvise {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("--advise requires GEMINI_API_KEY environment variable or --api-key flag")
		}

		client, err := llm.NewGeminiClient(ctx, apiKey, "")
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		advice, err := llm.NewAdvisor(client).Advise(ctx, resumeText, jobText, result)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(advice)
	}

	return nil
}

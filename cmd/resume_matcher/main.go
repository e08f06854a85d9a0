// Package main provides the entry point for the resume matcher CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume and job description matching engine",
	Long:  "Resume Matcher scores how well a resume fits a job description using keyword extraction, skill categorization, and TF-IDF semantic analysis, and suggests concrete improvements.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

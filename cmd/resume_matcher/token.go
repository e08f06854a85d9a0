package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	tokenSecret  string
	tokenSubject string
	tokenHours   int
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the API server",
	Long:  `Generates a signed JWT accepted by a server started with the same secret.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSecret, "jwt-secret", "", "Signing secret (defaults to JWT_SECRET env var)")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "cli", "Subject name embedded in the token")
	tokenCmd.Flags().IntVar(&tokenHours, "hours", server.DefaultTokenExpirationHours, "Token lifetime in hours")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	secret := tokenSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		return fmt.Errorf("JWT_SECRET environment variable or --jwt-secret flag is required")
	}

	svc := server.NewJWTService(secret, tokenHours)
	token, err := svc.GenerateToken(tokenSubject)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

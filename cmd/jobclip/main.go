// Package main provides the jobclip CLI: capture job-posting text and relay
// it to the cover-letter generation service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobclip",
	Short: "Relay job postings to the cover-letter service",
	Long:  "jobclip validates selected job-posting text with a keyword heuristic and submits it to the remote cover-letter generation service.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

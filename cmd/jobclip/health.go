package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobclip/internal/relay"
	"github.com/jonathan/jobclip/internal/settings"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the remote service is reachable",
	RunE:  runHealth,
}

var healthAPIURL string

func init() {
	healthCmd.Flags().StringVar(&healthAPIURL, "api-url", os.Getenv("JOBCLIP_API_URL"), "Base URL of the remote service (overrides settings)")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	cfg, err := settings.Load()
	if err != nil {
		return err
	}

	client := relay.New(relay.ResolveBaseURL(healthAPIURL, cfg.APIBaseURL))
	if !client.HealthCheck(cmd.Context()) {
		return fmt.Errorf("service at %s is unhealthy or unreachable", client.BaseURL())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Service at %s is healthy\n", client.BaseURL())
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobclip/internal/relay"
	"github.com/jonathan/jobclip/internal/server"
	"github.com/jonathan/jobclip/internal/settings"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local relay daemon",
	Long:  `Start a local HTTP daemon that accepts selection payloads on POST /clip and relays job postings to the remote service.`,
	RunE:  runServe,
}

var (
	servePort    int
	serveAPIURL  string
	serveVerbose bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8787, "Port to listen on")
	serveCmd.Flags().StringVar(&serveAPIURL, "api-url", os.Getenv("JOBCLIP_API_URL"), "Base URL of the remote service (overrides settings)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Log each request")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := settings.Load()
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:    servePort,
		Client:  relay.New(relay.ResolveBaseURL(serveAPIURL, cfg.APIBaseURL)),
		Verbose: serveVerbose,
	})

	return srv.Start()
}

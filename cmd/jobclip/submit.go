package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobclip/internal/capture"
	"github.com/jonathan/jobclip/internal/heuristic"
	"github.com/jonathan/jobclip/internal/notify"
	"github.com/jonathan/jobclip/internal/relay"
	"github.com/jonathan/jobclip/internal/settings"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit job-posting text to the cover-letter service",
	Long:  "Submit job-posting text from a file, a URL, or stdin. Text that fails the job heuristic is skipped unless --force is given.",
	RunE:  runSubmit,
}

var (
	submitTextFile string
	submitURL      string
	submitAPIURL   string
	submitForce    bool
	submitShowInfo bool
	submitBrowser  bool
	submitVerbose  bool
)

func init() {
	submitCmd.Flags().StringVarP(&submitTextFile, "text-file", "t", "", "Path to a text file containing the selected job posting")
	submitCmd.Flags().StringVarP(&submitURL, "url", "u", "", "Page URL to capture the job posting from")
	submitCmd.Flags().StringVar(&submitAPIURL, "api-url", os.Getenv("JOBCLIP_API_URL"), "Base URL of the remote service (overrides settings)")
	submitCmd.Flags().BoolVar(&submitForce, "force", false, "Submit even when the text fails the job heuristic")
	submitCmd.Flags().BoolVar(&submitShowInfo, "show-info", false, "Print the extraction summary as JSON before submitting")
	submitCmd.Flags().BoolVar(&submitBrowser, "browser", false, "Render the page with a headless browser when plain HTTP yields too little text")
	submitCmd.Flags().BoolVarP(&submitVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	if submitTextFile != "" && submitURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	cfg, err := settings.Load()
	if err != nil {
		return err
	}

	payload, summary, err := resolveSelection(cmd)
	if err != nil {
		return err
	}

	notifier := notify.New(cmd.OutOrStdout(), cfg.ShowNotifications)

	if submitShowInfo {
		encoded, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	}

	if !submitForce && !heuristic.IsJobPosting(payload.SelectedText) {
		// Validation rejection is a silent skip, not an error
		notifier.Skipped(sourceName(payload))
		return nil
	}

	client := relay.New(relay.ResolveBaseURL(submitAPIURL, cfg.APIBaseURL))
	result, err := client.SubmitJob(cmd.Context(), payload)
	if err != nil {
		notifier.Failed(result)
		return fmt.Errorf("submission failed: %w", err)
	}

	notifier.Submitted(result)
	return nil
}

// resolveSelection builds the payload from whichever source was given:
// a page URL, a text file, or stdin.
func resolveSelection(cmd *cobra.Command) (relay.SelectionPayload, heuristic.Summary, error) {
	if submitURL != "" {
		captured, err := capture.FromURL(cmd.Context(), submitURL, &capture.Options{
			UseBrowser: submitBrowser,
			Verbose:    submitVerbose,
		})
		if err != nil {
			return relay.SelectionPayload{}, heuristic.Summary{}, fmt.Errorf("failed to capture page: %w", err)
		}
		return captured.Payload, captured.Summary, nil
	}

	var raw []byte
	var err error
	if submitTextFile != "" {
		raw, err = os.ReadFile(submitTextFile)
		if err != nil {
			if os.IsNotExist(err) {
				return relay.SelectionPayload{}, heuristic.Summary{}, fmt.Errorf("file not found: %w", err)
			}
			return relay.SelectionPayload{}, heuristic.Summary{}, fmt.Errorf("failed to read file: %w", err)
		}
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return relay.SelectionPayload{}, heuristic.Summary{}, fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	text := heuristic.CleanText(string(raw))
	if text == "" {
		return relay.SelectionPayload{}, heuristic.Summary{}, fmt.Errorf("no text to submit")
	}

	payload := relay.SelectionPayload{SelectedText: text}
	return payload, heuristic.ExtractKeyInfo(text), nil
}

// sourceName names the selection source for skip notices.
func sourceName(payload relay.SelectionPayload) string {
	if payload.SourceURL != "" {
		return payload.SourceURL
	}
	return submitTextFile
}

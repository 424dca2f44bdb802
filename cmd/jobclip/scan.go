package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobclip/internal/capture"
	"github.com/jonathan/jobclip/internal/notify"
	"github.com/jonathan/jobclip/internal/relay"
	"github.com/jonathan/jobclip/internal/settings"
)

var scanCmd = &cobra.Command{
	Use:   "scan <url> [url...]",
	Short: "Scan job pages and submit the ones that look like postings",
	Long:  "Fetch one or more pages, extract the posting text, and submit every page that passes the job heuristic. Pages that fail the heuristic are skipped silently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

var (
	scanAPIURL      string
	scanBrowser     bool
	scanDelay       time.Duration
	scanConcurrency int
	scanVerbose     bool
)

func init() {
	scanCmd.Flags().StringVar(&scanAPIURL, "api-url", os.Getenv("JOBCLIP_API_URL"), "Base URL of the remote service (overrides settings)")
	scanCmd.Flags().BoolVar(&scanBrowser, "browser", false, "Render pages with a headless browser when plain HTTP yields too little text")
	scanCmd.Flags().DurationVar(&scanDelay, "delay", 2*time.Second, "Settle delay before scanning starts")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 4, "Maximum pages scanned in parallel")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := settings.Load()
	if err != nil {
		return err
	}
	if !cfg.AutoExtract {
		return fmt.Errorf("automatic extraction is disabled; enable it with: jobclip settings set auto-extract on")
	}

	if scanDelay > 0 {
		select {
		case <-time.After(scanDelay):
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}
	}

	client := relay.New(relay.ResolveBaseURL(scanAPIURL, cfg.APIBaseURL))
	notifier := notify.New(cmd.OutOrStdout(), cfg.ShowNotifications)

	var failed atomic.Int64

	// Pages are independent: bound the fan-out but never cancel one page
	// because another failed.
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(scanConcurrency)

	for _, urlStr := range args {
		urlStr := urlStr
		g.Go(func() error {
			captured, err := capture.FromURL(ctx, urlStr, &capture.Options{
				UseBrowser: scanBrowser,
				Verbose:    scanVerbose,
			})
			if err != nil {
				failed.Add(1)
				fmt.Fprintf(cmd.ErrOrStderr(), "scan %s: %v\n", urlStr, err)
				return nil
			}

			if !captured.IsJob {
				notifier.Skipped(urlStr)
				return nil
			}

			result, err := client.SubmitJob(ctx, captured.Payload)
			if err != nil {
				failed.Add(1)
				notifier.Failed(result)
				return nil
			}

			notifier.Submitted(result)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d pages failed", n, len(args))
	}
	return nil
}

package capture

import (
	"context"
	"log"
	"time"

	"github.com/jonathan/jobclip/internal/heuristic"
	"github.com/jonathan/jobclip/internal/relay"
)

// Options configures a page capture.
type Options struct {
	// UseBrowser enables the headless-browser fallback for pages whose
	// plain HTTP response carries too little text.
	UseBrowser bool
	// Timeout overrides DefaultTimeout for the HTTP fetch.
	Timeout time.Duration
	// Verbose logs each pipeline stage.
	Verbose bool
}

// Capture is the outcome of scanning one page.
type Capture struct {
	Payload  relay.SelectionPayload
	Summary  heuristic.Summary
	Platform Platform
	// IsJob reports whether the extracted text passed the job heuristic.
	// A false value means the page should be skipped, not submitted.
	IsJob bool
}

// FromURL fetches a page and builds a submission payload from its main text.
// Validation uses the same heuristic as manual selection, so page scanning
// and manual submission cannot disagree on what counts as a job posting.
func FromURL(ctx context.Context, urlStr string, opts *Options) (*Capture, error) {
	if opts == nil {
		opts = &Options{}
	}

	platform := DetectPlatform(urlStr)
	if opts.Verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	page, err := fetchPage(ctx, urlStr, opts.Timeout)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(page.HTML))
	}

	text, err := extractMainText(page.HTML, contentSelectors(platform), noiseSelectors(platform)...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}

	if opts.UseBrowser && shouldUseBrowser(text) {
		if opts.Verbose {
			log.Printf("[VERBOSE] Content too short (%d chars), trying browser render", len(text))
		}
		if html, browserErr := renderWithBrowser(ctx, urlStr, opts.Verbose); browserErr == nil {
			if rendered, extractErr := extractMainText(html, contentSelectors(platform), noiseSelectors(platform)...); extractErr == nil {
				text = rendered
			}
		} else if opts.Verbose {
			// Keep the HTTP content when rendering fails
			log.Printf("[VERBOSE] Browser rendering failed: %v", browserErr)
		}
	}

	cleaned := heuristic.CleanText(text)
	if opts.Verbose {
		log.Printf("[VERBOSE] Cleaned text: %d chars", len(cleaned))
	}

	return &Capture{
		Payload: relay.SelectionPayload{
			SelectedText: cleaned,
			SourceURL:    urlStr,
			PageTitle:    page.Title,
		},
		Summary:  heuristic.ExtractKeyInfo(cleaned),
		Platform: platform,
		IsJob:    heuristic.IsJobPosting(cleaned),
	}, nil
}

// Package notify presents submission outcomes on the terminal. It stands in
// for desktop notifications: one line per event, suppressible via the
// show-notifications setting.
package notify

import (
	"fmt"
	"io"

	"github.com/jonathan/jobclip/internal/relay"
)

// Notifier writes outcome lines to a writer. A disabled notifier swallows
// everything except errors, which are always surfaced.
type Notifier struct {
	out     io.Writer
	enabled bool
}

// New creates a Notifier. enabled mirrors the ShowNotifications setting.
func New(out io.Writer, enabled bool) *Notifier {
	return &Notifier{out: out, enabled: enabled}
}

// Submitted reports a successful submission, composing the job title and
// company from the server response when present.
func (n *Notifier) Submitted(result *relay.SubmissionResult) {
	if !n.enabled {
		return
	}
	switch {
	case result.JobTitle != "" && result.CompanyName != "":
		fmt.Fprintf(n.out, "Job submitted: %s at %s\n", result.JobTitle, result.CompanyName)
	case result.JobTitle != "":
		fmt.Fprintf(n.out, "Job submitted: %s\n", result.JobTitle)
	default:
		fmt.Fprintln(n.out, "Job submitted for cover letter generation")
	}
}

// Failed reports a failed submission with whatever detail the result carries.
// Failures print even when notifications are disabled.
func (n *Notifier) Failed(result *relay.SubmissionResult) {
	if result != nil && result.Error != "" {
		fmt.Fprintf(n.out, "Submission failed: %s\n", result.Error)
		return
	}
	fmt.Fprintln(n.out, "Submission failed")
}

// Skipped reports that text did not pass the job heuristic. This is the
// silent-validation path: a notice, not an error.
func (n *Notifier) Skipped(source string) {
	if !n.enabled {
		return
	}
	if source != "" {
		fmt.Fprintf(n.out, "Skipped %s: does not look like a job posting\n", source)
		return
	}
	fmt.Fprintln(n.out, "Skipped: selection does not look like a job posting")
}

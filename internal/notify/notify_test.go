package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobclip/internal/relay"
)

func TestSubmitted_WithServerFields(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, true)

	n.Submitted(&relay.SubmissionResult{Success: true, JobTitle: "Engineer", CompanyName: "Acme"})

	assert.Equal(t, "Job submitted: Engineer at Acme\n", buf.String())
}

func TestSubmitted_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, true)

	n.Submitted(&relay.SubmissionResult{Success: true, JobTitle: "Engineer"})

	assert.Equal(t, "Job submitted: Engineer\n", buf.String())
}

func TestSubmitted_GenericLine(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, true)

	n.Submitted(&relay.SubmissionResult{Success: true})

	assert.Contains(t, buf.String(), "Job submitted")
}

func TestSubmitted_SuppressedWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, false)

	n.Submitted(&relay.SubmissionResult{Success: true, JobTitle: "Engineer"})
	n.Skipped("https://example.com")

	assert.Empty(t, buf.String())
}

func TestFailed_AlwaysPrints(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, false)

	n.Failed(&relay.SubmissionResult{Success: false, Error: "server returned HTTP 502"})

	assert.Contains(t, buf.String(), "HTTP 502")
}

func TestFailed_NilResult(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, true)

	n.Failed(nil)

	assert.Contains(t, buf.String(), "Submission failed")
}

func TestSkipped_WithSource(t *testing.T) {
	var buf bytes.Buffer
	n := New(&buf, true)

	n.Skipped("https://example.com/post")

	assert.Contains(t, buf.String(), "https://example.com/post")
	assert.Contains(t, buf.String(), "does not look like a job posting")
}

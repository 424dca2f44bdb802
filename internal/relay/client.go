// Package relay submits selected job-posting text to the remote
// cover-letter service. The client is a thin one-shot wrapper around the
// auto-populate endpoint: no retries, no queueing, no persistence.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the canonical address of the remote parsing service.
// It is used when neither an explicit override nor a persisted setting
// provides one.
const DefaultBaseURL = "https://freecov.vercel.app"

// SubmitPath is the endpoint that accepts selected text and populates the
// cover-letter form server-side.
const SubmitPath = "/api/auto-populate-job"

// HealthPath is the service liveness endpoint.
const HealthPath = "/api/health"

// HealthTimeout bounds the health probe. Submission itself uses the
// default transport timeout.
const HealthTimeout = 5 * time.Second

// SelectionPayload is the wire body for one submission. It is constructed
// per user action, sent once, and discarded.
type SelectionPayload struct {
	SelectedText string `json:"selectedText"`
	SourceURL    string `json:"sourceUrl"`
	PageTitle    string `json:"pageTitle"`
}

// SubmissionResult reports the outcome of a single submission. On failure,
// Error carries either the HTTP status or the transport error message.
type SubmissionResult struct {
	Success     bool   `json:"success"`
	StatusCode  int    `json:"status_code,omitempty"`
	Error       string `json:"error,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// Error represents a submission or health-check transport failure.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("relay error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("relay error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// serverResponse is the loosely decoded success body. The service may return
// richer data; only the fields used for the notification line are read, and
// no stricter schema is enforced client-side.
type serverResponse struct {
	Success bool `json:"success"`
	Data    struct {
		JobTitle    string `json:"jobTitle"`
		CompanyName string `json:"companyName"`
	} `json:"data"`
	Error string `json:"error"`
}

// Client talks to the remote job-parsing service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL. An empty baseURL falls back
// to DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// ResolveBaseURL picks the effective base URL: an explicit override wins,
// then the persisted settings value, then DefaultBaseURL.
func ResolveBaseURL(override, fromSettings string) string {
	if override != "" {
		return override
	}
	if fromSettings != "" {
		return fromSettings
	}
	return DefaultBaseURL
}

// BaseURL returns the resolved base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubmitJob performs exactly one POST of the payload to the auto-populate
// endpoint. The payload text is trimmed before sending. A non-2xx response
// or transport failure yields a result with Success=false and a matching
// error; the caller decides whether to surface it.
func (c *Client) SubmitJob(ctx context.Context, payload SelectionPayload) (*SubmissionResult, error) {
	payload.SelectedText = strings.TrimSpace(payload.SelectedText)

	endpoint := c.baseURL + SubmitPath
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return &SubmissionResult{Success: false, Error: "invalid base URL"},
			&Error{URL: endpoint, Message: "invalid base URL", Cause: err}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return &SubmissionResult{Success: false, Error: err.Error()},
			&Error{URL: endpoint, Message: "failed to encode payload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &SubmissionResult{Success: false, Error: err.Error()},
			&Error{URL: endpoint, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &SubmissionResult{Success: false, Error: err.Error()},
			&Error{URL: endpoint, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &SubmissionResult{Success: false, StatusCode: resp.StatusCode, Error: err.Error()},
			&Error{URL: endpoint, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result := &SubmissionResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Error:      fmt.Sprintf("server returned HTTP %d", resp.StatusCode),
		}
		return result, &Error{URL: endpoint, Message: result.Error}
	}

	result := &SubmissionResult{Success: true, StatusCode: resp.StatusCode}

	// Best-effort decode of the notification fields; a malformed body is
	// still a success because the submission itself went through.
	var decoded serverResponse
	if err := json.Unmarshal(respBody, &decoded); err == nil {
		result.JobTitle = decoded.Data.JobTitle
		result.CompanyName = decoded.Data.CompanyName
	}

	return result, nil
}

// HealthCheck reports whether the remote service answers its health endpoint
// with a success status. It never returns an error: any transport or server
// failure maps to false. The probe is bounded by HealthTimeout.
func (c *Client) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+HealthPath, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

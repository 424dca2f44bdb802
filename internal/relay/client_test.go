package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitJob_Success(t *testing.T) {
	var requests atomic.Int64
	var gotPayload SelectionPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, SubmitPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"jobTitle":"Software Engineer","companyName":"Acme"}}`))
	}))
	defer server.Close()

	client := New(server.URL)
	result, err := client.SubmitJob(context.Background(), SelectionPayload{
		SelectedText: "  Software Engineer Position. Requirements: Go. Responsibilities: ship.  ",
		SourceURL:    "https://jobs.example.com/123",
		PageTitle:    "Careers",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Software Engineer", result.JobTitle)
	assert.Equal(t, "Acme", result.CompanyName)

	// Exactly one POST per call
	assert.Equal(t, int64(1), requests.Load())

	// The wire payload carries the trimmed selection
	assert.Equal(t, "Software Engineer Position. Requirements: Go. Responsibilities: ship.", gotPayload.SelectedText)
	assert.Equal(t, "https://jobs.example.com/123", gotPayload.SourceURL)
	assert.Equal(t, "Careers", gotPayload.PageTitle)
}

func TestSubmitJob_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL)
	result, err := client.SubmitJob(context.Background(), SelectionPayload{SelectedText: "text"})

	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.Contains(t, result.Error, "500")

	var relayErr *Error
	assert.ErrorAs(t, err, &relayErr)
}

func TestSubmitJob_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL)
	result, _ := client.SubmitJob(context.Background(), SelectionPayload{SelectedText: "text"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "404")
}

func TestSubmitJob_TransportFailure(t *testing.T) {
	// Point at a server that is already closed
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := New(server.URL)
	result, err := client.SubmitJob(context.Background(), SelectionPayload{SelectedText: "text"})

	require.Error(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestSubmitJob_MalformedSuccessBodyStillSucceeds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := New(server.URL)
	result, err := client.SubmitJob(context.Background(), SelectionPayload{SelectedText: "text"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.JobTitle)
}

func TestHealthCheck_Healthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, HealthPath, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL)
	assert.True(t, client.HealthCheck(context.Background()))
}

func TestHealthCheck_Unhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL)
	assert.False(t, client.HealthCheck(context.Background()))
}

func TestHealthCheck_UnreachableReturnsFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := New(server.URL)

	// Must map transport failure to false, never panic or error
	assert.NotPanics(t, func() {
		assert.False(t, client.HealthCheck(context.Background()))
	})
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	client := New("https://example.com/")
	assert.Equal(t, "https://example.com", client.BaseURL())
}

func TestNew_EmptyUsesDefault(t *testing.T) {
	client := New("")
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
}

func TestResolveBaseURL_Order(t *testing.T) {
	tests := []struct {
		name         string
		override     string
		fromSettings string
		want         string
	}{
		{"override wins", "https://override.test", "https://settings.test", "https://override.test"},
		{"settings next", "", "https://settings.test", "https://settings.test"},
		{"default last", "", "", DefaultBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBaseURL(tt.override, tt.fromSettings))
		})
	}
}

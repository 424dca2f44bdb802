package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/jobclip/internal/heuristic"
	"github.com/jonathan/jobclip/internal/relay"
)

// clipRequest mirrors the selection payload a producer sends. Force skips
// the heuristic gate, matching the manual-submit escape hatch in the CLI.
type clipRequest struct {
	SelectedText string `json:"selectedText"`
	SourceURL    string `json:"sourceUrl"`
	PageTitle    string `json:"pageTitle"`
	Force        bool   `json:"force,omitempty"`
}

// clipResponse reports what the daemon did with one clip.
type clipResponse struct {
	Submitted bool                    `json:"submitted"`
	Reason    string                  `json:"reason,omitempty"`
	Summary   *heuristic.Summary      `json:"summary,omitempty"`
	Result    *relay.SubmissionResult `json:"result,omitempty"`
}

// handleClip validates one selection payload and relays it upstream.
// A heuristic rejection is a normal 200 with Submitted=false: the producer
// skipped silently, same as the validation-rejection path everywhere else.
func (s *Server) handleClip(w http.ResponseWriter, r *http.Request) {
	var req clipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	text := heuristic.CleanText(req.SelectedText)
	if text == "" {
		s.errorResponse(w, http.StatusBadRequest, "selectedText is required")
		return
	}

	summary := heuristic.ExtractKeyInfo(text)

	if !req.Force && !heuristic.IsJobPosting(text) {
		s.jsonResponse(w, http.StatusOK, clipResponse{
			Submitted: false,
			Reason:    "text does not look like a job posting",
			Summary:   &summary,
		})
		return
	}

	result, err := s.client.SubmitJob(r.Context(), relay.SelectionPayload{
		SelectedText: text,
		SourceURL:    strings.TrimSpace(req.SourceURL),
		PageTitle:    strings.TrimSpace(req.PageTitle),
	})
	if err != nil {
		// The submission result carries the status or transport detail;
		// the daemon answers 502 because the upstream, not the producer,
		// is at fault.
		s.jsonResponse(w, http.StatusBadGateway, clipResponse{
			Submitted: false,
			Reason:    result.Error,
			Summary:   &summary,
			Result:    result,
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, clipResponse{
		Submitted: true,
		Summary:   &summary,
		Result:    result,
	})
}

// handleHealth reports daemon liveness plus the upstream probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"upstream": s.client.HealthCheck(r.Context()),
	})
}

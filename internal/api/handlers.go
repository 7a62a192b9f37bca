package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nekomori/animeseek/internal/logging"
	"github.com/nekomori/animeseek/internal/torrent"
)

// HandleHealth reports liveness.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleSearch runs the full search flow for the q parameter and returns
// the extracted torrent metadata.
func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing_query", "q parameter is required")
		return
	}

	results := s.provider.Search(r.Context(), query)
	s.log.Info("api", "search", logging.F("query", query), logging.F("results", len(results)))

	if results == nil {
		results = []torrent.Metadata{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": results,
	})
}

// HandleResolve resolves the q parameter to the best-matching detail page
// URL without fetching it.
func (s *Server) HandleResolve(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing_query", "q parameter is required")
		return
	}

	url := s.provider.ResolvePage(r.Context(), query)
	if url == "" {
		writeError(w, http.StatusNotFound, "no_match", "no page matched the query")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"query": query,
		"url":   url,
	})
}

// parseRequest is the body of POST /api/parse.
type parseRequest struct {
	Name         string `json:"name"`
	EpisodeTitle string `json:"episode_title"`
	Magnet       string `json:"magnet"`
}

// HandleParse extracts metadata from a single torrent name.
func (s *Server) HandleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "missing_name", "name is required")
		return
	}

	writeJSON(w, http.StatusOK, torrent.Extract(req.Name, req.EpisodeTitle, req.Magnet))
}

// HandleMetrics returns a snapshot of the performance counters.
func (s *Server) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.Snapshot())
}

// HandleMetricsReset zeroes the performance counters.
func (s *Server) HandleMetricsReset(w http.ResponseWriter, r *http.Request) {
	s.metrics.Reset()
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"code":    code,
		"message": message,
	})
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nekomori/animeseek/internal/fetch"
	"github.com/nekomori/animeseek/internal/fuzzy"
	"github.com/nekomori/animeseek/internal/metrics"
	"github.com/nekomori/animeseek/internal/provider"
	"github.com/nekomori/animeseek/internal/resolver"
	"github.com/nekomori/animeseek/internal/torrent"
)

func newTestServer(t *testing.T) (*Server, *metrics.Metrics) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<a href="/view/1">Sousou no Frieren</a>`))
	})
	mux.HandleFunc("/view/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<table><tr>
			<td><a href="/view/1" title="[SubsPlease] Sousou no Frieren - 05 (1080p)">entry</a></td>
			<td><a href="magnet:?xt=urn:btih:0123456789abcdef0123456789abcdef01234567&dn=%5BSubsPlease%5D+Sousou+no+Frieren+-+05+%281080p%29">magnet</a></td>
		</tr></table>`))
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	met := metrics.New()
	matcher := fuzzy.NewMatcher(fuzzy.DefaultConfig(), met)
	res := resolver.New(matcher, nil, resolver.DefaultConfig(), nil)
	client := fetch.NewClient(time.Second, "", nil)
	p := provider.New(provider.Config{
		SearchURL: upstream.URL + "/search?q=%s",
		BaseURL:   upstream.URL,
	}, client, res, nil, met, nil)

	return NewServer(p, met, nil), met
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestSearchEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=Sousou+no+Frieren", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Query   string             `json:"query"`
		Results []torrent.Metadata `json:"results"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(body.Results))
	}
	if body.Results[0].EpisodeNumber != 5 {
		t.Errorf("episode = %d, want 5", body.Results[0].EpisodeNumber)
	}
	if body.Results[0].ReleaseGroup != "SubsPlease" {
		t.Errorf("release group = %q, want SubsPlease", body.Results[0].ReleaseGroup)
	}
}

func TestSearchMissingQuery(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestResolveEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/resolve?q=Sousou+no+Frieren", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["url"] == "" {
		t.Error("expected resolved url in response")
	}
}

func TestResolveNoMatch(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/resolve?q=completely+unrelated+query", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestParseEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	payload := []byte(`{"name":"[Judas] Mushoku Tensei S02 (Batch) (1080p)"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/parse", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var meta torrent.Metadata
	if err := json.NewDecoder(w.Body).Decode(&meta); err != nil {
		t.Fatal(err)
	}
	if !meta.IsBatch {
		t.Error("expected batch detection")
	}
	if meta.Resolution != "1080p" {
		t.Errorf("resolution = %q, want 1080p", meta.Resolution)
	}
	if meta.ReleaseGroup != "Judas" {
		t.Errorf("release group = %q, want Judas", meta.ReleaseGroup)
	}
}

func TestParseInvalidBody(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/parse", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestMetricsEndpointAndReset(t *testing.T) {
	s, met := newTestServer(t)
	met.RecordCacheHit()
	met.RecordFuzzyMatch()

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var snap metrics.Snapshot
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.CacheHits != 1 {
		t.Errorf("cache hits = %d, want 1", snap.CacheHits)
	}

	resetReq := httptest.NewRequest(http.MethodPost, "/api/metrics/reset", nil)
	resetW := httptest.NewRecorder()
	s.Handler().ServeHTTP(resetW, resetReq)
	if resetW.Code != http.StatusOK {
		t.Fatalf("expected 200 on reset, got %d", resetW.Code)
	}
	if got := met.Snapshot().CacheHits; got != 0 {
		t.Errorf("cache hits after reset = %d, want 0", got)
	}
}

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bookinglog/bookinglog/internal/api"
	"github.com/bookinglog/bookinglog/internal/ws"
)

func TestHealthLiveness_FileBackend(t *testing.T) {
	t.Parallel()

	hub := ws.NewHub(testLogger())
	h := api.NewHealthHandler(nil, hub, testLogger(), "0.3.0", "file")

	r := newTestRouter()
	r.GET("/health", h.Liveness)

	w := doRequest(r, http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status       string `json:"status"`
		Version      string `json:"version"`
		StoreBackend string `json:"store_backend"`
		Database     string `json:"database"`
		WSClients    int    `json:"ws_clients"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != "ok" || resp.Version != "0.3.0" {
		t.Errorf("body: %+v", resp)
	}
	if resp.StoreBackend != "file" {
		t.Errorf("backend: got %q", resp.StoreBackend)
	}
	// No pool configured for the file backend.
	if resp.Database != "not_configured" {
		t.Errorf("database: got %q", resp.Database)
	}
}

func TestHealthReadiness_FileBackendAlwaysReady(t *testing.T) {
	t.Parallel()

	hub := ws.NewHub(testLogger())
	h := api.NewHealthHandler(nil, hub, testLogger(), "0.3.0", "file")

	r := newTestRouter()
	r.GET("/ready", h.Readiness)

	w := doRequest(r, http.MethodGet, "/ready", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Status != "ready" || resp.Checks["store"] != "ok" {
		t.Errorf("body: %+v", resp)
	}
}

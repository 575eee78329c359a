package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "ok", Version: "0.3.0", StoreBackend: "file"})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("got status %q, want ok", resp.Status)
	}
	if resp.StoreBackend != "file" {
		t.Errorf("got backend %q, want file", resp.StoreBackend)
	}
}

func TestSessionLogging(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/sessions/sess-001/created": func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Snapshot SessionSnapshot `json:"snapshot"`
				Actor    string          `json:"actor"`
			}
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 201, AuditRecord{
				ID:          "rec-1",
				SubjectID:   "sess-001",
				ActionType:  "created",
				PerformedBy: req.Actor,
			})
		},
		"POST /api/v1/sessions/sess-001/updated": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 201, ChangeSet{
				ChangedDimensions: []string{"price"},
				Records: []AuditRecord{{
					ID:            "rec-2",
					SubjectID:     "sess-001",
					ActionType:    "price_changed",
					PreviousValue: "£350",
					NewValue:      "£395",
				}},
			})
		},
		"POST /api/v1/sessions/sess-001/bookings": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 201, AuditRecord{ID: "rec-3", ActionType: "booking_added"})
		},
	})

	ctx := context.Background()

	rec, err := c.Sessions.LogCreated(ctx, "sess-001", SessionSnapshot{CourseID: "efaw", Capacity: 12}, "jane@example.com")
	if err != nil {
		t.Fatalf("LogCreated error: %v", err)
	}
	if rec.ActionType != "created" || rec.PerformedBy != "jane@example.com" {
		t.Errorf("LogCreated: got %+v", rec)
	}

	changes, err := c.Sessions.LogUpdated(ctx, "sess-001",
		SessionSnapshot{CourseID: "efaw", Price: 350},
		SessionSnapshot{CourseID: "efaw", Price: 395},
		"jane@example.com")
	if err != nil {
		t.Fatalf("LogUpdated error: %v", err)
	}
	if len(changes.ChangedDimensions) != 1 || changes.ChangedDimensions[0] != "price" {
		t.Errorf("LogUpdated: got dimensions %v", changes.ChangedDimensions)
	}
	if changes.Records[0].NewValue != "£395" {
		t.Errorf("LogUpdated: got new value %q", changes.Records[0].NewValue)
	}

	rec, err = c.Sessions.LogBookingAdded(ctx, "sess-001", BookingInfo{BookingReference: "BK-100", AttendeeName: "Sam Patel"}, "jane@example.com")
	if err != nil {
		t.Fatalf("LogBookingAdded error: %v", err)
	}
	if rec.ActionType != "booking_added" {
		t.Errorf("LogBookingAdded: got action %q", rec.ActionType)
	}
}

func TestVenueChanges(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/venues/venue-001/changes": func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Previous VenueSnapshot `json:"previous"`
				Next     VenueSnapshot `json:"next"`
				Actor    string        `json:"actor"`
			}
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			if req.Previous.Name == req.Next.Name {
				jsonResponse(w, 201, map[string]any{"records": []AuditRecord{}})
				return
			}
			jsonResponse(w, 201, map[string]any{"records": []AuditRecord{{
				ID:            "rec-9",
				SubjectID:     "venue-001",
				ActionType:    "venue_updated",
				PreviousValue: req.Previous.Name,
				NewValue:      req.Next.Name,
			}}})
		},
	})

	records, err := c.Venues.LogChanges(context.Background(), "venue-001",
		VenueSnapshot{Name: "Old Hall"}, VenueSnapshot{Name: "New Hall"}, "ops@example.com")
	if err != nil {
		t.Fatalf("LogChanges error: %v", err)
	}
	if len(records) != 1 || records[0].NewValue != "New Hall" {
		t.Errorf("LogChanges: got %+v", records)
	}
}

func TestAuditQuery(t *testing.T) {
	var gotQuery string
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/audit": func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			jsonResponse(w, 200, queryResponse{
				Data:    []AuditRecord{{ID: "rec-1", SubjectID: "sess-001"}},
				HasMore: true,
			})
		},
		"GET /api/v1/audit/sess-001": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]any{"data": []AuditRecord{{ID: "rec-1"}, {ID: "rec-2"}}})
		},
		"GET /api/v1/audit/sess-001/summary": func(w http.ResponseWriter, _ *http.Request) {
			now := time.Now().UTC()
			jsonResponse(w, 200, Summary{
				SubjectID:       "sess-001",
				Total:           4,
				NewestTimestamp: &now,
				NewestRelative:  "Just now",
				CountsByAction:  map[string]int{"Updated": 2},
			})
		},
	})

	ctx := context.Background()

	records, hasMore, err := c.Audit.Query(ctx, AuditQueryOptions{SubjectID: "sess-001", Limit: 10})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(records) != 1 || !hasMore {
		t.Errorf("Query: got %d records, hasMore=%v", len(records), hasMore)
	}
	if gotQuery != "limit=10&subject_id=sess-001" {
		t.Errorf("Query: sent params %q", gotQuery)
	}

	records, err = c.Audit.RecordsFor(ctx, "sess-001")
	if err != nil {
		t.Fatalf("RecordsFor error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("RecordsFor: got %d records", len(records))
	}

	summary, err := c.Audit.Summary(ctx, "sess-001")
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if summary.Total != 4 || summary.NewestRelative != "Just now" {
		t.Errorf("Summary: got %+v", summary)
	}
}

func TestAPIErrorParsing(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/audit/missing/summary": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 400, map[string]string{
				"code":       "invalid_request",
				"message":    "subject id is required",
				"request_id": "req-123",
			})
		},
		"GET /api/v1/audit/broken/summary": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(500)
			w.Write([]byte("internal server error")) //nolint:errcheck
		},
	})

	ctx := context.Background()

	_, err := c.Audit.Summary(ctx, "missing")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !IsInvalidRequest(err) {
		t.Errorf("IsInvalidRequest = false for %v", err)
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("got %T, want *APIError", err)
	}
	if apiErr.Code != "invalid_request" || apiErr.RequestID != "req-123" {
		t.Errorf("got %+v", apiErr)
	}

	_, err = c.Audit.Summary(ctx, "broken")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	apiErr, ok = err.(*APIError)
	if !ok {
		t.Fatalf("got %T, want *APIError", err)
	}
	if apiErr.StatusCode != 500 || apiErr.Code != "unknown" {
		t.Errorf("got %+v", apiErr)
	}
}

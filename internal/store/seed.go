package store

import (
	"context"
	"strings"
	"time"

	"github.com/bookinglog/bookinglog/internal/models"
)

// Current-format subject identifiers carry an entity prefix. Collections
// whose subjects use the legacy bare-numeric format are reseeded wholesale;
// there is no in-place migration path for pre-prefix data.
var currentSubjectPrefixes = []string{"sess-", "venue-"}

// hasCurrentFormat is the format probe: it reports whether the collection
// looks like current-format data. An empty collection fails the probe.
func hasCurrentFormat(records []models.AuditRecord) bool {
	if len(records) == 0 {
		return false
	}

	for _, r := range records {
		ok := false
		for _, prefix := range currentSubjectPrefixes {
			if strings.HasPrefix(r.SubjectID, prefix) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}

// EnsureSeeded installs the fixed seed collection when no valid collection
// exists, or when the persisted collection fails the format probe. It is
// idempotent: once a valid current-format collection is persisted, further
// calls are no-ops. Call it once at application startup.
func (s *RecordStore) EnsureSeeded(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, valid := s.load(ctx)
	if valid && hasCurrentFormat(records) {
		return
	}

	if valid {
		s.log.WithField("count", len(records)).Warn("store.seed replacing legacy-format collection")
	} else {
		s.log.Info("store.seed installing seed collection")
	}

	s.save(ctx, SeedRecords())
}

// SeedRecords returns the fixed seed collection installed on first use.
// Timestamps and ids are deterministic so repeated seeding yields an
// identical collection.
func SeedRecords() []models.AuditRecord {
	return []models.AuditRecord{
		{
			ID:          "0194a2b0-0000-7000-8000-000000000001",
			SubjectID:   "sess-001",
			ActionType:  models.ActionCreated,
			Timestamp:   time.Date(2026, 1, 12, 9, 30, 0, 0, time.UTC),
			PerformedBy: "System",
			Details: map[string]any{
				"courseId":   "course-first-aid",
				"courseName": "Emergency First Aid at Work",
				"date":       "2026-02-24",
				"time":       "09:00 - 13:00",
				"trainer":    "James Thompson",
				"capacity":   15,
				"price":      75,
			},
		},
		{
			ID:          "0194a2b0-0000-7000-8000-000000000002",
			SubjectID:   "sess-001",
			ActionType:  models.ActionBookingAdded,
			Timestamp:   time.Date(2026, 1, 14, 11, 5, 0, 0, time.UTC),
			PerformedBy: "Sarah Mitchell",
			Details: map[string]any{
				"bookingReference": "BK-1041",
				"attendeeName":     "Priya Shah",
				"attendeeEmail":    "priya.shah@example.com",
			},
		},
		{
			ID:            "0194a2b0-0000-7000-8000-000000000003",
			SubjectID:     "sess-001",
			ActionType:    models.ActionRescheduled,
			Timestamp:     time.Date(2026, 1, 20, 15, 45, 0, 0, time.UTC),
			PerformedBy:   "Sarah Mitchell",
			PreviousValue: "2026-02-17 09:00 - 13:00",
			NewValue:      "2026-02-24 09:00 - 13:00",
			Details: map[string]any{
				"previousDate": "2026-02-17",
				"previousTime": "09:00 - 13:00",
			},
		},
		{
			ID:          "0194a2b0-0000-7000-8000-000000000004",
			SubjectID:   "sess-002",
			ActionType:  models.ActionCreated,
			Timestamp:   time.Date(2026, 1, 22, 10, 0, 0, 0, time.UTC),
			PerformedBy: "System",
			Details: map[string]any{
				"courseId":   "course-manual-handling",
				"courseName": "Manual Handling",
				"date":       "2026-03-03",
				"time":       "13:00 - 16:30",
				"trainer":    "Claire Webb",
				"capacity":   12,
				"price":      55,
			},
		},
		{
			ID:            "0194a2b0-0000-7000-8000-000000000005",
			SubjectID:     "venue-001",
			ActionType:    models.ActionFeeUpdated,
			Timestamp:     time.Date(2026, 1, 26, 14, 20, 0, 0, time.UTC),
			PerformedBy:   "Sarah Mitchell",
			PreviousValue: "£120",
			NewValue:      "£135",
		},
		{
			ID:          "0194a2b0-0000-7000-8000-000000000006",
			SubjectID:   "venue-001",
			ActionType:  models.ActionContactUpdated,
			Timestamp:   time.Date(2026, 1, 28, 9, 10, 0, 0, time.UTC),
			PerformedBy: "Sarah Mitchell",
			Details: map[string]any{
				"changedFields": "Contact Name, Contact Phone",
			},
		},
	}
}

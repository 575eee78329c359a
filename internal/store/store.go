// Package store persists the flat collection of audit records as a single
// named JSON document against a blob.Medium.
//
// The store follows a degrade-don't-fail policy: unreadable or malformed
// persisted data loads as an empty collection, and write failures are
// logged and counted but never surfaced to the caller's control flow. A
// history subsystem must never make the caller's save operation fail.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bookinglog/bookinglog/internal/blob"
	"github.com/bookinglog/bookinglog/internal/metrics"
	"github.com/bookinglog/bookinglog/internal/models"
)

// CollectionName is the name of the persisted audit record collection.
const CollectionName = "audit_records"

const defaultOpTimeout = 10 * time.Second

// RecordStore holds the full, flat collection of audit records behind
// load/save operations. Every mutation is a full read-modify-write of the
// whole collection, serialized by an in-process mutex. Cross-process
// writers are out of contract and race last-write-wins.
type RecordStore struct {
	medium blob.Medium
	log    *logrus.Logger
	mu     sync.Mutex
}

// NewRecordStore creates a RecordStore over the given medium.
func NewRecordStore(medium blob.Medium, log *logrus.Logger) *RecordStore {
	return &RecordStore{medium: medium, log: log}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultOpTimeout)
}

// load reads and decodes the persisted collection. The second return is
// false when no valid collection exists (absent, unreadable, or failing to
// decode); the store treats all of those identically as "no data".
func (s *RecordStore) load(ctx context.Context) ([]models.AuditRecord, bool) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	data, err := s.medium.Get(ctx, CollectionName)
	if errors.Is(err, blob.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		s.log.WithError(err).Warn("store.load failed, treating as empty")
		metrics.StoreLoadFailures.Inc()

		return nil, false
	}

	var records []models.AuditRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.WithError(err).Warn("store.load malformed collection, treating as empty")
		metrics.StoreLoadFailures.Inc()

		return nil, false
	}

	return records, true
}

// save encodes and writes the full collection. Write failures are logged
// and dropped.
func (s *RecordStore) save(ctx context.Context, records []models.AuditRecord) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	data, err := json.Marshal(records)
	if err != nil {
		// Records contain only JSON-representable values; treat a marshal
		// failure the same as a write failure rather than halting the caller.
		s.log.WithError(err).Error("store.save marshal failed, dropping write")
		metrics.StoreSaveFailures.Inc()

		return
	}

	if err := s.medium.Set(ctx, CollectionName, data); err != nil {
		s.log.WithError(err).Error("store.save write failed, dropping write")
		metrics.StoreSaveFailures.Inc()
	}
}

// Load returns the persisted collection, or an empty collection when no
// valid one exists.
func (s *RecordStore) Load(ctx context.Context) []models.AuditRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, _ := s.load(ctx)

	return records
}

// Save replaces the entire persisted collection.
func (s *RecordStore) Save(ctx context.Context, records []models.AuditRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.save(ctx, records)
}

// Append adds records to the persisted collection. The read-modify-write
// runs under the store mutex so concurrent in-process appenders cannot
// lose each other's records.
func (s *RecordStore) Append(ctx context.Context, recs ...models.AuditRecord) {
	if len(recs) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, _ := s.load(ctx)
	records = append(records, recs...)
	s.save(ctx, records)

	for _, r := range recs {
		metrics.RecordsCreated.WithLabelValues(string(r.ActionType)).Inc()
	}

	s.log.WithFields(logrus.Fields{
		"count": len(recs),
		"total": len(records),
	}).Debug("audit.append")
}

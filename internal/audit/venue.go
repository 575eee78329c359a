package audit

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bookinglog/bookinglog/internal/models"
)

// DiffVenues compares two venue snapshots and returns the audit records
// describing what changed, in the fixed evaluation order. It creates no
// side effects; callers that keep an embedded history can append the
// returned records themselves, or use VenueLog to persist them in the
// shared store.
func DiffVenues(subjectID string, prev, next models.VenueSnapshot, actor string) []models.AuditRecord {
	var recs []models.AuditRecord

	if norm(prev.Name) != norm(next.Name) {
		recs = append(recs, newValueRecord(subjectID, models.ActionVenueUpdated, actor,
			map[string]any{"field": "name"}, prev.Name, next.Name))
	}

	// Contact fields coalesce into a single record naming what changed.
	var contactChanged []string
	if norm(prev.ContactName) != norm(next.ContactName) {
		contactChanged = append(contactChanged, "Contact Name")
	}
	if norm(prev.ContactEmail) != norm(next.ContactEmail) {
		contactChanged = append(contactChanged, "Contact Email")
	}
	if norm(prev.ContactPhone) != norm(next.ContactPhone) {
		contactChanged = append(contactChanged, "Contact Phone")
	}
	if len(contactChanged) > 0 {
		recs = append(recs, newRecord(subjectID, models.ActionContactUpdated, actor,
			map[string]any{"changedFields": strings.Join(contactChanged, ", ")}))
	}

	if prev.Fee != next.Fee {
		recs = append(recs, newValueRecord(subjectID, models.ActionFeeUpdated, actor,
			nil, formatPrice(prev.Fee), formatPrice(next.Fee)))
	}

	if norm(prev.ExpiryDate) != norm(next.ExpiryDate) {
		recs = append(recs, newValueRecord(subjectID, models.ActionExpiryUpdated, actor,
			nil, prev.ExpiryDate, next.ExpiryDate))
	}

	if prev.Capacity != next.Capacity {
		recs = append(recs, newValueRecord(subjectID, models.ActionVenueCapacityUpdated, actor,
			nil, strconv.Itoa(prev.Capacity), strconv.Itoa(next.Capacity)))
	}

	// Address fields coalesce the same way contact fields do.
	var addressChanged []string
	if norm(prev.AddressLine1) != norm(next.AddressLine1) {
		addressChanged = append(addressChanged, "Address Line 1")
	}
	if norm(prev.AddressLine2) != norm(next.AddressLine2) {
		addressChanged = append(addressChanged, "Address Line 2")
	}
	if norm(prev.City) != norm(next.City) {
		addressChanged = append(addressChanged, "City")
	}
	if norm(prev.Postcode) != norm(next.Postcode) {
		addressChanged = append(addressChanged, "Postcode")
	}
	if len(addressChanged) > 0 {
		recs = append(recs, newRecord(subjectID, models.ActionVenueUpdated, actor,
			map[string]any{"changedFields": strings.Join(addressChanged, ", ")}))
	}

	if norm(prev.Notes) != norm(next.Notes) {
		recs = append(recs, newRecord(subjectID, models.ActionVenueUpdated, actor,
			map[string]any{"note": "Trainer and access notes updated"}))
	}

	if norm(prev.Status) != norm(next.Status) {
		recs = append(recs, newValueRecord(subjectID, models.ActionVenueUpdated, actor,
			map[string]any{"field": "status"}, prev.Status, next.Status))
	}

	return recs
}

// VenueLog persists venue change records in the shared record store.
// Venue history lives alongside session history, keyed by subject id,
// rather than embedded on each venue record.
type VenueLog struct {
	store     Appender
	log       *logrus.Logger
	broadcast Broadcaster
}

// NewVenueLog creates a VenueLog. broadcast may be nil.
func NewVenueLog(store Appender, log *logrus.Logger, broadcast Broadcaster) *VenueLog {
	return &VenueLog{store: store, log: log, broadcast: broadcast}
}

// LogChanges diffs the snapshots, appends the resulting records, and
// returns them. A no-op diff appends nothing and returns an empty list.
func (l *VenueLog) LogChanges(ctx context.Context, subjectID string, prev, next models.VenueSnapshot, actor string) []models.AuditRecord {
	recs := DiffVenues(subjectID, prev, next, actor)
	if len(recs) == 0 {
		return nil
	}

	l.store.Append(ctx, recs...)

	if l.broadcast != nil {
		for _, r := range recs {
			l.broadcast.BroadcastRecord(r)
		}
	}

	l.log.WithFields(logrus.Fields{
		"subject_id": subjectID,
		"count":      len(recs),
	}).Debug("audit.venue_updated")

	return recs
}

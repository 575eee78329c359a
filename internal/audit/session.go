package audit

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/bookinglog/bookinglog/internal/models"
)

// Appender is the record store surface the loggers depend on.
type Appender interface {
	Append(ctx context.Context, recs ...models.AuditRecord)
}

// Broadcaster pushes newly created records to live consumers. Optional.
type Broadcaster interface {
	BroadcastRecord(rec models.AuditRecord)
}

// SessionLog turns session lifecycle events and mutations into audit
// records appended to the shared record store.
type SessionLog struct {
	store     Appender
	log       *logrus.Logger
	broadcast Broadcaster
}

// NewSessionLog creates a SessionLog. broadcast may be nil.
func NewSessionLog(store Appender, log *logrus.Logger, broadcast Broadcaster) *SessionLog {
	return &SessionLog{store: store, log: log, broadcast: broadcast}
}

func (l *SessionLog) append(ctx context.Context, recs ...models.AuditRecord) {
	l.store.Append(ctx, recs...)

	if l.broadcast != nil {
		for _, r := range recs {
			l.broadcast.BroadcastRecord(r)
		}
	}
}

// LogCreated records a session creation, carrying the full initial
// snapshot in the record details.
func (l *SessionLog) LogCreated(ctx context.Context, subjectID string, snapshot models.SessionSnapshot, actor string) models.AuditRecord {
	r := newRecord(subjectID, models.ActionCreated, actor, map[string]any{
		"courseId":   snapshot.CourseID,
		"courseName": snapshot.CourseName,
		"date":       snapshot.Date,
		"time":       snapshot.Time,
		"trainer":    snapshot.Trainer,
		"capacity":   snapshot.Capacity,
		"price":      snapshot.Price,
	})
	l.append(ctx, r)

	return r
}

// LogUpdated compares the previous and next snapshots across the fixed,
// ordered list of tracked dimensions and emits one record per changed
// dimension. When no tracked dimension changed it emits a single generic
// record, so every save operation produces at least one record.
func (l *SessionLog) LogUpdated(ctx context.Context, subjectID string, prev, next models.SessionSnapshot, actor string) models.ChangeSet {
	dims := []string{}
	var recs []models.AuditRecord

	if norm(prev.Date) != norm(next.Date) || norm(prev.Time) != norm(next.Time) {
		dims = append(dims, "schedule")
		recs = append(recs, newValueRecord(subjectID, models.ActionRescheduled, actor,
			map[string]any{
				"previousDate": prev.Date,
				"previousTime": prev.Time,
			},
			prev.Date+" "+prev.Time,
			next.Date+" "+next.Time,
		))
	}

	if norm(prev.Trainer) != norm(next.Trainer) {
		dims = append(dims, "trainer")
		recs = append(recs, newValueRecord(subjectID, models.ActionTrainerChanged, actor,
			nil, prev.Trainer, next.Trainer))
	}

	if prev.Capacity != next.Capacity {
		dims = append(dims, "capacity")
		recs = append(recs, newValueRecord(subjectID, models.ActionCapacityChanged, actor,
			nil, strconv.Itoa(prev.Capacity), strconv.Itoa(next.Capacity)))
	}

	if prev.Price != next.Price {
		dims = append(dims, "price")
		recs = append(recs, newValueRecord(subjectID, models.ActionPriceChanged, actor,
			nil, formatPrice(prev.Price), formatPrice(next.Price)))
	}

	if norm(prev.CourseID) != norm(next.CourseID) {
		dims = append(dims, "course")
		recs = append(recs, newValueRecord(subjectID, models.ActionUpdated, actor,
			map[string]any{"field": "course"},
			prev.CourseDisplayName(), next.CourseDisplayName()))
	}

	if len(recs) == 0 {
		recs = append(recs, newRecord(subjectID, models.ActionUpdated, actor,
			map[string]any{"note": "Event details updated"}))
	}

	l.append(ctx, recs...)
	l.log.WithFields(logrus.Fields{
		"subject_id": subjectID,
		"dimensions": dims,
	}).Debug("audit.session_updated")

	return models.ChangeSet{ChangedDimensions: dims, Records: recs}
}

// LogCancelled records a session cancellation with its reason.
func (l *SessionLog) LogCancelled(ctx context.Context, subjectID, reason, actor string) models.AuditRecord {
	r := newRecord(subjectID, models.ActionCancelled, actor, map[string]any{
		"reason": reason,
	})
	l.append(ctx, r)

	return r
}

// LogBookingAdded records a new booking on a session.
func (l *SessionLog) LogBookingAdded(ctx context.Context, subjectID string, booking models.BookingInfo, actor string) models.AuditRecord {
	r := newRecord(subjectID, models.ActionBookingAdded, actor, bookingDetails(booking, false))
	l.append(ctx, r)

	return r
}

// LogBookingCancelled records a booking cancellation, including whether a
// refund was issued.
func (l *SessionLog) LogBookingCancelled(ctx context.Context, subjectID string, booking models.BookingInfo, actor string) models.AuditRecord {
	r := newRecord(subjectID, models.ActionBookingCancelled, actor, bookingDetails(booking, true))
	l.append(ctx, r)

	return r
}

func bookingDetails(booking models.BookingInfo, withRefund bool) map[string]any {
	details := map[string]any{
		"bookingReference": booking.BookingReference,
		"attendeeName":     booking.AttendeeName,
	}
	if booking.AttendeeEmail != "" {
		details["attendeeEmail"] = booking.AttendeeEmail
	}
	if withRefund {
		details["refundIssued"] = booking.RefundIssued
	}

	return details
}

// LogAttendeeTransferred records an attendee moving between sessions. The
// record is attached to the session the attendee left.
func (l *SessionLog) LogAttendeeTransferred(ctx context.Context, subjectID string, transfer models.TransferInfo, actor string) models.AuditRecord {
	r := newRecord(subjectID, models.ActionAttendeeTransferred, actor, map[string]any{
		"bookingReference": transfer.BookingReference,
		"attendeeName":     transfer.AttendeeName,
		"fromSessionId":    transfer.FromSessionID,
		"toSessionId":      transfer.ToSessionID,
	})
	l.append(ctx, r)

	return r
}

// LogZoomLinkChanged records a meeting link being set on a session. isNew
// distinguishes first-time links from replacements.
func (l *SessionLog) LogZoomLinkChanged(ctx context.Context, subjectID, link string, isNew bool, actor string) models.AuditRecord {
	action := models.ActionZoomLinkUpdated
	if isNew {
		action = models.ActionZoomLinkAdded
	}

	r := newRecord(subjectID, action, actor, map[string]any{"link": link})
	l.append(ctx, r)

	return r
}

// LogNoteAdded records an admin note attached to a session.
func (l *SessionLog) LogNoteAdded(ctx context.Context, subjectID, note, actor string) models.AuditRecord {
	r := newRecord(subjectID, models.ActionNoteAdded, actor, map[string]any{"note": note})
	l.append(ctx, r)

	return r
}

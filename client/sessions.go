package client

import (
	"context"
	"fmt"
	"net/url"
)

// SessionService logs session lifecycle events.
type SessionService struct {
	c *Client
}

func sessionPath(sessionID, suffix string) string {
	return fmt.Sprintf("/api/v1/sessions/%s/%s", url.PathEscape(sessionID), suffix)
}

// LogCreated records that a session was created with the given snapshot.
func (s *SessionService) LogCreated(ctx context.Context, sessionID string, snapshot SessionSnapshot, actor string) (*AuditRecord, error) {
	body := struct {
		Snapshot SessionSnapshot `json:"snapshot"`
		Actor    string          `json:"actor"`
	}{snapshot, actor}

	var rec AuditRecord
	if err := s.c.post(ctx, sessionPath(sessionID, "created"), body, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// LogUpdated diffs two session snapshots server-side and records the
// resulting changes. The returned ChangeSet lists what changed.
func (s *SessionService) LogUpdated(ctx context.Context, sessionID string, previous, next SessionSnapshot, actor string) (*ChangeSet, error) {
	body := struct {
		Previous SessionSnapshot `json:"previous"`
		Next     SessionSnapshot `json:"next"`
		Actor    string          `json:"actor"`
	}{previous, next, actor}

	var changes ChangeSet
	if err := s.c.post(ctx, sessionPath(sessionID, "updated"), body, &changes); err != nil {
		return nil, err
	}

	return &changes, nil
}

// LogCancelled records a session cancellation with an optional reason.
func (s *SessionService) LogCancelled(ctx context.Context, sessionID, reason, actor string) (*AuditRecord, error) {
	body := struct {
		Reason string `json:"reason"`
		Actor  string `json:"actor"`
	}{reason, actor}

	var rec AuditRecord
	if err := s.c.post(ctx, sessionPath(sessionID, "cancelled"), body, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// LogBookingAdded records a new booking on a session.
func (s *SessionService) LogBookingAdded(ctx context.Context, sessionID string, booking BookingInfo, actor string) (*AuditRecord, error) {
	return s.postBooking(ctx, sessionPath(sessionID, "bookings"), booking, actor)
}

// LogBookingCancelled records a booking cancellation on a session.
func (s *SessionService) LogBookingCancelled(ctx context.Context, sessionID string, booking BookingInfo, actor string) (*AuditRecord, error) {
	return s.postBooking(ctx, sessionPath(sessionID, "booking-cancellations"), booking, actor)
}

func (s *SessionService) postBooking(ctx context.Context, path string, booking BookingInfo, actor string) (*AuditRecord, error) {
	body := struct {
		Booking BookingInfo `json:"booking"`
		Actor   string      `json:"actor"`
	}{booking, actor}

	var rec AuditRecord
	if err := s.c.post(ctx, path, body, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// LogAttendeeTransferred records an attendee moving to another session.
func (s *SessionService) LogAttendeeTransferred(ctx context.Context, sessionID string, transfer TransferInfo, actor string) (*AuditRecord, error) {
	body := struct {
		Transfer TransferInfo `json:"transfer"`
		Actor    string       `json:"actor"`
	}{transfer, actor}

	var rec AuditRecord
	if err := s.c.post(ctx, sessionPath(sessionID, "transfers"), body, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// LogZoomLinkChanged records a meeting link being added or replaced.
func (s *SessionService) LogZoomLinkChanged(ctx context.Context, sessionID, link string, isNew bool, actor string) (*AuditRecord, error) {
	body := struct {
		Link  string `json:"link"`
		IsNew bool   `json:"isNew"`
		Actor string `json:"actor"`
	}{link, isNew, actor}

	var rec AuditRecord
	if err := s.c.post(ctx, sessionPath(sessionID, "zoom-link"), body, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// LogNoteAdded records a free-text note against a session.
func (s *SessionService) LogNoteAdded(ctx context.Context, sessionID, note, actor string) (*AuditRecord, error) {
	body := struct {
		Note  string `json:"note"`
		Actor string `json:"actor"`
	}{note, actor}

	var rec AuditRecord
	if err := s.c.post(ctx, sessionPath(sessionID, "notes"), body, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

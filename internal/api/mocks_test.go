package api_test

import (
	"context"

	"github.com/bookinglog/bookinglog/internal/models"
)

// mockSessionLogger implements api.SessionLogger for testing.
type mockSessionLogger struct {
	createdFn     func(ctx context.Context, subjectID string, snapshot models.SessionSnapshot, actor string) models.AuditRecord
	updatedFn     func(ctx context.Context, subjectID string, prev, next models.SessionSnapshot, actor string) models.ChangeSet
	cancelledFn   func(ctx context.Context, subjectID, reason, actor string) models.AuditRecord
	bookingFn     func(ctx context.Context, subjectID string, booking models.BookingInfo, actor string) models.AuditRecord
	bookingCxlFn  func(ctx context.Context, subjectID string, booking models.BookingInfo, actor string) models.AuditRecord
	transferredFn func(ctx context.Context, subjectID string, transfer models.TransferInfo, actor string) models.AuditRecord
	zoomLinkFn    func(ctx context.Context, subjectID, link string, isNew bool, actor string) models.AuditRecord
	noteFn        func(ctx context.Context, subjectID, note, actor string) models.AuditRecord
}

func (m *mockSessionLogger) LogCreated(ctx context.Context, subjectID string, snapshot models.SessionSnapshot, actor string) models.AuditRecord {
	return m.createdFn(ctx, subjectID, snapshot, actor)
}

func (m *mockSessionLogger) LogUpdated(ctx context.Context, subjectID string, prev, next models.SessionSnapshot, actor string) models.ChangeSet {
	return m.updatedFn(ctx, subjectID, prev, next, actor)
}

func (m *mockSessionLogger) LogCancelled(ctx context.Context, subjectID, reason, actor string) models.AuditRecord {
	return m.cancelledFn(ctx, subjectID, reason, actor)
}

func (m *mockSessionLogger) LogBookingAdded(ctx context.Context, subjectID string, booking models.BookingInfo, actor string) models.AuditRecord {
	return m.bookingFn(ctx, subjectID, booking, actor)
}

func (m *mockSessionLogger) LogBookingCancelled(ctx context.Context, subjectID string, booking models.BookingInfo, actor string) models.AuditRecord {
	return m.bookingCxlFn(ctx, subjectID, booking, actor)
}

func (m *mockSessionLogger) LogAttendeeTransferred(ctx context.Context, subjectID string, transfer models.TransferInfo, actor string) models.AuditRecord {
	return m.transferredFn(ctx, subjectID, transfer, actor)
}

func (m *mockSessionLogger) LogZoomLinkChanged(ctx context.Context, subjectID, link string, isNew bool, actor string) models.AuditRecord {
	return m.zoomLinkFn(ctx, subjectID, link, isNew, actor)
}

func (m *mockSessionLogger) LogNoteAdded(ctx context.Context, subjectID, note, actor string) models.AuditRecord {
	return m.noteFn(ctx, subjectID, note, actor)
}

// mockVenueLogger implements api.VenueLogger for testing.
type mockVenueLogger struct {
	changesFn func(ctx context.Context, subjectID string, prev, next models.VenueSnapshot, actor string) []models.AuditRecord
}

func (m *mockVenueLogger) LogChanges(ctx context.Context, subjectID string, prev, next models.VenueSnapshot, actor string) []models.AuditRecord {
	return m.changesFn(ctx, subjectID, prev, next, actor)
}

// mockQuerier implements api.AuditQuerier for testing.
type mockQuerier struct {
	recordsForFn func(ctx context.Context, subjectID string) []models.AuditRecord
	queryFn      func(ctx context.Context, opts models.QueryOpts) ([]models.AuditRecord, bool)
	summarizeFn  func(ctx context.Context, subjectID string) models.Summary
}

func (m *mockQuerier) RecordsFor(ctx context.Context, subjectID string) []models.AuditRecord {
	return m.recordsForFn(ctx, subjectID)
}

func (m *mockQuerier) Query(ctx context.Context, opts models.QueryOpts) ([]models.AuditRecord, bool) {
	return m.queryFn(ctx, opts)
}

func (m *mockQuerier) Summarize(ctx context.Context, subjectID string) models.Summary {
	return m.summarizeFn(ctx, subjectID)
}

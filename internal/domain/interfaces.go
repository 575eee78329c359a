// Package domain defines the canonical service interfaces shared across
// surfaces (REST handlers, CLI, client). Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/bookinglog/bookinglog/internal/models"
)

// SessionLogger defines the session audit logging entry points.
type SessionLogger interface {
	LogCreated(ctx context.Context, subjectID string, snapshot models.SessionSnapshot, actor string) models.AuditRecord
	LogUpdated(ctx context.Context, subjectID string, prev, next models.SessionSnapshot, actor string) models.ChangeSet
	LogCancelled(ctx context.Context, subjectID, reason, actor string) models.AuditRecord
	LogBookingAdded(ctx context.Context, subjectID string, booking models.BookingInfo, actor string) models.AuditRecord
	LogBookingCancelled(ctx context.Context, subjectID string, booking models.BookingInfo, actor string) models.AuditRecord
	LogAttendeeTransferred(ctx context.Context, subjectID string, transfer models.TransferInfo, actor string) models.AuditRecord
	LogZoomLinkChanged(ctx context.Context, subjectID, link string, isNew bool, actor string) models.AuditRecord
	LogNoteAdded(ctx context.Context, subjectID, note, actor string) models.AuditRecord
}

// VenueLogger defines the venue diff-and-log entry point.
type VenueLogger interface {
	LogChanges(ctx context.Context, subjectID string, prev, next models.VenueSnapshot, actor string) []models.AuditRecord
}

// AuditQuerier defines the read side consumed by UI collaborators.
type AuditQuerier interface {
	RecordsFor(ctx context.Context, subjectID string) []models.AuditRecord
	Query(ctx context.Context, opts models.QueryOpts) ([]models.AuditRecord, bool)
	Summarize(ctx context.Context, subjectID string) models.Summary
}

// Package audit implements the change-audit core: diffing entity
// snapshots into immutable audit records and querying them back.
package audit

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bookinglog/bookinglog/internal/models"
)

// newRecord constructs a single audit record with a generated id and a
// creation timestamp. Ids are UUIDv7 so they sort by generation time.
func newRecord(subjectID string, action models.ActionType, actor string, details map[string]any) models.AuditRecord {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4
		// rather than dropping the record.
		id = uuid.New()
	}

	return models.AuditRecord{
		ID:          id.String(),
		SubjectID:   subjectID,
		ActionType:  action,
		Timestamp:   time.Now().UTC(),
		PerformedBy: actor,
		Details:     details,
	}
}

// newValueRecord constructs a value-replacement record carrying the old
// and new renderings of the single value that changed.
func newValueRecord(subjectID string, action models.ActionType, actor string, details map[string]any, prev, next string) models.AuditRecord {
	r := newRecord(subjectID, action, actor, details)
	r.PreviousValue = prev
	r.NewValue = next

	return r
}

// norm is the normalized form used for change comparison: surrounding
// whitespace never counts as a change.
func norm(s string) string {
	return strings.TrimSpace(s)
}

// formatPrice renders a monetary amount as a currency-prefixed string
// without trailing zeros ("£75", "£62.5").
func formatPrice(amount float64) string {
	return "£" + strconv.FormatFloat(amount, 'f', -1, 64)
}

package audit

import (
	"context"
	"sort"
	"strings"

	"github.com/bookinglog/bookinglog/internal/models"
)

// Loader is the record store surface the query facade depends on.
type Loader interface {
	Load(ctx context.Context) []models.AuditRecord
}

// QueryService provides filtering, sorting, and summarization over the
// record store. Every operation is a pure function of the persisted
// collection and its arguments.
type QueryService struct {
	store Loader
}

// NewQueryService creates a QueryService.
func NewQueryService(store Loader) *QueryService {
	return &QueryService{store: store}
}

// defaultQueryLimit caps unpaginated queries.
const defaultQueryLimit = 50

// recentCount is how many records a summary includes.
const recentCount = 5

// sortNewestFirst orders records by timestamp descending. Ties break on
// id descending; ids are generation-time-ordered so this keeps same-instant
// records in reverse creation order.
func sortNewestFirst(records []models.AuditRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].Timestamp.After(records[j].Timestamp)
		}

		return records[i].ID > records[j].ID
	})
}

// RecordsFor returns all records for one subject, newest first.
func (q *QueryService) RecordsFor(ctx context.Context, subjectID string) []models.AuditRecord {
	var out []models.AuditRecord
	for _, r := range q.store.Load(ctx) {
		if r.SubjectID == subjectID {
			out = append(out, r)
		}
	}

	sortNewestFirst(out)

	return out
}

// Query returns records matching every set filter, newest first, plus a
// hasMore flag for pagination.
func (q *QueryService) Query(ctx context.Context, opts models.QueryOpts) ([]models.AuditRecord, bool) {
	var out []models.AuditRecord
	for _, r := range q.store.Load(ctx) {
		if matches(r, opts) {
			out = append(out, r)
		}
	}

	sortNewestFirst(out)

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(out) {
		return nil, false
	}
	out = out[offset:]

	hasMore := len(out) > limit
	if hasMore {
		out = out[:limit]
	}

	return out, hasMore
}

func matches(r models.AuditRecord, opts models.QueryOpts) bool {
	if opts.SubjectID != "" && r.SubjectID != opts.SubjectID {
		return false
	}
	if opts.Action != "" && r.ActionType != opts.Action {
		return false
	}
	if opts.ActorContains != "" &&
		!strings.Contains(strings.ToLower(r.PerformedBy), strings.ToLower(opts.ActorContains)) {
		return false
	}
	if opts.From != nil && r.Timestamp.Before(*opts.From) {
		return false
	}
	if opts.To != nil && r.Timestamp.After(*opts.To) {
		return false
	}

	return true
}

// Summarize aggregates one subject's history: total count, newest
// timestamp, a count-by-action-label breakdown, and the five most recent
// records.
func (q *QueryService) Summarize(ctx context.Context, subjectID string) models.Summary {
	records := q.RecordsFor(ctx, subjectID)

	summary := models.Summary{
		SubjectID:      subjectID,
		Total:          len(records),
		CountsByAction: make(map[string]int),
	}

	for _, r := range records {
		summary.CountsByAction[r.ActionType.Label()]++
	}

	if len(records) > 0 {
		newest := records[0].Timestamp
		summary.NewestTimestamp = &newest
	}

	recent := records
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}
	summary.Recent = recent

	return summary
}

package models

import "time"

// QueryOpts holds filters for querying audit records. Zero values mean
// "no filter"; any combination may be set. Results are always sorted
// newest-first regardless of filters.
type QueryOpts struct {
	SubjectID     string
	Action        ActionType
	ActorContains string     // case-insensitive substring match on performedBy
	From          *time.Time // inclusive lower bound
	To            *time.Time // inclusive upper bound
	Limit         int
	Offset        int
}

// Summary aggregates a single subject's history for dashboard display.
type Summary struct {
	SubjectID      string        `json:"subjectId"`
	Total          int           `json:"total"`
	NewestTimestamp *time.Time   `json:"newestTimestamp,omitempty"`
	CountsByAction map[string]int `json:"countsByAction"`
	Recent         []AuditRecord `json:"recent"`
}

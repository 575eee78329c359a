package client

import "time"

// AuditRecord mirrors the server's audit record shape.
type AuditRecord struct {
	ID            string         `json:"id"`
	SubjectID     string         `json:"subjectId"`
	ActionType    string         `json:"actionType"`
	Timestamp     time.Time      `json:"timestamp"`
	PerformedBy   string         `json:"performedBy"`
	Details       map[string]any `json:"details,omitempty"`
	PreviousValue string         `json:"previousValue,omitempty"`
	NewValue      string         `json:"newValue,omitempty"`
}

// SessionSnapshot is a point-in-time view of a training session.
type SessionSnapshot struct {
	CourseID   string  `json:"courseId"`
	CourseName string  `json:"courseName,omitempty"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Trainer    string  `json:"trainer"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
}

// VenueSnapshot is a point-in-time view of a venue.
type VenueSnapshot struct {
	Name         string  `json:"name"`
	ContactName  string  `json:"contactName,omitempty"`
	ContactEmail string  `json:"contactEmail,omitempty"`
	ContactPhone string  `json:"contactPhone,omitempty"`
	Fee          float64 `json:"fee"`
	ExpiryDate   string  `json:"expiryDate,omitempty"`
	Capacity     int     `json:"capacity"`
	AddressLine1 string  `json:"addressLine1,omitempty"`
	AddressLine2 string  `json:"addressLine2,omitempty"`
	City         string  `json:"city,omitempty"`
	Postcode     string  `json:"postcode,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Status       string  `json:"status,omitempty"`
}

// BookingInfo carries booking context for booking lifecycle events.
type BookingInfo struct {
	BookingReference string `json:"bookingReference"`
	AttendeeName     string `json:"attendeeName"`
	AttendeeEmail    string `json:"attendeeEmail,omitempty"`
	RefundIssued     bool   `json:"refundIssued,omitempty"`
}

// TransferInfo describes an attendee moving between sessions.
type TransferInfo struct {
	BookingReference string `json:"bookingReference"`
	AttendeeName     string `json:"attendeeName"`
	FromSessionID    string `json:"fromSessionId"`
	ToSessionID      string `json:"toSessionId"`
}

// ChangeSet is the result of a session update diff.
type ChangeSet struct {
	ChangedDimensions []string      `json:"changedDimensions"`
	Records           []AuditRecord `json:"records"`
}

// Summary aggregates one subject's history.
type Summary struct {
	SubjectID       string         `json:"subjectId"`
	Total           int            `json:"total"`
	NewestTimestamp *time.Time     `json:"newestTimestamp,omitempty"`
	NewestRelative  string         `json:"newestRelative,omitempty"`
	CountsByAction  map[string]int `json:"countsByAction"`
	Recent          []AuditRecord  `json:"recent"`
}

// AuditQueryOptions holds filters for audit queries. Zero values mean no filter.
type AuditQueryOptions struct {
	SubjectID string
	Action    string
	Actor     string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	StoreBackend  string  `json:"store_backend"`
	Database      string  `json:"database"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

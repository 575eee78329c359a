package models

// SessionSnapshot is the caller-supplied view of a training session at a
// point in time. The differ compares two snapshots field by field; it does
// not validate them (validation happens before the core is invoked).
type SessionSnapshot struct {
	CourseID   string  `json:"courseId"`
	CourseName string  `json:"courseName,omitempty"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Trainer    string  `json:"trainer"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
}

// CourseDisplayName returns the course name for display, falling back to
// the raw course identifier when no name is set.
func (s SessionSnapshot) CourseDisplayName() string {
	if s.CourseName != "" {
		return s.CourseName
	}

	return s.CourseID
}

// BookingInfo carries the booking context attached to booking lifecycle
// audit records.
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

// Package models defines the audit record data model shared across the
// store, service, and API layers.
package models

import "time"

// ActionType identifies what kind of change an audit record describes.
// The string values are part of the persisted contract and must not change.
type ActionType string

// Session action types.
const (
	ActionCreated             ActionType = "created"
	ActionUpdated             ActionType = "updated"
	ActionCancelled           ActionType = "cancelled"
	ActionRescheduled         ActionType = "rescheduled"
	ActionTrainerChanged      ActionType = "trainer_changed"
	ActionCapacityChanged     ActionType = "capacity_changed"
	ActionPriceChanged        ActionType = "price_changed"
	ActionBookingAdded        ActionType = "booking_added"
	ActionBookingCancelled    ActionType = "booking_cancelled"
	ActionAttendeeTransferred ActionType = "attendee_transferred"
	ActionZoomLinkAdded       ActionType = "zoom_link_added"
	ActionZoomLinkUpdated     ActionType = "zoom_link_updated"
	ActionNoteAdded           ActionType = "note_added"
)

// Venue action types.
const (
	ActionVenueUpdated         ActionType = "venue_updated"
	ActionContactUpdated       ActionType = "contact_updated"
	ActionFeeUpdated           ActionType = "fee_updated"
	ActionExpiryUpdated        ActionType = "expiry_updated"
	ActionVenueCapacityUpdated ActionType = "capacity_updated"
)

// ActionTypes lists every valid action type, in declaration order.
var ActionTypes = []ActionType{
	ActionCreated, ActionUpdated, ActionCancelled, ActionRescheduled,
	ActionTrainerChanged, ActionCapacityChanged, ActionPriceChanged,
	ActionBookingAdded, ActionBookingCancelled, ActionAttendeeTransferred,
	ActionZoomLinkAdded, ActionZoomLinkUpdated, ActionNoteAdded,
	ActionVenueUpdated, ActionContactUpdated, ActionFeeUpdated,
	ActionExpiryUpdated, ActionVenueCapacityUpdated,
}

// Valid reports whether a is a known action type.
func (a ActionType) Valid() bool {
	for _, known := range ActionTypes {
		if a == known {
			return true
		}
	}

	return false
}

// Label returns the human-readable display label for the action type.
// The switch is exhaustive over ActionTypes; unknown values fall back to
// the raw string so malformed persisted data still renders.
func (a ActionType) Label() string {
	switch a {
	case ActionCreated:
		return "Created"
	case ActionUpdated:
		return "Updated"
	case ActionCancelled:
		return "Cancelled"
	case ActionRescheduled:
		return "Rescheduled"
	case ActionTrainerChanged:
		return "Trainer Changed"
	case ActionCapacityChanged:
		return "Capacity Changed"
	case ActionPriceChanged:
		return "Price Changed"
	case ActionBookingAdded:
		return "Booking Added"
	case ActionBookingCancelled:
		return "Booking Cancelled"
	case ActionAttendeeTransferred:
		return "Attendee Transferred"
	case ActionZoomLinkAdded:
		return "Zoom Link Added"
	case ActionZoomLinkUpdated:
		return "Zoom Link Updated"
	case ActionNoteAdded:
		return "Note Added"
	case ActionVenueUpdated:
		return "Venue Updated"
	case ActionContactUpdated:
		return "Contact Updated"
	case ActionFeeUpdated:
		return "Fee Updated"
	case ActionExpiryUpdated:
		return "Expiry Updated"
	case ActionVenueCapacityUpdated:
		return "Capacity Updated"
	default:
		return string(a)
	}
}

// Color returns the UI accent color associated with the action type.
func (a ActionType) Color() string {
	switch a {
	case ActionCreated, ActionBookingAdded:
		return "green"
	case ActionCancelled, ActionBookingCancelled:
		return "red"
	case ActionRescheduled, ActionAttendeeTransferred, ActionExpiryUpdated:
		return "amber"
	case ActionPriceChanged, ActionFeeUpdated:
		return "purple"
	case ActionZoomLinkAdded, ActionZoomLinkUpdated:
		return "blue"
	default:
		return "grey"
	}
}

// Icon returns the UI icon name associated with the action type.
func (a ActionType) Icon() string {
	switch a {
	case ActionCreated:
		return "plus-circle"
	case ActionCancelled, ActionBookingCancelled:
		return "x-circle"
	case ActionRescheduled, ActionExpiryUpdated:
		return "calendar"
	case ActionTrainerChanged:
		return "user"
	case ActionCapacityChanged, ActionVenueCapacityUpdated:
		return "users"
	case ActionPriceChanged, ActionFeeUpdated:
		return "tag"
	case ActionBookingAdded:
		return "user-plus"
	case ActionAttendeeTransferred:
		return "arrow-right"
	case ActionZoomLinkAdded, ActionZoomLinkUpdated:
		return "video"
	case ActionNoteAdded:
		return "file-text"
	case ActionContactUpdated:
		return "phone"
	default:
		return "edit"
	}
}

// AuditRecord is the atomic, immutable unit of change history.
// JSON field names are part of the persisted contract and must be
// preserved verbatim for compatibility with existing data.
type AuditRecord struct {
	ID            string         `json:"id"`
	SubjectID     string         `json:"subjectId"`
	ActionType    ActionType     `json:"actionType"`
	Timestamp     time.Time      `json:"timestamp"`
	PerformedBy   string         `json:"performedBy"`
	Details       map[string]any `json:"details,omitempty"`
	PreviousValue string         `json:"previousValue,omitempty"`
	NewValue      string         `json:"newValue,omitempty"`
}

// ChangeSet is the result of diffing a session mutation: the dimensions
// that changed and the records that were created for them.
type ChangeSet struct {
	ChangedDimensions []string      `json:"changedDimensions"`
	Records           []AuditRecord `json:"records"`
}

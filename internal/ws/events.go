package ws

import (
	"encoding/json"
	"time"
)

// EventTypeRecord is the event type sent for each newly appended audit record.
const EventTypeRecord = "audit.record"

// Event is the structured message sent to WebSocket clients.
type Event struct {
	Type string          `json:"type"`
	ID   uint64          `json:"id"`
	Data json.RawMessage `json:"data"`
	Time time.Time       `json:"time"`
}

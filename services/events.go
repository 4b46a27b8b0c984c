package services

import (
	"time"

	ws "github.com/dtaccel/backend/websocket"
)

// Dashboard event types broadcast over the websocket feed
const (
	EventAssessmentStarted   = "assessment.started"
	EventAssessmentScored    = "assessment.scored"
	EventAssessmentCompleted = "assessment.completed"
	EventProjectProgress     = "project.progress"
	EventProjectCompleted    = "project.completed"
)

// Event is the JSON envelope pushed to dashboard clients.
type Event struct {
	Type    string      `json:"type"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

// publishEvent broadcasts an event if a hub is wired; a nil hub makes the
// feed a no-op so services stay usable in tests and one-off tools.
func publishEvent(hub *ws.Hub, eventType string, payload interface{}) {
	if hub == nil {
		return
	}
	hub.BroadcastJSON(Event{
		Type:    eventType,
		At:      time.Now().UTC(),
		Payload: payload,
	})
}

package events

import (
	"time"

	"github.com/solutions-kit/os-tracker/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketOpened        EventType = "ticket_opened"
	EventTicketEdited        EventType = "ticket_edited"
	EventTicketStatusChanged EventType = "ticket_status_changed"
)

// Event represents a domain event emitted by the lifecycle service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketOpenedPayload payload.
type TicketOpenedPayload struct {
	OSNumber    string              `json:"os_number"`
	Status      domain.TicketStatus `json:"status"`
	Location    string              `json:"location,omitempty"`
	Responsible string              `json:"responsible"`
}

// TicketEditedPayload payload.
type TicketEditedPayload struct {
	OSNumber string              `json:"os_number"`
	Status   domain.TicketStatus `json:"status"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

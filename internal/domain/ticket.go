package domain

// TicketStatus enumerates lifecycle states for work orders. The values are
// the display-language strings persisted by the original application; they
// are the wire format, not internal codes.
type TicketStatus string

const (
	StatusNotStarted TicketStatus = "Não iniciado"
	StatusExecuting  TicketStatus = "Em execução"
	StatusCompleted  TicketStatus = "Concluído"
	StatusNoTicket   TicketStatus = "Sem chamado aberto"
)

// KnownStatuses lists every accepted status value.
var KnownStatuses = []TicketStatus{
	StatusNotStarted,
	StatusExecuting,
	StatusCompleted,
	StatusNoTicket,
}

// IsKnownStatus reports whether s is one of the enumerated statuses.
func IsKnownStatus(s TicketStatus) bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// HistoryEntry is an immutable audit record of a single change to a ticket.
// Entries are append-only and chronologically ordered, most recent last.
type HistoryEntry struct {
	Date   string `json:"date"`
	Action string `json:"action"`
	User   string `json:"user"`
}

// Ticket is the aggregate for a service/maintenance work order. Field names
// in the serialized form match the persisted record layout exactly.
type Ticket struct {
	ID          string         `json:"id"`
	OSNumber    string         `json:"osNumber"`
	IssueDate   string         `json:"issueDate"`
	Deadline    string         `json:"deadline"`
	Description string         `json:"description"`
	Notes       string         `json:"notes"`
	Status      TicketStatus   `json:"status"`
	Responsible string         `json:"responsible"`
	Location    string         `json:"location,omitempty"`
	History     []HistoryEntry `json:"history"`
}

// Clone returns a deep copy so callers can mutate drafts without aliasing
// the stored collection.
func (t Ticket) Clone() Ticket {
	copied := t
	copied.History = make([]HistoryEntry, len(t.History))
	copy(copied.History, t.History)
	return copied
}

// DefaultResponsible is the system handler assigned when none is given.
const DefaultResponsible = "Admin"

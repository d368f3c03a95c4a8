package dto

import (
	"time"

	"github.com/solutions-kit/os-tracker/internal/domain"
)

// TicketRequest is the createOrUpdate payload. Field names mirror the
// persisted record layout.
type TicketRequest struct {
	ID          string              `json:"id"`
	OSNumber    string              `json:"osNumber"`
	IssueDate   string              `json:"issueDate"`
	Deadline    string              `json:"deadline"`
	Description string              `json:"description"`
	Notes       string              `json:"notes"`
	Status      domain.TicketStatus `json:"status"`
	Responsible string              `json:"responsible"`
	Location    string              `json:"location"`
}

// Ticket converts the request into a domain candidate. History is omitted
// on purpose: the lifecycle service owns it.
func (r TicketRequest) Ticket() domain.Ticket {
	return domain.Ticket{
		ID:          r.ID,
		OSNumber:    r.OSNumber,
		IssueDate:   r.IssueDate,
		Deadline:    r.Deadline,
		Description: r.Description,
		Notes:       r.Notes,
		Status:      r.Status,
		Responsible: r.Responsible,
		Location:    r.Location,
	}
}

// UpdateStatusRequest is the quick-action payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// SelectRoleRequest is the role selector payload.
type SelectRoleRequest struct {
	Role string `json:"role"`
}

// SelectRoleResponse carries the issued role token.
type SelectRoleResponse struct {
	Role      domain.Role `json:"role"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// FormOptions lists the fixed pick-list values for the create/edit form.
type FormOptions struct {
	Locations    []string              `json:"locations"`
	Statuses     []domain.TicketStatus `json:"statuses"`
	Responsibles []string              `json:"responsibles"`
}

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/solutions-kit/os-tracker/internal/auth"
	"github.com/solutions-kit/os-tracker/internal/domain"
	"github.com/solutions-kit/os-tracker/internal/events"
	"github.com/solutions-kit/os-tracker/internal/osnumber"
	"github.com/solutions-kit/os-tracker/internal/store"
	"github.com/solutions-kit/os-tracker/pkg/util"
)

// TicketService is the sole writer of ticket mutations. It validates
// candidates, enforces role gating, owns the append-only history, and
// funnels every change through the store as a whole-collection save.
type TicketService struct {
	store      store.Store
	dispatcher events.Dispatcher

	// serializes load-derive-save cycles; the collection is a single
	// shared resource with no row-level locking
	mu sync.Mutex
}

// Dependencies bundles collaborators for the ticket service.
type Dependencies struct {
	Store      store.Store
	Dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps Dependencies) *TicketService {
	return &TicketService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
	}
}

// ListFilter narrows the ticket listing.
type ListFilter struct {
	Status domain.TicketStatus
	Search string
}

// Stats aggregates ticket counts by status for the dashboard.
type Stats struct {
	Total      int `json:"total"`
	NotStarted int `json:"notStarted"`
	Executing  int `json:"executing"`
	Completed  int `json:"completed"`
	NoTicket   int `json:"noTicket"`
}

// EditableDraft is the pre-populated form state handed to an administrator
// beginning an edit. IssueDate is normalized to its calendar-date component.
type EditableDraft struct {
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

// List returns tickets matching the filter. Read access is never role-gated.
func (s *TicketService) List(ctx context.Context, filter ListFilter) ([]domain.Ticket, error) {
	tickets, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if filter.Status == "" && strings.TrimSpace(filter.Search) == "" {
		return tickets, nil
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.OSNumber), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		matched = append(matched, t)
	}
	return matched, nil
}

// Suggest returns the next sequential OS number for the current collection.
func (s *TicketService) Suggest(ctx context.Context) (string, error) {
	tickets, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	return osnumber.Suggest(tickets), nil
}

// Stats aggregates the dashboard counters.
func (s *TicketService) Stats(ctx context.Context) (Stats, error) {
	tickets, err := s.store.Load(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case domain.StatusNotStarted:
			stats.NotStarted++
		case domain.StatusExecuting:
			stats.Executing++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusNoTicket:
			stats.NoTicket++
		}
	}
	return stats, nil
}

// CreateOrUpdate validates the candidate and either replaces an existing
// ticket's fields entirely or appends a freshly-identified ticket. The
// service owns history: candidate-supplied entries are ignored, existing
// entries are preserved and exactly one new entry is appended.
func (s *TicketService) CreateOrUpdate(ctx context.Context, sess auth.Session, candidate domain.Ticket) (*domain.Ticket, error) {
	if !sess.Role.CanMutate() {
		return nil, util.NewPermissionDenied("administrator role required")
	}

	candidate.OSNumber = strings.TrimSpace(candidate.OSNumber)
	if fields := missingRequiredFields(candidate); len(fields) > 0 {
		return nil, util.NewValidationFailed(fields)
	}
	if candidate.Responsible == "" {
		candidate.Responsible = domain.DefaultResponsible
	}
	if candidate.Status == "" {
		candidate.Status = domain.StatusNotStarted
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().Format(time.RFC3339)
	existingIdx := indexByID(tickets, candidate.ID)

	var saved domain.Ticket
	if existingIdx >= 0 {
		saved = candidate
		saved.History = append(tickets[existingIdx].Clone().History, domain.HistoryEntry{
			Date:   now,
			Action: "Chamado editado (Status: " + string(candidate.Status) + ")",
			User:   candidate.Responsible,
		})
		tickets[existingIdx] = saved
	} else {
		saved = candidate
		saved.ID = uuid.NewString()
		saved.History = []domain.HistoryEntry{{
			Date:   now,
			Action: "Chamado aberto",
			User:   candidate.Responsible,
		}}
		tickets = append(tickets, saved)
	}

	if err := s.store.Save(ctx, tickets); err != nil {
		return nil, err
	}

	if existingIdx >= 0 {
		s.publish(ctx, events.Event{
			Type:     events.EventTicketEdited,
			TicketID: saved.ID,
			Actor:    saved.Responsible,
			Payload: events.TicketEditedPayload{
				OSNumber: saved.OSNumber,
				Status:   saved.Status,
			},
		})
	} else {
		s.publish(ctx, events.Event{
			Type:     events.EventTicketOpened,
			TicketID: saved.ID,
			Actor:    saved.Responsible,
			Payload: events.TicketOpenedPayload{
				OSNumber:    saved.OSNumber,
				Status:      saved.Status,
				Location:    saved.Location,
				Responsible: saved.Responsible,
			},
		})
	}

	result := saved.Clone()
	return &result, nil
}

// UpdateStatus replaces only the status of the identified ticket and appends
// one audit entry. Viewers are rejected before any load or save happens.
func (s *TicketService) UpdateStatus(ctx context.Context, sess auth.Session, id string, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	if !sess.Role.CanMutate() {
		return nil, util.NewPermissionDenied("administrator role required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByID(tickets, id)
	if idx < 0 {
		return nil, util.NewNotFound("ticket", map[string]any{"id": id})
	}

	updated := tickets[idx].Clone()
	oldStatus := updated.Status
	updated.Status = newStatus
	updated.History = append(updated.History, domain.HistoryEntry{
		Date:   time.Now().Format(time.RFC3339),
		Action: "Status alterado para " + string(newStatus),
		User:   sess.ActorName(),
	})
	tickets[idx] = updated

	if err := s.store.Save(ctx, tickets); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: updated.ID,
		Actor:    sess.ActorName(),
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})

	result := updated.Clone()
	return &result, nil
}

// BeginEdit hands an administrator a draft of the ticket's current fields
// for the edit form, with the issue date reduced to YYYY-MM-DD.
func (s *TicketService) BeginEdit(ctx context.Context, sess auth.Session, id string) (*EditableDraft, error) {
	if !sess.Role.CanMutate() {
		return nil, util.NewPermissionDenied("administrator role required")
	}

	tickets, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexByID(tickets, id)
	if idx < 0 {
		return nil, util.NewNotFound("ticket", map[string]any{"id": id})
	}

	t := tickets[idx]
	return &EditableDraft{
		ID:          t.ID,
		OSNumber:    t.OSNumber,
		IssueDate:   dateComponent(t.IssueDate),
		Deadline:    t.Deadline,
		Description: t.Description,
		Notes:       t.Notes,
		Status:      t.Status,
		Responsible: t.Responsible,
		Location:    t.Location,
	}, nil
}

// missingRequiredFields accumulates every violated required field, in field
// order, so the caller can highlight all of them at once.
func missingRequiredFields(t domain.Ticket) []string {
	var fields []string
	if t.OSNumber == "" {
		fields = append(fields, "osNumber")
	}
	if t.IssueDate == "" {
		fields = append(fields, "issueDate")
	}
	if t.Deadline == "" {
		fields = append(fields, "deadline")
	}
	if t.Description == "" {
		fields = append(fields, "description")
	}
	return fields
}

func indexByID(tickets []domain.Ticket, id string) int {
	if id == "" {
		return -1
	}
	for i := range tickets {
		if tickets[i].ID == id {
			return i
		}
	}
	return -1
}

func dateComponent(value string) string {
	if i := strings.IndexByte(value, 'T'); i >= 0 {
		return value[:i]
	}
	return value
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/solutions-kit/os-tracker/internal/api/dto"
	"github.com/solutions-kit/os-tracker/internal/auth"
	"github.com/solutions-kit/os-tracker/internal/domain"
	"github.com/solutions-kit/os-tracker/internal/service"
	apperrors "github.com/solutions-kit/os-tracker/pkg/util"
)

// TicketsHandler exposes the ticket lifecycle endpoints. Role gating lives
// in the service; the handler only relays the caller's session.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// List GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	filter := service.ListFilter{
		Status: domain.TicketStatus(c.Query("status")),
		Search: c.Query("search"),
	}
	tickets, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tickets})
}

// Stats GET /tickets/stats.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// NextOSNumber GET /tickets/next-os-number.
func (h *TicketsHandler) NextOSNumber(c *fiber.Ctx) error {
	suggestion, err := h.service.Suggest(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"osNumber": suggestion}})
}

// FormOptions GET /tickets/form-options.
func (h *TicketsHandler) FormOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.FormOptions{
		Locations:    domain.Locations,
		Statuses:     domain.KnownStatuses,
		Responsibles: []string{"Admin", "Tecnico1", "Tecnico2"},
	}})
}

// CreateOrUpdate POST /tickets.
func (h *TicketsHandler) CreateOrUpdate(c *fiber.Ctx) error {
	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	session := auth.SessionFromContext(c)
	ticket, err := h.service.CreateOrUpdate(c.Context(), session, req.Ticket())
	if err != nil {
		return err
	}
	status := http.StatusCreated
	if req.ID != "" && ticket.ID == req.ID {
		status = http.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{"data": ticket})
}

// UpdateStatus PATCH /tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	session := auth.SessionFromContext(c)
	ticket, err := h.service.UpdateStatus(c.Context(), session, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticket})
}

// BeginEdit GET /tickets/:id/edit.
func (h *TicketsHandler) BeginEdit(c *fiber.Ctx) error {
	session := auth.SessionFromContext(c)
	draft, err := h.service.BeginEdit(c.Context(), session, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": draft})
}

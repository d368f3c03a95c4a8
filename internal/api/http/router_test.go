package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/solutions-kit/os-tracker/internal/api/http"
	"github.com/solutions-kit/os-tracker/internal/api/http/handlers"
	"github.com/solutions-kit/os-tracker/internal/auth"
	"github.com/solutions-kit/os-tracker/internal/domain"
	"github.com/solutions-kit/os-tracker/internal/events"
	"github.com/solutions-kit/os-tracker/internal/observability"
	"github.com/solutions-kit/os-tracker/internal/service"
	"github.com/solutions-kit/os-tracker/internal/store"
)

type testApp struct {
	app    *fiber.App
	tokens *auth.TokenManager
	store  *store.MemoryStore
}

func newTestApp(t *testing.T, tickets ...domain.Ticket) *testApp {
	t.Helper()

	memStore := store.NewMemoryStoreWith(tickets)
	dispatcher := events.NewInMemoryDispatcher()
	ticketService := service.NewTicketService(service.Dependencies{
		Store:      memStore,
		Dispatcher: dispatcher,
	})
	tokens := auth.NewTokenManager("test-secret", 60)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler("os-tracker-test", "test", "memory", nil, nil),
		Session:           handlers.NewSessionHandler(tokens),
		Tickets:           handlers.NewTicketsHandler(ticketService),
		SessionMiddleware: auth.NewSessionMiddleware(tokens),
	})

	return &testApp{app: app, tokens: tokens, store: memStore}
}

func (ta *testApp) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (ta *testApp) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := ta.tokens.GenerateToken(domain.RoleAdmin)
	require.NoError(t, err)
	return token
}

func (ta *testApp) viewerToken(t *testing.T) string {
	t.Helper()
	token, _, err := ta.tokens.GenerateToken(domain.RoleViewer)
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func sampleTicket() domain.Ticket {
	return domain.Ticket{
		ID:          "t1",
		OSNumber:    "FACTASK0000001",
		IssueDate:   "2024-04-01",
		Deadline:    "2024-04-15",
		Description: "Manutenção preventiva",
		Status:      domain.StatusNotStarted,
		Responsible: "Admin",
		History: []domain.HistoryEntry{
			{Date: "2024-04-01T09:00:00Z", Action: "Chamado aberto", User: "Admin"},
		},
	}
}

func TestSelectRoleIssuesToken(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.request(t, http.MethodPost, "/auth/role", "", map[string]string{"role": "admin"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	assert.Equal(t, "admin", data["role"])
	assert.NotEmpty(t, data["token"])
}

func TestSelectRoleRejectsUnknownRole(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.request(t, http.MethodPost, "/auth/role", "", map[string]string{"role": "root"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	payload := decodeBody(t, resp)
	errObj := payload["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
}

func TestListTicketsIsPublic(t *testing.T) {
	ta := newTestApp(t, sampleTicket())

	resp := ta.request(t, http.MethodGet, "/tickets", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "FACTASK0000001", first["osNumber"])
}

func TestCreateTicketRequiresRole(t *testing.T) {
	ta := newTestApp(t)

	body := map[string]any{
		"osNumber":    "FACTASK0000002",
		"issueDate":   "2024-05-01",
		"deadline":    "2024-05-08",
		"description": "Inspeção",
	}

	resp := ta.request(t, http.MethodPost, "/tickets", "", body)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	payload := decodeBody(t, resp)
	errObj := payload["error"].(map[string]any)
	assert.Equal(t, "PERMISSION_DENIED", errObj["code"])

	resp = ta.request(t, http.MethodPost, "/tickets", ta.viewerToken(t), body)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = ta.request(t, http.MethodPost, "/tickets", ta.adminToken(t), body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	payload = decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])
	history := data["history"].([]any)
	require.Len(t, history, 1)
}

func TestCreateTicketValidationListsEveryField(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.request(t, http.MethodPost, "/tickets", ta.adminToken(t), map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	payload := decodeBody(t, resp)
	errObj := payload["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
	details := errObj["details"].(map[string]any)
	fields := details["fields"].([]any)
	assert.ElementsMatch(t, []any{"osNumber", "issueDate", "deadline", "description"}, fields)
}

func TestUpdateStatusRoleGate(t *testing.T) {
	ta := newTestApp(t, sampleTicket())

	body := map[string]string{"status": string(domain.StatusExecuting)}

	resp := ta.request(t, http.MethodPatch, "/tickets/t1/status", ta.viewerToken(t), body)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = ta.request(t, http.MethodPatch, "/tickets/t1/status", ta.adminToken(t), body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	assert.Equal(t, string(domain.StatusExecuting), data["status"])
}

func TestUpdateStatusUnknownTicket(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.request(t, http.MethodPatch, "/tickets/missing/status", ta.adminToken(t), map[string]string{
		"status": string(domain.StatusCompleted),
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBeginEditDraft(t *testing.T) {
	ticket := sampleTicket()
	ticket.IssueDate = "2024-04-01T09:00:00Z"
	ta := newTestApp(t, ticket)

	resp := ta.request(t, http.MethodGet, "/tickets/t1/edit", ta.adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	assert.Equal(t, "2024-04-01", data["issueDate"])

	resp = ta.request(t, http.MethodGet, "/tickets/t1/edit", ta.viewerToken(t), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestNextOSNumberEndpoint(t *testing.T) {
	ta := newTestApp(t,
		domain.Ticket{ID: "a", OSNumber: "FACTASK0000001"},
		domain.Ticket{ID: "b", OSNumber: "FACTASK0000005"},
	)

	resp := ta.request(t, http.MethodGet, "/tickets/next-os-number", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	assert.Equal(t, "FACTASK0000006", data["osNumber"])
}

func TestStatsEndpoint(t *testing.T) {
	ta := newTestApp(t,
		domain.Ticket{ID: "a", Status: domain.StatusExecuting},
		domain.Ticket{ID: "b", Status: domain.StatusCompleted},
	)

	resp := ta.request(t, http.MethodGet, "/tickets/stats", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(1), data["executing"])
	assert.Equal(t, float64(1), data["completed"])
}

func TestFormOptionsEndpoint(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.request(t, http.MethodGet, "/tickets/form-options", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	locations := data["locations"].([]any)
	assert.Len(t, locations, len(domain.Locations))
	statuses := data["statuses"].([]any)
	assert.Len(t, statuses, len(domain.KnownStatuses))
}

func TestHealthLive(t *testing.T) {
	ta := newTestApp(t)

	resp := ta.request(t, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

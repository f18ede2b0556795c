package routes

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

	"github.com/dogusotomat/dogi-support-backend/internal/models"
	"github.com/dogusotomat/dogi-support-backend/internal/services"
	"github.com/dogusotomat/dogi-support-backend/internal/storage"
)

type nopDispatcher struct{}

func (nopDispatcher) SendReport(*models.Report) error { return nil }

func newTestApp(t *testing.T) (*fiber.App, *storage.MemoryStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	sessions := services.NewSessionManager(store, 10)
	chatService := services.NewChatService(store, sessions, nil, nopDispatcher{}, nil)

	app := fiber.New()
	SetupRoutes(app, store, chatService)
	return app, store
}

func jsonRequest(method, target string, payload any) *http.Request {
	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestChatEndpointProcessesTurn(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/chat", fiber.Map{
		"message": "Dondurma alamadım",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result services.TurnResult
	decodeBody(t, resp, &result)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "customer", result.UserType)
	assert.Contains(t, result.Reply, "İade işlemi yapıldı mı?")
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/chat", fiber.Map{
		"message": "   ",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatClearAndStatusEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/chat", fiber.Map{
		"message": "Operatör destek",
	}))
	require.NoError(t, err)
	var result services.TurnResult
	decodeBody(t, resp, &result)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/chat/status?session_id="+result.SessionID, nil))
	require.NoError(t, err)
	var status services.Status
	decodeBody(t, resp, &status)
	assert.Equal(t, "operator", status.UserType)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/chat/clear", fiber.Map{
		"session_id": result.SessionID,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/chat/clear", fiber.Map{
		"session_id": "SES-unknown",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTranscriptEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/chat/transcript", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/chat", fiber.Map{
		"session_id": "SES-transcript",
		"message":    "merhaba",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/chat/transcript?session_id=SES-transcript", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		SessionID string               `json:"session_id"`
		Messages  []models.ChatMessage `json:"messages"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "SES-transcript", body.SessionID)
	// welcome + user turn + reply
	assert.Len(t, body.Messages, 3)
}

func TestAdminRoutesRequireAPIKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "test-admin-key")
	app, store := newTestApp(t)

	_, err := store.CreateSupportCase(&models.SupportCase{
		SessionID: "SES-x",
		UserType:  models.CaseTypeOperator,
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/cases", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/admin/cases", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin/cases", nil)
	req.Header.Set("X-API-Key", "test-admin-key")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Count int                   `json:"count"`
		Cases []*models.SupportCase `json:"cases"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.Count)
}

func TestAdminCaseUpdate(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "test-admin-key")
	app, store := newTestApp(t)

	created, err := store.CreateSupportCase(&models.SupportCase{
		SessionID: "SES-y",
		UserType:  models.CaseTypeCustomer,
	})
	require.NoError(t, err)

	req := jsonRequest(http.MethodPatch, "/admin/cases/"+created.CaseID, fiber.Map{
		"status":     "resolved",
		"resolution": "İade manuel yapıldı",
	})
	req.Header.Set("X-API-Key", "test-admin-key")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.SupportCase
	decodeBody(t, resp, &updated)
	assert.Equal(t, models.CaseStatusResolved, updated.Status)
	assert.NotNil(t, updated.ResolvedAt)

	// Unknown status values are rejected
	req = jsonRequest(http.MethodPatch, "/admin/cases/"+created.CaseID, fiber.Map{
		"status": "archived",
	})
	req.Header.Set("X-API-Key", "test-admin-key")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

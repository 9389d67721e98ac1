package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stagelight/contact-gateway/internal/handler"
)

func newWebhookApp() *fiber.App {
	app := fiber.New()
	handler.NewLineWebhookHandler(zerolog.New(io.Discard)).Register(app.Group("/api"))
	return app
}

func postWebhook(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/line/webhook", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestWebhookGroupEventAccepted(t *testing.T) {
	app := newWebhookApp()

	body := `{"events":[{"type":"join","source":{"type":"group","groupId":"C1234567890"}}]}`
	resp := postWebhook(t, app, body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "ok", payload["status"])
}

func TestWebhookGroupMessageEventAccepted(t *testing.T) {
	app := newWebhookApp()

	body := `{"events":[{"type":"message","source":{"type":"group","groupId":"C1234567890"},"message":{"type":"text","text":"hello from the group"}}]}`
	resp := postWebhook(t, app, body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "ok", payload["status"])
}

func TestWebhookMalformedBodyStillOK(t *testing.T) {
	app := newWebhookApp()

	resp := postWebhook(t, app, "{broken")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "ok", payload["status"])
}

func TestWebhookEmptyEvents(t *testing.T) {
	app := newWebhookApp()

	resp := postWebhook(t, app, `{"events":[]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

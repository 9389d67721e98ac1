package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/stagelight/contact-gateway/internal/config"
	"github.com/stagelight/contact-gateway/internal/handler"
)

func TestHealthCheck(t *testing.T) {
	cfg := config.Config{AppName: "Contact Gateway", AppEnv: "test"}

	app := fiber.New()
	app.Get("/", handler.HealthCheck(cfg))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload handler.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "ok", payload.Status)
	require.Equal(t, "Contact Gateway", payload.Service)
	require.Equal(t, "test", payload.Environment)
	require.False(t, payload.Timestamp.IsZero())
}

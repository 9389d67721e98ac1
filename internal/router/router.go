package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stagelight/contact-gateway/internal/config"
	"github.com/stagelight/contact-gateway/internal/handler"
	"github.com/stagelight/contact-gateway/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ContactHandler *handler.ContactHandler
	WebhookHandler *handler.LineWebhookHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	if deps.ContactHandler != nil {
		deps.ContactHandler.Register(api)
	}

	if deps.WebhookHandler != nil {
		deps.WebhookHandler.Register(api)
	}
}

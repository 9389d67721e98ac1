package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/stagelight/contact-gateway/internal/dto"
)

// LineWebhookHandler logs inbound LINE webhook events. Its main purpose is
// surfacing group IDs when the bot is added to a group, so operators can
// configure the destination group for notifications.
type LineWebhookHandler struct {
	logger zerolog.Logger
}

// NewLineWebhookHandler constructs a webhook handler.
func NewLineWebhookHandler(logger zerolog.Logger) *LineWebhookHandler {
	return &LineWebhookHandler{
		logger: logger.With().Str("component", "line_webhook").Logger(),
	}
}

// Register wires the webhook route.
func (h *LineWebhookHandler) Register(router fiber.Router) {
	router.Post("/line/webhook", h.receive)
}

// receive always answers 200: LINE retries on any other status and there is
// nothing to retry here.
func (h *LineWebhookHandler) receive(c *fiber.Ctx) error {
	var payload dto.LineWebhookRequest
	if err := c.BodyParser(&payload); err != nil {
		h.logger.Warn().Err(err).Msg("failed to parse webhook payload")
		return c.JSON(fiber.Map{"status": "ok"})
	}

	h.logger.Info().RawJSON("payload", c.Body()).Msg("webhook received")

	for _, event := range payload.Events {
		if event.Source.Type != "group" || event.Source.GroupID == "" {
			continue
		}

		entry := h.logger.Info().
			Str("event_type", event.Type).
			Str("group_id", event.Source.GroupID)
		if event.Message != nil {
			entry = entry.Str("message_type", event.Message.Type).Str("message_text", event.Message.Text)
		}
		entry.Msg("group source detected")
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/stagelight/contact-gateway/internal/dto"
	"github.com/stagelight/contact-gateway/internal/observability"
	"github.com/stagelight/contact-gateway/internal/service"
	"github.com/stagelight/contact-gateway/internal/utils"
)

const (
	msgInvalidPayload     = "invalid payload"
	msgValidationFailed   = "please correct the highlighted fields"
	msgVerificationNeeded = "verification is required, please reload the page and try again"
	msgVerificationFailed = "verification failed, please reload the page and try again"
	msgSubmissionAccepted = "your inquiry has been received, a confirmation email is on its way"
	msgAllChannelsFailed  = "we could not process your inquiry right now, please contact us by phone instead"
)

// TokenVerifier checks a client-supplied challenge token, implemented by pkg/turnstile.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) bool
}

// ContactHandler handles contact-form submissions.
type ContactHandler struct {
	dispatcher service.Dispatcher
	verifier   TokenVerifier
	validate   *validator.Validate
	logger     zerolog.Logger
}

// NewContactHandler constructs a contact handler. A nil verifier disables the
// bot-verification gate for the deployment.
func NewContactHandler(dispatcher service.Dispatcher, verifier TokenVerifier, validate *validator.Validate, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		dispatcher: dispatcher,
		verifier:   verifier,
		validate:   validate,
		logger:     logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register wires contact routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("/contact", h.submit)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, msgInvalidPayload)
	}
	payload = payload.Normalized()

	if err := h.validate.Struct(payload); err != nil {
		fieldErrors := utils.FieldErrors(err)
		if fieldErrors == nil {
			h.logger.Error().Err(err).Msg("validator returned a non-field error")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to process submission")
		}
		observability.ContactSubmissions().WithLabelValues("invalid").Inc()
		return utils.SendValidationError(c, msgValidationFailed, fieldErrors)
	}

	if h.verifier != nil {
		if payload.TurnstileToken == "" {
			observability.VerificationChecks().WithLabelValues("missing").Inc()
			return utils.SendError(c, fiber.StatusBadRequest, msgVerificationNeeded)
		}
		if !h.verifier.Verify(c.UserContext(), payload.TurnstileToken) {
			observability.VerificationChecks().WithLabelValues("rejected").Inc()
			return utils.SendError(c, fiber.StatusBadRequest, msgVerificationFailed)
		}
		observability.VerificationChecks().WithLabelValues("passed").Inc()
	}

	result := h.dispatcher.Dispatch(c.UserContext(), payload.ToSubmission())
	if !result.OverallSuccess() {
		observability.ContactSubmissions().WithLabelValues("failed").Inc()
		return utils.SendError(c, fiber.StatusInternalServerError, msgAllChannelsFailed)
	}

	observability.ContactSubmissions().WithLabelValues("accepted").Inc()
	return utils.SendSuccess(c, msgSubmissionAccepted)
}

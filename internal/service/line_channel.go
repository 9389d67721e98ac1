package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stagelight/contact-gateway/internal/models"
)

// MessagingAPI is the group-messaging transport, implemented by pkg/line.
type MessagingAPI interface {
	PushText(ctx context.Context, to, text string) error
}

// LineSender pushes a condensed plain-text summary to a fixed LINE group.
type LineSender struct {
	api     MessagingAPI
	groupID string
	logger  zerolog.Logger
}

// NewLineSender constructs the LINE group notification channel.
func NewLineSender(api MessagingAPI, groupID string, logger zerolog.Logger) *LineSender {
	return &LineSender{
		api:     api,
		groupID: groupID,
		logger:  logger.With().Str("component", "line_sender").Logger(),
	}
}

// Channel identifies the LINE notification channel.
func (s *LineSender) Channel() string { return "line" }

// Send renders the summary and pushes it to the configured group.
func (s *LineSender) Send(ctx context.Context, submission models.ContactSubmission) error {
	return s.api.PushText(ctx, s.groupID, renderLineSummary(submission))
}

func renderLineSummary(submission models.ContactSubmission) string {
	return fmt.Sprintf(`[New contact inquiry]

Name:
%s

Email:
%s

Phone:
%s

Category:
%s

Message:
%s`,
		submission.Name,
		submission.Email,
		submission.PhoneOrFallback(),
		submission.Category.Label(),
		submission.Message,
	)
}

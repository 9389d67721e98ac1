package dto

import (
	"strings"

	"github.com/stagelight/contact-gateway/internal/models"
)

// ContactRequest defines the expected payload for the contact form endpoint.
// Phone is intentionally unconstrained beyond being optional.
type ContactRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty"`
	Category       string `json:"category" validate:"required,oneof=ticket wheelchair sponsorship media other"`
	Message        string `json:"message" validate:"required"`
	TurnstileToken string `json:"turnstileToken"`
}

// Normalized returns a copy with surrounding whitespace stripped from every
// text field. Callers normalize before validating, so a whitespace-only name
// or message fails the required check instead of slipping through.
func (r ContactRequest) Normalized() ContactRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Category = strings.TrimSpace(r.Category)
	r.Message = strings.TrimSpace(r.Message)
	r.TurnstileToken = strings.TrimSpace(r.TurnstileToken)
	return r
}

// ToSubmission converts a validated request into the immutable domain value.
func (r ContactRequest) ToSubmission() models.ContactSubmission {
	return models.ContactSubmission{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Category: models.Category(r.Category),
		Message:  r.Message,
	}
}

// LineWebhookEvent mirrors the subset of the LINE webhook event payload the
// gateway inspects.
type LineWebhookEvent struct {
	Type   string `json:"type"`
	Source struct {
		Type    string `json:"type"`
		GroupID string `json:"groupId"`
		UserID  string `json:"userId"`
	} `json:"source"`
	Message *struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message,omitempty"`
}

// LineWebhookRequest is the envelope LINE posts to the webhook endpoint.
type LineWebhookRequest struct {
	Events []LineWebhookEvent `json:"events"`
}

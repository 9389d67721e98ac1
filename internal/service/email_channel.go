package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/stagelight/contact-gateway/internal/models"
	"github.com/stagelight/contact-gateway/pkg/resend"
)

// EmailAPI is the transactional email transport, implemented by pkg/resend.
type EmailAPI interface {
	Send(ctx context.Context, email resend.Email) error
}

var operatorEmailTemplate = template.Must(template.New("operator").Parse(`<h2>New contact inquiry</h2>
<table style="border-collapse: collapse; width: 100%; max-width: 600px;">
  <tr>
    <td style="padding: 8px; border: 1px solid #ddd; background: #f5f5f5; width: 120px;"><strong>Name</strong></td>
    <td style="padding: 8px; border: 1px solid #ddd;">{{.Name}}</td>
  </tr>
  <tr>
    <td style="padding: 8px; border: 1px solid #ddd; background: #f5f5f5;"><strong>Email</strong></td>
    <td style="padding: 8px; border: 1px solid #ddd;"><a href="mailto:{{.Email}}">{{.Email}}</a></td>
  </tr>
  <tr>
    <td style="padding: 8px; border: 1px solid #ddd; background: #f5f5f5;"><strong>Phone</strong></td>
    <td style="padding: 8px; border: 1px solid #ddd;">{{.Phone}}</td>
  </tr>
  <tr>
    <td style="padding: 8px; border: 1px solid #ddd; background: #f5f5f5;"><strong>Category</strong></td>
    <td style="padding: 8px; border: 1px solid #ddd;">{{.CategoryLabel}}</td>
  </tr>
  <tr>
    <td style="padding: 8px; border: 1px solid #ddd; background: #f5f5f5;"><strong>Message</strong></td>
    <td style="padding: 8px; border: 1px solid #ddd; white-space: pre-wrap;">{{.Message}}</td>
  </tr>
</table>`))

var acknowledgmentEmailTemplate = template.Must(template.New("acknowledgment").Parse(`<p>Dear {{.Name}},</p>
<p>Thank you for getting in touch. We have received your inquiry with the following details.</p>
<hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
<p><strong>Category:</strong> {{.CategoryLabel}}</p>
<p><strong>Message:</strong></p>
<p style="white-space: pre-wrap; background: #f5f5f5; padding: 15px;">{{.Message}}</p>
<hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
<p>A member of our team will review your inquiry and reply as soon as possible.</p>
<p style="color: #666; font-size: 12px;">This confirmation was sent from an unmonitored address. If you need to reach us directly, please use the contact details below.</p>
<p>Email: {{.ReplyEmail}}<br>Tel: {{.ReplyPhone}}</p>`))

type emailTemplateData struct {
	Name          string
	Email         string
	Phone         string
	CategoryLabel string
	Message       template.HTML
	ReplyEmail    string
	ReplyPhone    string
}

// emailRenderer renders submissions into HTML email documents. User-supplied
// text is stripped of markup before being marked safe for the template.
type emailRenderer struct {
	sanitizer *bluemonday.Policy
}

func newEmailRenderer() *emailRenderer {
	return &emailRenderer{sanitizer: bluemonday.StrictPolicy()}
}

func (r *emailRenderer) data(submission models.ContactSubmission) emailTemplateData {
	return emailTemplateData{
		Name:          submission.Name,
		Email:         submission.Email,
		Phone:         submission.PhoneOrFallback(),
		CategoryLabel: submission.Category.Label(),
		Message:       template.HTML(r.sanitizer.Sanitize(submission.Message)),
	}
}

func (r *emailRenderer) render(tmpl *template.Template, data emailTemplateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}

// OperatorEmailSender notifies the fixed operator address about a submission.
type OperatorEmailSender struct {
	api      EmailAPI
	from     string
	operator string
	renderer *emailRenderer
	logger   zerolog.Logger
}

// NewOperatorEmailSender constructs the operator notification channel.
func NewOperatorEmailSender(api EmailAPI, from, operator string, logger zerolog.Logger) *OperatorEmailSender {
	return &OperatorEmailSender{
		api:      api,
		from:     from,
		operator: operator,
		renderer: newEmailRenderer(),
		logger:   logger.With().Str("component", "email_operator_sender").Logger(),
	}
}

// Channel identifies the operator notification channel.
func (s *OperatorEmailSender) Channel() string { return "email_operator" }

// Send renders and posts the operator notification document.
func (s *OperatorEmailSender) Send(ctx context.Context, submission models.ContactSubmission) error {
	html, err := s.renderer.render(operatorEmailTemplate, s.renderer.data(submission))
	if err != nil {
		return err
	}

	return s.api.Send(ctx, resend.Email{
		From:    s.from,
		To:      s.operator,
		Subject: fmt.Sprintf("[Contact] %s - %s", submission.Category.Label(), submission.Name),
		HTML:    html,
	})
}

// AcknowledgmentEmailSender sends the confirmation back to the submitter.
type AcknowledgmentEmailSender struct {
	api        EmailAPI
	from       string
	replyEmail string
	replyPhone string
	renderer   *emailRenderer
	logger     zerolog.Logger
}

// NewAcknowledgmentEmailSender constructs the submitter acknowledgment channel.
// replyEmail and replyPhone are printed as the human-reachable fallback contact.
func NewAcknowledgmentEmailSender(api EmailAPI, from, replyEmail, replyPhone string, logger zerolog.Logger) *AcknowledgmentEmailSender {
	return &AcknowledgmentEmailSender{
		api:        api,
		from:       from,
		replyEmail: replyEmail,
		replyPhone: replyPhone,
		renderer:   newEmailRenderer(),
		logger:     logger.With().Str("component", "email_ack_sender").Logger(),
	}
}

// Channel identifies the acknowledgment channel.
func (s *AcknowledgmentEmailSender) Channel() string { return "email_ack" }

// Send renders and posts the acknowledgment document to the submitter.
func (s *AcknowledgmentEmailSender) Send(ctx context.Context, submission models.ContactSubmission) error {
	data := s.renderer.data(submission)
	data.ReplyEmail = s.replyEmail
	data.ReplyPhone = s.replyPhone

	html, err := s.renderer.render(acknowledgmentEmailTemplate, data)
	if err != nil {
		return err
	}

	return s.api.Send(ctx, resend.Email{
		From:    s.from,
		To:      submission.Email,
		Subject: "We received your inquiry",
		HTML:    html,
	})
}

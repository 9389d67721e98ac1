package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/stagelight/contact-gateway/internal/models"
	"github.com/stagelight/contact-gateway/internal/observability"
)

// ChannelSender delivers one notification document for a submission.
type ChannelSender interface {
	Channel() string
	Send(ctx context.Context, submission models.ContactSubmission) error
}

// Dispatcher fans a validated submission out to every configured channel.
type Dispatcher interface {
	Dispatch(ctx context.Context, submission models.ContactSubmission) models.DispatchResult
}

type dispatcher struct {
	senders []ChannelSender
	logger  zerolog.Logger
	tracer  trace.Tracer
}

// NewDispatcher constructs a settle-all dispatch coordinator over the given senders.
func NewDispatcher(senders []ChannelSender, logger zerolog.Logger) Dispatcher {
	return &dispatcher{
		senders: senders,
		logger:  logger.With().Str("component", "dispatcher").Logger(),
		tracer:  otel.Tracer("github.com/stagelight/contact-gateway/internal/service/dispatch"),
	}
}

// Dispatch runs every sender concurrently and waits for all of them to
// settle. One channel's failure never cancels or blocks another; failures
// are logged and counted but only the aggregate is reported to the caller.
func (d *dispatcher) Dispatch(ctx context.Context, submission models.ContactSubmission) models.DispatchResult {
	ctx, span := d.tracer.Start(ctx, "contact.dispatch",
		trace.WithAttributes(attribute.Int("dispatch.channels", len(d.senders))))
	defer span.End()

	outcomes := make([]models.NotificationOutcome, len(d.senders))

	var wg sync.WaitGroup
	for i, sender := range d.senders {
		wg.Add(1)
		go func(i int, sender ChannelSender) {
			defer wg.Done()

			if err := sender.Send(ctx, submission); err != nil {
				outcomes[i] = models.NotificationOutcome{Channel: sender.Channel(), Reason: err.Error()}
				observability.ChannelDeliveries().WithLabelValues(sender.Channel(), "failure").Inc()
				span.RecordError(err)
				d.logger.Warn().Err(err).Str("channel", sender.Channel()).Msg("channel delivery failed")
				return
			}

			outcomes[i] = models.NotificationOutcome{Channel: sender.Channel(), Success: true}
			observability.ChannelDeliveries().WithLabelValues(sender.Channel(), "success").Inc()
		}(i, sender)
	}
	wg.Wait()

	result := models.DispatchResult{Outcomes: outcomes}
	if result.OverallSuccess() {
		span.SetStatus(codes.Ok, "settled")
	} else {
		span.SetStatus(codes.Error, "all channels failed")
		d.logger.Error().Int("channels", len(d.senders)).Msg("all notification channels failed")
	}

	return result
}

package relay

import (
	"context"
	"log/slog"

	"tailorshop/internal/core/ports"
)

// LoggingPublisher wraps another publisher and records every event. It keeps
// an audit trail of notifications even when the inner publisher drops them.
type LoggingPublisher struct {
	inner  ports.EventPublisher
	logger *slog.Logger
}

func NewLoggingPublisher(inner ports.EventPublisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		inner:  inner,
		logger: logger.With("component", "event_publisher"),
	}
}

func (p *LoggingPublisher) Publish(ctx context.Context, event ports.Event) error {
	err := p.inner.Publish(ctx, event)
	if err != nil {
		p.logger.WarnContext(ctx, "event publish failed",
			"event", event.Name,
			"branch", event.BranchID,
			"error", err)
		return err
	}

	p.logger.InfoContext(ctx, "event published",
		"event", event.Name,
		"branch", event.BranchID)
	return nil
}

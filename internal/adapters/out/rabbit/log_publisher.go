package rabbit

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/domain/model/kernel"
)

// LogPublisher writes events to the structured log instead of a broker.
// Used when no AMQP URL is configured, so local development does not
// require a running RabbitMQ instance.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher backed by logger. A nil logger
// falls back to slog.Default.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish logs each event at info level. It never fails.
func (p *LogPublisher) Publish(ctx context.Context, events []kernel.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "domain event", "event", event.EventName())
	}
	return nil
}

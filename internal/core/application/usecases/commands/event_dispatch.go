package commands

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/ports"
)

// publishDomainEvents delivers the events raised by aggregates tracked in the
// unit of work. Called only after a successful commit; publishing failures are
// logged and do not undo committed state. Events are cleared from the
// aggregates once handed to the publisher.
func publishDomainEvents(ctx context.Context, tracker AggregateTracker, publisher ports.EventPublisher) {
	if publisher == nil {
		return
	}

	var events []kernel.DomainEvent
	aggregates := tracker.TrackedAggregates()
	for _, aggregate := range aggregates {
		events = append(events, aggregate.DomainEvents()...)
	}

	if len(events) == 0 {
		return
	}

	if err := publisher.Publish(ctx, events); err != nil {
		slog.Warn("failed to publish domain events", "error", err, "count", len(events))
		return
	}

	for _, aggregate := range aggregates {
		aggregate.ClearDomainEvents()
	}
}

package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
)

// EventPublisher defines the messaging contract for domain event delivery.
// Implementations publish events to an external broker after the owning
// transaction has committed; publishing is best-effort and must not undo
// committed state.
type EventPublisher interface {
	// Publish delivers the given domain events in order.
	Publish(ctx context.Context, events []kernel.DomainEvent) error
}

// Package ports defines repository and messaging interfaces for the coffee shop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The stored version must match the aggregate's version, otherwise
	// a VersionConflictError is returned.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lines, current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest order in Pending status.
	// Used by the assignment workflow to find orders waiting for a barista.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached a terminal status.
	// Returns orders in Pending, InProgress or Ready status.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}

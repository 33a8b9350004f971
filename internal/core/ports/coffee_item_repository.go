package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/coffeeitem"
	"coffeeshop/internal/core/domain/model/kernel"
)

// CoffeeItemRepository defines the persistence contract for coffee item aggregates.
// Provides methods for storing, retrieving, and querying menu items.
type CoffeeItemRepository interface {
	// Add persists a new coffee item aggregate to storage.
	// The item must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *coffeeitem.CoffeeItem) error

	// Update persists changes to an existing coffee item aggregate.
	// The stored version must match the aggregate's version, otherwise
	// a VersionConflictError is returned.
	Update(ctx context.Context, aggregate *coffeeitem.CoffeeItem) error

	// Get retrieves a coffee item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*coffeeitem.CoffeeItem, error)

	// GetByIDs retrieves the coffee items with the given identifiers.
	// Returns an ObjectNotFoundError naming the first missing identifier
	// when any of them does not exist.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*coffeeitem.CoffeeItem, error)

	// GetAllAvailable retrieves all coffee items currently offered on the menu.
	GetAllAvailable(ctx context.Context) ([]*coffeeitem.CoffeeItem, error)
}

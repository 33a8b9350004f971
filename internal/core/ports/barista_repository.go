package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/barista"
	"coffeeshop/internal/core/domain/model/kernel"
)

// BaristaRepository defines the persistence contract for barista aggregates.
type BaristaRepository interface {
	// Add persists a new barista aggregate to storage.
	// The barista must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *barista.Barista) error

	// Get retrieves a barista aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*barista.Barista, error)

	// GetAllFree retrieves all baristas not currently preparing an order.
	// A barista is considered busy while assigned to any order in InProgress
	// or Ready status; completed and cancelled orders free the barista.
	GetAllFree(ctx context.Context) ([]*barista.Barista, error)
}

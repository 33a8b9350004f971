// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence and post-commit event publishing.
package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AggregateTracker exposes the aggregates modified during a unit of work.
	// Handlers drain their domain events to the publisher after a successful commit.
	AggregateTracker interface {
		TrackedAggregates() []kernel.AggregateRoot
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CoffeeItemRepoFactory provides access to the coffee item repository within a transaction.
	CoffeeItemRepoFactory interface {
		CoffeeItemRepository() ports.CoffeeItemRepository
	}

	// BaristaRepoFactory provides access to the barista repository within a transaction.
	BaristaRepoFactory interface {
		BaristaRepository() ports.BaristaRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AggregateTracker
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CoffeeItemUoW manages transactions for menu-only operations.
	// Used when commands only modify coffee item aggregates.
	CoffeeItemUoW interface {
		TxManager
		CoffeeItemRepoFactory
		AggregateTracker
	}

	// CoffeeItemUoWFactory creates new coffee item unit of work instances.
	CoffeeItemUoWFactory interface {
		Create() CoffeeItemUoW
	}

	// BaristaUoW manages transactions for barista-only operations.
	BaristaUoW interface {
		TxManager
		BaristaRepoFactory
		AggregateTracker
	}

	// BaristaUoWFactory creates new barista unit of work instances.
	BaristaUoWFactory interface {
		Create() BaristaUoW
	}

	// UoW manages transactions across order, coffee item and barista aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   itemRepo := uow.CoffeeItemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CoffeeItemRepoFactory
		BaristaRepoFactory
		AggregateTracker
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

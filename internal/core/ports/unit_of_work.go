package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// CoffeeItemRepository returns a CoffeeItemRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	CoffeeItemRepository() CoffeeItemRepository

	// BaristaRepository returns a BaristaRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	BaristaRepository() BaristaRepository

	// TrackedAggregates returns the aggregates modified during this unit of work,
	// in the order they were tracked. Used to publish domain events after a
	// successful commit.
	TrackedAggregates() []kernel.AggregateRoot
}

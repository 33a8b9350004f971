package queries

import (
	"errors"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all orders that have not reached a terminal
// status. Returns orders in Pending, InProgress or Ready status for the
// kitchen display and pickup counter.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	fmt.Printf("Found %d active orders\n", len(orders))
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve active orders.
// This is a parameterless query that fetches all non-terminal orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse represents one active order in the read model.
// BaristaID is nil while the order waits in the queue.
type GetActiveOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	BaristaID  *kernel.UUID
	Status     order.Status
	TotalPrice kernel.Money
	OrderDate  time.Time
	ItemCount  int
}

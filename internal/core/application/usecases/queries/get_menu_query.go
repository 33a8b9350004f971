// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves all coffee items currently offered for ordering.
// Unavailable items are excluded from the result.
//
// Example:
//
//	query := NewGetMenuQuery()
//	handler := NewGetMenuQueryHandler(db)
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve menu: %w", err)
//	}
//
//	for _, item := range menu {
//	    fmt.Printf("%s: %s\n", item.Name, item.Price)
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve the available menu.
// This is a parameterless query that fetches all orderable items.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse represents one orderable item in the menu read model.
type GetMenuQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	ImageURL    string
}

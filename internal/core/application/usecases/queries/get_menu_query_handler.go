package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuQueryHandler retrieves the available menu from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve all available items.
// Returns a slice of menu read models sorted by name.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menu := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			image_url
		FROM coffee_items
		WHERE is_available
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetMenuQueryResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Description,
			&price,
			&item.ImageURL,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		itemPrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}
		item.Price = itemPrice

		menu = append(menu, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}

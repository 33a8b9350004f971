// Package coffeeitemrepo provides data transfer objects and mapping functions
// for menu item persistence.
package coffeeitemrepo

import (
	"coffeeshop/internal/core/domain/model/coffeeitem"
	"coffeeshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CoffeeItemDTO represents the database structure for persisting coffee item
// aggregates. The version column implements optimistic concurrency control.
type CoffeeItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	IsAvailable bool            `gorm:"index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;index"`
	ImageURL    string
	Version     int
}

// TableName specifies the database table name for coffee item entities.
func (CoffeeItemDTO) TableName() string {
	return "coffee_items"
}

// fromDomain converts a coffee item domain aggregate to its database representation.
func fromDomain(aggregate *coffeeitem.CoffeeItem) CoffeeItemDTO {
	return CoffeeItemDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Amount(),
		IsAvailable: aggregate.IsAvailable(),
		CategoryID:  aggregate.CategoryID().Bytes(),
		ImageURL:    aggregate.ImageURL(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to a coffee item domain aggregate.
func toDomain(dto CoffeeItemDTO) (*coffeeitem.CoffeeItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return coffeeitem.RestoreCoffeeItem(
		id,
		dto.Name,
		dto.Description,
		price,
		dto.IsAvailable,
		categoryID,
		dto.ImageURL,
		dto.Version,
	)
}

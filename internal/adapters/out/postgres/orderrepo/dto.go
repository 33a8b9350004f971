// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and barista assignment. The version column
// implements optimistic concurrency control.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	BaristaID  *uuid.UUID `gorm:"type:uuid;index"`
	OrderDate  time.Time
	Status     int             `gorm:"index"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2)"`
	Notes      string
	Version    int
	Lines      []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one line of an order. Lines are immutable once the
// order is created; the line number preserves the original item ordering.
type OrderLineDTO struct {
	OrderID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNumber          int       `gorm:"primaryKey"`
	CoffeeItemID        uuid.UUID `gorm:"type:uuid;index"`
	Quantity            int
	UnitPrice           decimal.Decimal `gorm:"type:numeric(10,2)"`
	SpecialInstructions string
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional barista assignment and lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var baristaID *uuid.UUID
	if id := aggregate.Barista(); id != nil {
		raw := id.Bytes()
		baristaID = &raw
	}

	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for i, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:             aggregate.ID().Bytes(),
			LineNumber:          i + 1,
			CoffeeItemID:        line.CoffeeItemID().Bytes(),
			Quantity:            line.Quantity().Value(),
			UnitPrice:           line.UnitPrice().Amount(),
			SpecialInstructions: line.SpecialInstructions(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		BaristaID:  baristaID,
		OrderDate:  aggregate.OrderDate(),
		Status:     int(aggregate.Status()),
		TotalPrice: aggregate.TotalPrice().Amount(),
		Notes:      aggregate.Notes(),
		Version:    aggregate.Version(),
		Lines:      lineDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines, status and barista
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var baristaID *kernel.UUID
	if dto.BaristaID != nil {
		bID, baristaErr := kernel.UUIDFromBytes((*dto.BaristaID)[:])
		if baristaErr != nil {
			return nil, baristaErr
		}

		baristaID = &bID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := toDomainLine(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		baristaID,
		dto.OrderDate,
		order.Status(dto.Status),
		lines,
		dto.Notes,
		dto.Version,
	)
}

func toDomainLine(dto OrderLineDTO) (order.Line, error) {
	coffeeItemID, err := kernel.UUIDFromBytes(dto.CoffeeItemID[:])
	if err != nil {
		return order.Line{}, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return order.Line{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(coffeeItemID, quantity, unitPrice, dto.SpecialInstructions)
}

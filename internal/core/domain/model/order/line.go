package order

import (
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

// maxSpecialInstructionsLength caps the free-text note on a single line.
const maxSpecialInstructionsLength = 200

// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one position of an order: a menu item reference, a quantity, and
// the unit price captured at order time. Lines are owned exclusively by their
// Order and immutable once created.
//
// The unit price is a snapshot, not a live reference: menu price changes
// after the order was placed must not change what the customer pays.
type Line struct {
	coffeeItemID        kernel.UUID
	quantity            kernel.Quantity
	unitPrice           kernel.Money
	specialInstructions string

	isConstructed bool
}

// NewLine creates an order line. The caller resolves the item's current price
// beforehand; the line only stores the snapshot.
func NewLine(
	coffeeItemID kernel.UUID,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
	specialInstructions string,
) (Line, error) {
	line := Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setCoffeeItemID(coffeeItemID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
		line.setSpecialInstructions(specialInstructions),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the line was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// CoffeeItemID returns the referenced menu item's identifier.
func (l Line) CoffeeItemID() kernel.UUID {
	return l.coffeeItemID
}

// Quantity returns the ordered unit count.
func (l Line) Quantity() kernel.Quantity {
	return l.quantity
}

// UnitPrice returns the per-unit price snapshotted at order time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// SpecialInstructions returns the optional preparation note.
func (l Line) SpecialInstructions() string {
	return l.specialInstructions
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MultiplyBy(l.quantity)
}

func (l *Line) setCoffeeItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.coffeeItemID = id
	return nil
}

func (l *Line) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setSpecialInstructions(instructions string) error {
	if len(instructions) > maxSpecialInstructionsLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"specialInstructions",
			fmt.Errorf("length %d exceeds %d characters", len(instructions), maxSpecialInstructionsLength),
		)
	}
	l.specialInstructions = instructions
	return nil
}

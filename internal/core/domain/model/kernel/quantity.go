package kernel

import (
	"coffeeshop/internal/pkg/errs"
)

const (
	// MinQuantity is the smallest number of units a single order line may hold.
	MinQuantity = 1
	// MaxQuantity is the largest number of units a single order line may hold.
	MaxQuantity = 10
)

// ErrQuantityIsNotConstructed is returned when validating a zero-value Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("Quantity must be created via NewQuantity")

// Quantity is the number of units of one menu item on an order line,
// constrained to the MinQuantity..MaxQuantity range.
type Quantity struct {
	value         int
	isConstructed bool
}

// NewQuantity creates a Quantity, rejecting values outside MinQuantity..MaxQuantity.
func NewQuantity(value int) (Quantity, error) {
	if value < MinQuantity || value > MaxQuantity {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", value, MinQuantity, MaxQuantity)
	}
	return Quantity{value: value, isConstructed: true}, nil
}

// Value returns the unit count.
func (q Quantity) Value() int {
	return q.value
}

// IsEqual reports whether two quantities hold the same count.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// Validate returns ErrQuantityIsNotConstructed for the zero value.
func (q Quantity) Validate() error {
	if !q.isConstructed {
		return ErrQuantityIsNotConstructed
	}
	return nil
}

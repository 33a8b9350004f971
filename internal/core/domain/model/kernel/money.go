package kernel

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or MoneyFromFloat")

// Money is a strictly positive monetary amount. It wraps decimal.Decimal so
// prices and totals never accumulate binary floating point drift.
//
// Money is immutable: arithmetic methods return new values. Upper bounds
// (such as the menu price ceiling) are enforced by the aggregates that own
// the business rule, not here.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney creates a Money from a decimal amount.
// The amount must be greater than zero.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}
	return Money{amount: amount, isConstructed: true}, nil
}

// MoneyFromFloat creates a Money from a float64, mainly for transport input.
func MoneyFromFloat(v float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(v))
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// MultiplyBy returns the amount multiplied by a quantity.
func (m Money) MultiplyBy(q Quantity) Money {
	return Money{
		amount:        m.amount.Mul(decimal.NewFromInt(int64(q.Value()))),
		isConstructed: true,
	}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount:        m.amount.Add(other.amount),
		isConstructed: true,
	}
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// String returns the decimal representation, e.g. "2.5".
func (m Money) String() string {
	return m.amount.String()
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

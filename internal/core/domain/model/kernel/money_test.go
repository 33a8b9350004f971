package kernel_test

import (
	"testing"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts positive amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(2.50))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "2.5", m.String())
	})

	t.Run("rejects zero", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is not greater than 0")
	})
}

func TestMoneyFromFloat(t *testing.T) {
	m, err := kernel.MoneyFromFloat(4.75)

	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(4.75)))
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("multiply by quantity", func(t *testing.T) {
		price, _ := kernel.MoneyFromFloat(2.50)
		qty, _ := kernel.NewQuantity(2)

		subtotal := price.MultiplyBy(qty)

		require.NoError(t, subtotal.Validate())
		assert.Equal(t, "5", subtotal.String())
	})

	t.Run("add amounts exactly", func(t *testing.T) {
		a, _ := kernel.MoneyFromFloat(0.1)
		b, _ := kernel.MoneyFromFloat(0.2)

		sum := a.Add(b)

		// decimal arithmetic, so no float drift
		assert.Equal(t, "0.3", sum.String())
	})

	t.Run("comparisons", func(t *testing.T) {
		a, _ := kernel.MoneyFromFloat(3)
		b, _ := kernel.MoneyFromFloat(3.00)
		c, _ := kernel.MoneyFromFloat(3.01)

		assert.True(t, a.IsEqual(b))
		assert.True(t, c.GreaterThan(a))
		assert.False(t, a.GreaterThan(c))
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var m kernel.Money
		require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
	})
}

package order_test

import (
	"strings"
	"testing"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuantity(t *testing.T, v int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func mustMoney(t *testing.T, v float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(v)
	require.NoError(t, err)
	return m
}

func TestNewLine(t *testing.T) {
	itemID := kernel.NewUUID()

	t.Run("creates valid line", func(t *testing.T) {
		line, err := order.NewLine(itemID, mustQuantity(t, 2), mustMoney(t, 2.50), "extra hot")

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.CoffeeItemID().IsEqual(itemID))
		assert.Equal(t, 2, line.Quantity().Value())
		assert.Equal(t, "2.5", line.UnitPrice().String())
		assert.Equal(t, "extra hot", line.SpecialInstructions())
	})

	t.Run("fails with zero-value item id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewLine(invalidID, mustQuantity(t, 1), mustMoney(t, 3), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with unconstructed quantity", func(t *testing.T) {
		var q kernel.Quantity

		_, err := order.NewLine(itemID, q, mustMoney(t, 3), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with unconstructed unit price", func(t *testing.T) {
		var price kernel.Money

		_, err := order.NewLine(itemID, mustQuantity(t, 1), price, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("accepts instructions at the limit", func(t *testing.T) {
		_, err := order.NewLine(itemID, mustQuantity(t, 1), mustMoney(t, 3), strings.Repeat("x", 200))

		require.NoError(t, err)
	})

	t.Run("rejects oversized instructions", func(t *testing.T) {
		_, err := order.NewLine(itemID, mustQuantity(t, 1), mustMoney(t, 3), strings.Repeat("x", 201))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLine_Subtotal(t *testing.T) {
	line, err := order.NewLine(kernel.NewUUID(), mustQuantity(t, 3), mustMoney(t, 2.50), "")
	require.NoError(t, err)

	assert.Equal(t, "7.5", line.Subtotal().String())
}

func TestLine_Validate(t *testing.T) {
	var line order.Line
	require.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
}

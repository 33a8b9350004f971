package commands_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	// Arrange
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	items := []commands.OrderItem{
		{CoffeeItemID: kernel.NewUUID(), Quantity: 2},
		{CoffeeItemID: kernel.NewUUID(), Quantity: 1, SpecialInstructions: "extra hot"},
	}

	// Act
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, "window seat")

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
	assert.Equal(t, items, cmd.Items())
	assert.Equal(t, "window seat", cmd.Notes())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_ItemsAreCopied(t *testing.T) {
	items := []commands.OrderItem{{CoffeeItemID: kernel.NewUUID(), Quantity: 1}}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), items, "")
	require.NoError(t, err)

	// mutating the caller's slice must not affect the command
	items[0].Quantity = 9
	assert.Equal(t, 1, cmd.Items()[0].Quantity)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		quantity int
	}{
		{name: "zero quantity", quantity: 0},
		{name: "negative quantity", quantity: -1},
		{name: "above maximum", quantity: kernel.MaxQuantity + 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := []commands.OrderItem{{CoffeeItemID: kernel.NewUUID(), Quantity: tc.quantity}}

			_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), items, "")

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestNewCreateOrderCommand_InvalidItemID(t *testing.T) {
	items := []commands.OrderItem{{CoffeeItemID: kernel.UUID{}, Quantity: 1}}

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), items, "")

	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	items := []commands.OrderItem{{CoffeeItemID: kernel.NewUUID(), Quantity: 1}}

	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), items, "")

	require.Error(t, err)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
	"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
)

// MarkOrderReadyCommand represents a barista signalling that an order's
// preparation is finished and it is ready for pickup.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderReadyCommand creates a command to mark an order as ready.
func NewMarkOrderReadyCommand(orderID kernel.UUID) (MarkOrderReadyCommand, error) {
	orderCommand := MarkOrderReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return MarkOrderReadyCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c MarkOrderReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderReadyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrSetCoffeeItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetCoffeeItemAvailabilityCommand must be created via NewSetCoffeeItemAvailabilityCommand constructor",
)

// SetCoffeeItemAvailabilityCommand represents a request to put a menu item
// on or off the menu without changing its details.
type SetCoffeeItemAvailabilityCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewSetCoffeeItemAvailabilityCommand creates a command to toggle item availability.
func NewSetCoffeeItemAvailabilityCommand(
	itemID kernel.UUID,
	isAvailable bool,
) (SetCoffeeItemAvailabilityCommand, error) {
	itemCommand := SetCoffeeItemAvailabilityCommand{
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := itemCommand.setItemID(itemID); err != nil {
		return SetCoffeeItemAvailabilityCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCoffeeItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCoffeeItemAvailabilityCommandIsNotConstructed)
}

// ItemID returns the identifier of the item.
func (c SetCoffeeItemAvailabilityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// IsAvailable returns the requested availability state.
func (c SetCoffeeItemAvailabilityCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *SetCoffeeItemAvailabilityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

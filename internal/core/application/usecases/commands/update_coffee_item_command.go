package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrUpdateCoffeeItemCommandIsNotConstructed = errors.New(
	"UpdateCoffeeItemCommand must be created via NewUpdateCoffeeItemCommand constructor",
)

// UpdateCoffeeItemCommand represents a request to change a menu item's details.
// All details are replaced together; the aggregate validates the full set
// before applying any change.
type UpdateCoffeeItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	description string
	price       kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateCoffeeItemCommand creates a command to update an existing menu item.
func NewUpdateCoffeeItemCommand(
	itemID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
) (UpdateCoffeeItemCommand, error) {
	itemCommand := UpdateCoffeeItemCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setName(name),
		itemCommand.setPrice(price),
	); err != nil {
		return UpdateCoffeeItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCoffeeItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCoffeeItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c UpdateCoffeeItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name.
func (c UpdateCoffeeItemCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateCoffeeItemCommand) Description() string {
	return c.description
}

// Price returns the new price.
func (c UpdateCoffeeItemCommand) Price() kernel.Money {
	return c.price
}

func (c *UpdateCoffeeItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateCoffeeItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateCoffeeItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

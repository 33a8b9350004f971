package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrCreateCoffeeItemCommandIsNotConstructed = errors.New(
		"CreateCoffeeItemCommand must be created via NewCreateCoffeeItemCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateCoffeeItemCommand represents a request to add a new item to the menu.
// The item identifier is generated when the command is constructed so callers
// can report it back after handling.
//
// Example:
//
//	price, _ := kernel.MoneyFromFloat(2.50)
//	cmd, err := NewCreateCoffeeItemCommand("Espresso", "Single shot", price, categoryID, "")
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewCreateCoffeeItemCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create item: %w", err)
//	}
//	fmt.Printf("Item %s added to the menu", cmd.ItemID())
type CreateCoffeeItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        string
	description string
	price       kernel.Money
	categoryID  kernel.UUID
	imageURL    string

	guard guard.ConstructorGuard
}

// NewCreateCoffeeItemCommand creates a command to register a new menu item.
// Validates that name is not empty and price is a constructed Money value.
func NewCreateCoffeeItemCommand(
	name string,
	description string,
	price kernel.Money,
	categoryID kernel.UUID,
	imageURL string,
) (CreateCoffeeItemCommand, error) {
	itemCommand := CreateCoffeeItemCommand{
		itemID:      kernel.NewUUID(),
		description: description,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setName(name),
		itemCommand.setPrice(price),
		itemCommand.setCategoryID(categoryID),
	); err != nil {
		return CreateCoffeeItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCoffeeItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateCoffeeItemCommandIsNotConstructed)
}

// ItemID returns the generated identifier for the new item.
func (c CreateCoffeeItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the display name of the item.
func (c CreateCoffeeItemCommand) Name() string {
	return c.name
}

// Description returns the item description.
func (c CreateCoffeeItemCommand) Description() string {
	return c.description
}

// Price returns the item price.
func (c CreateCoffeeItemCommand) Price() kernel.Money {
	return c.price
}

// CategoryID returns the menu category identifier.
func (c CreateCoffeeItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// ImageURL returns the optional item image location.
func (c CreateCoffeeItemCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateCoffeeItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCoffeeItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateCoffeeItemCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

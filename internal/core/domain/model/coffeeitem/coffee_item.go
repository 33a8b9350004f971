package coffeeitem

import (
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// maxPrice is the menu price ceiling. Money already guarantees a positive
// amount; the ceiling is a menu rule, so it lives here.
var maxPrice = decimal.NewFromInt(10000)

// ErrCoffeeItemIsNotConstructed is returned when a CoffeeItem was not created
// through NewCoffeeItem or RestoreCoffeeItem.
var ErrCoffeeItemIsNotConstructed = errors.New("CoffeeItem must be created via NewCoffeeItem constructor")

// CoffeeItem is a menu entry: what can be ordered, at what price, and whether
// it is currently available. Every mutation re-validates the fields it
// touches, so an item can never drift into an invalid state after creation.
type CoffeeItem struct {
	kernel.Aggregate

	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	isAvailable bool
	categoryID  kernel.UUID
	imageURL    string

	isConstructed bool
}

// NewCoffeeItem creates a menu item. New items start available.
// Raises CoffeeItemCreatedEvent on success.
func NewCoffeeItem(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	categoryID kernel.UUID,
	imageURL string,
) (*CoffeeItem, error) {
	item := &CoffeeItem{
		Aggregate:     kernel.NewAggregate(),
		isAvailable:   true,
		imageURL:      imageURL,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setDescription(description),
		item.setPrice(price),
		item.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	item.RaiseDomainEvent(CoffeeItemCreatedEvent{
		ItemID: item.id.String(),
		Name:   item.name,
		Price:  item.price.String(),
	})

	return item, nil
}

// RestoreCoffeeItem reconstructs a menu item from persistence without events.
func RestoreCoffeeItem(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	isAvailable bool,
	categoryID kernel.UUID,
	imageURL string,
	version int,
) (*CoffeeItem, error) {
	aggregate, err := kernel.RestoreAggregate(version)
	if err != nil {
		return nil, err
	}

	item := &CoffeeItem{
		Aggregate:     aggregate,
		isAvailable:   isAvailable,
		imageURL:      imageURL,
		isConstructed: true,
	}

	if err = errors.Join(
		item.setID(id),
		item.setName(name),
		item.setDescription(description),
		item.setPrice(price),
		item.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created through a factory function.
func (c *CoffeeItem) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCoffeeItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by identifier.
func (c *CoffeeItem) IsEqual(other *CoffeeItem) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (c *CoffeeItem) ID() kernel.UUID {
	return c.id
}

// Name returns the display name.
func (c *CoffeeItem) Name() string {
	return c.name
}

// Description returns the menu description.
func (c *CoffeeItem) Description() string {
	return c.description
}

// Price returns the current unit price.
func (c *CoffeeItem) Price() kernel.Money {
	return c.price
}

// IsAvailable reports whether the item can currently be ordered.
func (c *CoffeeItem) IsAvailable() bool {
	return c.isAvailable
}

// CategoryID returns the menu category reference.
func (c *CoffeeItem) CategoryID() kernel.UUID {
	return c.categoryID
}

// ImageURL returns the optional picture URL.
func (c *CoffeeItem) ImageURL() string {
	return c.imageURL
}

// UpdateDetails replaces name, description, and price in one validated step.
// All three are checked before anything is written, so a failing update
// leaves the item untouched. A price change additionally raises
// CoffeeItemPriceChangedEvent with the old and new values.
func (c *CoffeeItem) UpdateDetails(name, description string, price kernel.Money) error {
	if err := errors.Join(
		validateName(name),
		validateDescription(description),
		validatePrice(price),
	); err != nil {
		return err
	}

	priceChanged := !price.IsEqual(c.price)
	oldPrice := c.price

	c.name = name
	c.description = description
	c.price = price

	if priceChanged {
		c.RaiseDomainEvent(CoffeeItemPriceChangedEvent{
			ItemID:   c.id.String(),
			OldPrice: oldPrice.String(),
			NewPrice: price.String(),
		})
	}

	return nil
}

// ChangePrice sets a new unit price. Setting the current price is a no-op
// without events; otherwise CoffeeItemPriceChangedEvent is raised.
func (c *CoffeeItem) ChangePrice(newPrice kernel.Money) error {
	if err := validatePrice(newPrice); err != nil {
		return err
	}

	if newPrice.IsEqual(c.price) {
		return nil
	}

	oldPrice := c.price
	c.price = newPrice

	c.RaiseDomainEvent(CoffeeItemPriceChangedEvent{
		ItemID:   c.id.String(),
		OldPrice: oldPrice.String(),
		NewPrice: newPrice.String(),
	})

	return nil
}

// SetAvailability toggles whether the item can be ordered. Setting the current
// value is a no-op without events.
func (c *CoffeeItem) SetAvailability(available bool) {
	if c.isAvailable == available {
		return
	}

	c.isAvailable = available

	c.RaiseDomainEvent(CoffeeItemAvailabilityChangedEvent{
		ItemID:      c.id.String(),
		IsAvailable: available,
	})
}

func (c *CoffeeItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *CoffeeItem) setName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *CoffeeItem) setDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	c.description = description
	return nil
}

func (c *CoffeeItem) setPrice(price kernel.Money) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *CoffeeItem) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("categoryId", err)
	}
	c.categoryID = categoryID
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name",
			fmt.Errorf("length %d exceeds %d characters", len(name), maxNameLength),
		)
	}
	return nil
}

func validateDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"description",
			fmt.Errorf("length %d exceeds %d characters", len(description), maxDescriptionLength),
		)
	}
	return nil
}

func validatePrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.Amount().GreaterThan(maxPrice) {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0", maxPrice.String())
	}
	return nil
}

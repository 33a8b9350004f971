package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// OrderItem describes one requested menu item within an order command.
// Unit prices are not part of the request; the handler resolves them from
// the menu when the order is created.
type OrderItem struct {
	CoffeeItemID        kernel.UUID
	Quantity            int
	SpecialInstructions string
}

// CreateOrderCommand represents a request to place a new customer order.
// The order identifier is supplied by the caller so retries are idempotent.
//
// Example:
//
//	items := []commands.OrderItem{{CoffeeItemID: espressoID, Quantity: 2}}
//	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, "to go")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := commands.NewCreateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []OrderItem
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, requires at least one item and checks every
// requested quantity against the allowed range.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []OrderItem,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested items.
func (c CreateOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

// Notes returns the optional order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.CoffeeItemID.Validate(); err != nil {
			return err
		}

		if _, err := kernel.NewQuantity(item.Quantity); err != nil {
			return err
		}
	}

	c.items = make([]OrderItem, len(items))
	copy(c.items, items)
	return nil
}

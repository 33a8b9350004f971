package commands

import (
	"context"
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
)

// ErrCoffeeItemIsNotAvailable is returned when an order requests a menu item
// that is currently off the menu.
var ErrCoffeeItemIsNotAvailable = errors.New("coffee item is not available")

// CreateOrderCommandHandler handles the business logic for placing orders.
// Resolves current menu prices for the requested items, snapshots them into
// order lines and creates the order in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	items := []OrderItem{{CoffeeItemID: latteID, Quantity: 1}}
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, items, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and awaiting barista assignment
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory because order creation reads the menu and writes
// the order within one transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Returns an ObjectNotFoundError when a requested item does not exist and
// ErrCoffeeItemIsNotAvailable when an item is off the menu.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lines, err := h.buildLines(ctx, uow.CoffeeItemRepository(), cmd.Items())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), lines, cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishDomainEvents(ctx, uow, h.publisher)

	return nil
}

// buildLines resolves the requested items against the menu and snapshots
// their current prices into order lines.
func (h CreateOrderCommandHandler) buildLines(
	ctx context.Context,
	itemRepo ports.CoffeeItemRepository,
	requested []OrderItem,
) ([]order.Line, error) {
	ids := make([]kernel.UUID, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, item := range requested {
		if seen[item.CoffeeItemID.String()] {
			continue
		}
		seen[item.CoffeeItemID.String()] = true
		ids = append(ids, item.CoffeeItemID)
	}

	menuItems, err := itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]kernel.Money, len(menuItems))
	for _, menuItem := range menuItems {
		if !menuItem.IsAvailable() {
			return nil, fmt.Errorf("%w: %s", ErrCoffeeItemIsNotAvailable, menuItem.ID())
		}
		byID[menuItem.ID().String()] = menuItem.Price()
	}

	lines := make([]order.Line, 0, len(requested))
	for _, item := range requested {
		quantity, quantityErr := kernel.NewQuantity(item.Quantity)
		if quantityErr != nil {
			return nil, quantityErr
		}

		line, lineErr := order.NewLine(
			item.CoffeeItemID,
			quantity,
			byID[item.CoffeeItemID.String()],
			item.SpecialInstructions,
		)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return lines, nil
}

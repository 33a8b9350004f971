package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/coffeeitem"
	"coffeeshop/internal/core/ports"
)

// CreateCoffeeItemCommandHandler handles the business logic for adding menu items.
// New items are created in available state and announced via a domain event.
//
// Example:
//
//	handler := NewCreateCoffeeItemCommandHandler(uowFactory, publisher)
//	price, _ := kernel.MoneyFromFloat(3.80)
//	cmd, _ := NewCreateCoffeeItemCommand("Latte", "With steamed milk", price, categoryID, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("item creation failed: %w", err)
//	}
type CreateCoffeeItemCommandHandler struct {
	uowFactory CoffeeItemUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateCoffeeItemCommandHandler creates a handler for menu item creation.
// Requires a CoffeeItemUoWFactory for transactional persistence.
func NewCreateCoffeeItemCommandHandler(
	uowFactory CoffeeItemUoWFactory,
	publisher ports.EventPublisher,
) CreateCoffeeItemCommandHandler {
	return CreateCoffeeItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the item creation command.
// Creates the aggregate, persists it within a transaction and publishes the
// raised events after the commit succeeds.
func (h CreateCoffeeItemCommandHandler) Handle(ctx context.Context, cmd CreateCoffeeItemCommand) error {
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

	item, err := coffeeitem.NewCoffeeItem(
		cmd.ItemID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.CategoryID(),
		cmd.ImageURL(),
	)
	if err != nil {
		return err
	}

	if err = uow.CoffeeItemRepository().Add(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishDomainEvents(ctx, uow, h.publisher)

	return nil
}

package commands

import (
	"context"

	"coffeeshop/internal/core/ports"
)

// UpdateCoffeeItemCommandHandler handles menu item detail changes.
// Loads the aggregate, applies the new details and persists the result with
// optimistic concurrency control.
type UpdateCoffeeItemCommandHandler struct {
	uowFactory CoffeeItemUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateCoffeeItemCommandHandler creates a handler for menu item updates.
func NewUpdateCoffeeItemCommandHandler(
	uowFactory CoffeeItemUoWFactory,
	publisher ports.EventPublisher,
) UpdateCoffeeItemCommandHandler {
	return UpdateCoffeeItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the item update command.
// Returns an ObjectNotFoundError when the item does not exist and a
// VersionConflictError when a concurrent update won.
func (h UpdateCoffeeItemCommandHandler) Handle(ctx context.Context, cmd UpdateCoffeeItemCommand) error {
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

	itemRepo := uow.CoffeeItemRepository()

	item, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.UpdateDetails(cmd.Name(), cmd.Description(), cmd.Price()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishDomainEvents(ctx, uow, h.publisher)

	return nil
}

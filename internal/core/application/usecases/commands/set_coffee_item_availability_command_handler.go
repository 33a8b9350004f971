package commands

import (
	"context"

	"coffeeshop/internal/core/ports"
)

// SetCoffeeItemAvailabilityCommandHandler toggles whether a menu item can be ordered.
// Setting the current state again is a no-op and publishes nothing.
type SetCoffeeItemAvailabilityCommandHandler struct {
	uowFactory CoffeeItemUoWFactory
	publisher  ports.EventPublisher
}

// NewSetCoffeeItemAvailabilityCommandHandler creates a handler for availability changes.
func NewSetCoffeeItemAvailabilityCommandHandler(
	uowFactory CoffeeItemUoWFactory,
	publisher ports.EventPublisher,
) SetCoffeeItemAvailabilityCommandHandler {
	return SetCoffeeItemAvailabilityCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the availability command.
func (h SetCoffeeItemAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetCoffeeItemAvailabilityCommand,
) error {
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

	item.SetAvailability(cmd.IsAvailable())

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishDomainEvents(ctx, uow, h.publisher)

	return nil
}

package commands

import (
	"context"

	"coffeeshop/internal/core/ports"
)

// MarkOrderReadyCommandHandler moves an order from InProgress to Ready.
// The transition is rejected with an InvalidStateTransitionError from any
// other status.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkOrderReadyCommandHandler creates a handler for the ready transition.
func NewMarkOrderReadyCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the ready command.
func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
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

	orderRepo := uow.OrderRepository()

	readyOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = readyOrder.MarkAsReady(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, readyOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishDomainEvents(ctx, uow, h.publisher)

	return nil
}

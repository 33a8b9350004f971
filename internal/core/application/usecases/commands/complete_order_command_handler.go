package commands

import (
	"context"

	"coffeeshop/internal/core/ports"
)

// CompleteOrderCommandHandler moves an order from Ready to Completed.
// Completion is terminal; the order cannot change status afterwards.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	completedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = completedOrder.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, completedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishDomainEvents(ctx, uow, h.publisher)

	return nil
}

package commands

import (
	"context"

	"coffeeshop/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order from any non-terminal status.
// Cancelling an already cancelled order is a no-op; completed orders cannot
// be cancelled.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancelledOrder.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishDomainEvents(ctx, uow, h.publisher)

	return nil
}

package commands

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

var (
	ErrNoFreeBaristasFound = errors.New("no free baristas found")
	ErrNoPendingOrders     = errors.New("no pending orders")
)

// AssignBaristaCommandHandler orchestrates the barista assignment process.
// Finds pending orders and matches them with free baristas using the
// OrderDispatcher domain service. The order transition to InProgress is
// persisted transactionally; the barista's busy state is derived from it.
//
// Example:
//
//	handler := NewAssignBaristaCommandHandler(uowFactory, publisher)
//	cmd := NewAssignBaristaCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("Nothing to assign")
//	case errors.Is(err, ErrNoFreeBaristasFound):
//	    log.Println("All baristas are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Barista assigned successfully")
//	}
type AssignBaristaCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewAssignBaristaCommandHandler creates a handler for barista assignment operations.
// Requires a UoWFactory for coordinating reads across repositories.
func NewAssignBaristaCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) AssignBaristaCommandHandler {
	return AssignBaristaCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the barista assignment command.
// Retrieves the oldest pending order, finds free baristas, and uses the
// OrderDispatcher to pick one. Returns ErrNoPendingOrders when the queue is
// empty and ErrNoFreeBaristasFound when everyone is busy.
func (h AssignBaristaCommandHandler) Handle(ctx context.Context, command AssignBaristaCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	baristaRepo := uow.BaristaRepository()

	pendingOrder, err := ordersRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	baristas, err := baristaRepo.GetAllFree(ctx)
	if err != nil {
		return err
	}
	if len(baristas) == 0 {
		return ErrNoFreeBaristasFound
	}

	if _, err = services.NewOrderDispatcher().Dispatch(pendingOrder, baristas); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishDomainEvents(ctx, uow, h.publisher)

	return nil
}

package commands

import (
	"context"

	"coffeeshop/internal/core/domain/model/barista"
)

// CreateBaristaCommandHandler handles barista registration.
// Baristas raise no domain events on creation, so no publisher is needed.
type CreateBaristaCommandHandler struct {
	uowFactory BaristaUoWFactory
}

// NewCreateBaristaCommandHandler creates a handler for barista registration.
func NewCreateBaristaCommandHandler(uowFactory BaristaUoWFactory) CreateBaristaCommandHandler {
	return CreateBaristaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the barista registration command.
func (h CreateBaristaCommandHandler) Handle(ctx context.Context, cmd CreateBaristaCommand) error {
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

	newBarista, err := barista.NewBarista(cmd.BaristaID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.BaristaRepository().Add(ctx, newBarista); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands_test

import (
	"testing"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReadyOrder(t *testing.T) *order.Order {
	t.Helper()

	readyOrder := newInProgressOrder(t)
	require.NoError(t, readyOrder.MarkAsReady())
	readyOrder.ClearDomainEvents()

	return readyOrder
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	readyOrder := newReadyOrder(t)
	cmd, err := commands.NewCompleteOrderCommand(readyOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, readyOrder.ID()).Return(readyOrder, nil).Once(),
		orderRepo.On("Update", mock.Anything, readyOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Completed, readyOrder.Status())

	// completion raises both a status change and a completion event
	events := readyOrder.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "OrderStatusChanged", events[0].EventName())
	assert.Equal(t, "OrderCompleted", events[1].EventName())
}

func TestCompleteOrderCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()

	inProgress := newInProgressOrder(t)
	cmd, err := commands.NewCompleteOrderCommand(inProgress.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, inProgress.ID()).Return(inProgress, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Equal(t, order.InProgress, inProgress.Status())
}

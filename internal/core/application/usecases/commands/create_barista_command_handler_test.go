package commands_test

import (
	"errors"
	"testing"

	"coffeeshop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateBaristaCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateBaristaCommand("Alice")

	require.NoError(t, err)
	assert.Equal(t, "Alice", cmd.Name())
	assert.NotZero(t, cmd.BaristaID())
	assert.NoError(t, cmd.BaristaID().Validate())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateBaristaCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateBaristaCommand("")

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestCreateBaristaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBaristaCommand("Alice")
	require.NoError(t, err)

	repo := new(MockBaristaRepository)
	uow := new(MockBaristaUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BaristaRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*barista.Barista")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBaristaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBaristaCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateBaristaCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateBaristaCommand{} // not constructed properly

	factory := new(MockBaristaUoWFactory)
	h := commands.NewCreateBaristaCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateBaristaCommandIsNotConstructed)
}

func TestCreateBaristaCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBaristaCommand("Alice")
	require.NoError(t, err)

	repo := new(MockBaristaRepository)
	uow := new(MockBaristaUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BaristaRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*barista.Barista")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBaristaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBaristaCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrCreateBaristaCommandIsNotConstructed = errors.New(
	"CreateBaristaCommand must be created via NewCreateBaristaCommand constructor",
)

// CreateBaristaCommand represents a request to register a new barista.
// The barista identifier is generated when the command is constructed.
type CreateBaristaCommand struct { //nolint:recvcheck //using for validation
	baristaID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewCreateBaristaCommand creates a command to register a new barista.
// Validates that the name is not empty.
func NewCreateBaristaCommand(name string) (CreateBaristaCommand, error) {
	baristaCommand := CreateBaristaCommand{
		baristaID: kernel.NewUUID(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := baristaCommand.setName(name); err != nil {
		return CreateBaristaCommand{}, err
	}

	return baristaCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBaristaCommand) Validate() error {
	return c.guard.Validate(ErrCreateBaristaCommandIsNotConstructed)
}

// BaristaID returns the generated identifier for the new barista.
func (c CreateBaristaCommand) BaristaID() kernel.UUID {
	return c.baristaID
}

// Name returns the barista's display name.
func (c CreateBaristaCommand) Name() string {
	return c.name
}

func (c *CreateBaristaCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

package commands

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var ErrAssignBaristaCommandIsNotConstructed = errors.New(
	"AssignBaristaCommand must be created via NewAssignBaristaCommand constructor",
)

// AssignBaristaCommand triggers the assignment of a free barista to a pending order.
// This command represents the business operation of matching preparation capacity
// with waiting orders. It finds the oldest order in Pending status and hands it
// to a free barista, moving the order to InProgress.
//
// Example:
//
//	cmd := NewAssignBaristaCommand()
//	handler := NewAssignBaristaCommandHandler(uowFactory, publisher)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No pending orders or no free baristas: %v", err)
//	}
type AssignBaristaCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignBaristaCommand creates a new command to trigger barista assignment.
// This is a parameterless command that initiates the barista-order matching process.
func NewAssignBaristaCommand() AssignBaristaCommand {
	return AssignBaristaCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignBaristaCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignBaristaCommandIsNotConstructed,
	)
}

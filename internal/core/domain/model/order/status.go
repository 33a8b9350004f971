package order

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> InProgress ──> Ready ──> Completed
//	   │            │            │
//	   └────────────┴────────────┴──> Cancelled
//
// Completed and Cancelled are terminal. Cancellation is handled by
// Order.Cancel, which deliberately bypasses the generic table: it is allowed
// from every status except Completed and is idempotent once cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is placed and waits for a barista.
	Pending

	// InProgress means a barista has been assigned and is preparing the order.
	InProgress

	// Ready means the order is prepared and waiting to be picked up.
	Ready

	// Completed means the order has been handed to the customer. Terminal.
	Completed

	// Cancelled means the order was called off before completion. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Ready:      "Ready",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getStatusTransitions returns the allowed target statuses per source status.
// Terminal statuses map to an empty set.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {InProgress, Cancelled},
		InProgress: {Ready, Cancelled},
		Ready:      {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// Validate checks that the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateCanHaveBarista validates the consistency between an order's status
// and its barista assignment when restoring from persistence.
//
// Business rules:
//   - Pending orders must not have a barista yet
//   - InProgress, Ready, and Completed orders must have one
//   - Cancelled orders may have one or not, depending on when they were cancelled
func (s Status) ValidateCanHaveBarista(hasBarista bool) error {
	if s == Cancelled {
		return nil
	}

	if hasBarista && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a barista", s.String()),
		)
	}

	if !hasBarista && (s == InProgress || s == Ready || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no barista", s.String()),
		)
	}

	return nil
}

// CanTransitionTo reports whether the transition table permits moving from s
// to target. It does not cover the Cancel special case.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a table transition, returning the new
// status. Fails with InvalidStateTransitionError when the table forbids the
// move, leaving the caller's state untouched.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidStateTransitionError(s.String(), target.String())
	}
	return target, nil
}

package kernel

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// DomainEvent is an immutable record of something that happened to an
// aggregate. Events are queued on the aggregate and dispatched by the
// application layer after the change has been persisted.
type DomainEvent interface {
	// EventName identifies the event kind, e.g. "OrderCreated".
	// It doubles as the routing key when events are published to a broker.
	EventName() string
}

// AggregateRoot is the behavior every aggregate root inherits by embedding
// Aggregate: a drainable domain event buffer.
type AggregateRoot interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// Aggregate is the shared base of all aggregate roots. It supplies the
// append-only domain event buffer and the optimistic concurrency version.
// Embed it by value; its methods use pointer receivers so event and version
// state mutate the owning aggregate.
//
// The event buffer contract: events accumulate on every state-changing
// operation, DomainEvents returns a copy (callers can never mutate the
// buffer), and ClearDomainEvents must be called exactly once after the
// events of a successfully persisted change have been dispatched.
type Aggregate struct {
	version int
	events  []DomainEvent
}

// NewAggregate creates the base state for a brand new aggregate (version 0).
func NewAggregate() Aggregate {
	return Aggregate{}
}

// RestoreAggregate creates the base state for an aggregate loaded from
// persistence. The stored version must not be negative.
func RestoreAggregate(version int) (Aggregate, error) {
	if version < 0 {
		return Aggregate{}, errs.NewVersionIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is negative", version),
		)
	}
	return Aggregate{version: version}, nil
}

// RaiseDomainEvent appends an event to the aggregate's buffer.
func (a *Aggregate) RaiseDomainEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// DomainEvents returns a copy of the pending events in raise order.
func (a *Aggregate) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(a.events))
	copy(events, a.events)
	return events
}

// ClearDomainEvents empties the event buffer. Call it only after the pending
// events have been dispatched for a successfully persisted change; clearing
// earlier loses events, clearing later duplicates them on the next save.
func (a *Aggregate) ClearDomainEvents() {
	a.events = nil
}

// Version returns the persisted version this aggregate was loaded with.
// New aggregates start at version 0.
func (a *Aggregate) Version() int {
	return a.version
}

// IncrementVersion advances the version after a successful save.
// Called by repositories, never by domain code.
func (a *Aggregate) IncrementVersion() {
	a.version++
}

package order

import (
	"errors"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLinesAreRequired is returned when creating an order without lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")
)

// Order is the aggregate root of the ordering subdomain. It owns its lines,
// enforces the status lifecycle, and derives its total price from the lines.
//
// Invariants:
//   - at least one line, and the line set is fixed after creation
//   - totalPrice always equals the sum of line subtotals
//   - baristaID is set exactly once, by AssignBarista, which also starts progress
//   - status changes only through the operations below; every operation is
//     all-or-nothing and fails without touching state
//
// The aggregate performs no I/O. State changes queue domain events on the
// embedded event buffer; persisting and dispatching them is the caller's job.
type Order struct {
	kernel.Aggregate

	// id uniquely identifies the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// baristaID references the assigned barista (nil until assignment)
	baristaID *kernel.UUID

	// orderDate is when the order was placed, immutable
	orderDate time.Time

	// status is the current lifecycle state
	status Status

	// totalPrice is derived from the lines
	totalPrice kernel.Money

	// notes is an optional free-text note from the customer
	notes string

	// lines are the order positions, owned exclusively by this order
	lines []Line

	// isConstructed ensures the order was created via a factory
	isConstructed bool
}

// NewOrder creates an order in Pending status from pre-priced lines.
//
// The caller must have snapshotted the unit prices into the lines already:
// the aggregate never looks up menu prices itself, which is what keeps
// historical orders stable when the menu changes.
//
// Raises OrderCreatedEvent on success.
func NewOrder(id kernel.UUID, customerID kernel.UUID, lines []Line, notes string) (*Order, error) {
	order := &Order{
		Aggregate:     kernel.NewAggregate(),
		status:        Pending,
		orderDate:     time.Now().UTC(),
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	order.totalPrice = computeTotal(order.lines)

	order.RaiseDomainEvent(OrderCreatedEvent{
		OrderID:    order.id.String(),
		CustomerID: order.customerID.String(),
		TotalPrice: order.totalPrice.String(),
		ItemCount:  len(order.lines),
	})

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without raising events.
// It re-validates all fields and the status/barista consistency, and
// recomputes the derived total from the lines.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	baristaID *kernel.UUID,
	orderDate time.Time,
	status Status,
	lines []Line,
	notes string,
	version int,
) (*Order, error) {
	aggregate, err := kernel.RestoreAggregate(version)
	if err != nil {
		return nil, err
	}

	order := &Order{
		Aggregate:     aggregate,
		orderDate:     orderDate,
		notes:         notes,
		isConstructed: true,
	}

	if err = errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setLines(lines),
		status.Validate(),
		status.ValidateCanHaveBarista(baristaID != nil),
	); err != nil {
		return nil, err
	}

	if baristaID != nil {
		if err = baristaID.Validate(); err != nil {
			return nil, err
		}
		idCopy := *baristaID
		order.baristaID = &idCopy
	}

	order.status = status
	order.totalPrice = computeTotal(order.lines)

	return order, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Barista returns the assigned barista's identifier, or nil before assignment.
func (o *Order) Barista() *kernel.UUID {
	if o.baristaID == nil {
		return nil
	}
	id := *o.baristaID
	return &id
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the derived order total.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Notes returns the optional customer note.
func (o *Order) Notes() string {
	return o.notes
}

// Lines returns a copy of the order lines in their original order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// AssignBarista assigns the order to a barista and starts preparation.
//
// This is a combined operation: assignment always also transitions the order
// from Pending to InProgress. It is only legal while the order is Pending,
// which also guarantees the barista is set exactly once.
//
// Raises OrderStatusChangedEvent{Pending, InProgress} on success.
func (o *Order) AssignBarista(baristaID kernel.UUID) error {
	if err := baristaID.Validate(); err != nil {
		return err
	}

	if o.status != Pending {
		return errs.NewInvalidStateTransitionError(o.status.String(), InProgress.String())
	}

	o.baristaID = &baristaID
	return o.ChangeStatus(InProgress)
}

// ChangeStatus moves the order to newStatus when the transition table allows
// it. Changing to the current status is a no-op without events.
//
// Raises OrderStatusChangedEvent, and additionally OrderCompletedEvent when
// the new status is Completed.
func (o *Order) ChangeStatus(newStatus Status) error {
	if newStatus == o.status {
		return nil
	}

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	previous := o.status
	o.status = next

	o.RaiseDomainEvent(OrderStatusChangedEvent{
		OrderID:  o.id.String(),
		Previous: previous.String(),
		New:      next.String(),
	})

	if next == Completed {
		o.RaiseDomainEvent(OrderCompletedEvent{
			OrderID:    o.id.String(),
			CustomerID: o.customerID.String(),
			TotalPrice: o.totalPrice.String(),
		})
	}

	return nil
}

// MarkAsReady transitions the order from InProgress to Ready.
// Fails with InvalidStateTransitionError from any other status.
func (o *Order) MarkAsReady() error {
	if o.status != InProgress {
		return errs.NewInvalidStateTransitionError(o.status.String(), Ready.String())
	}
	return o.ChangeStatus(Ready)
}

// Complete transitions the order from Ready to Completed.
// Fails with InvalidStateTransitionError from any other status.
func (o *Order) Complete() error {
	if o.status != Ready {
		return errs.NewInvalidStateTransitionError(o.status.String(), Completed.String())
	}
	return o.ChangeStatus(Completed)
}

// Cancel calls the order off. Cancellation is special-cased against the
// transition table: it is allowed from every status except Completed, and
// cancelling an already cancelled order is a no-op.
//
// Raises OrderCancelledEvent (and only that event) on success.
func (o *Order) Cancel(reason string) error {
	if o.status == Completed {
		return errs.NewInvalidStateTransitionError(Completed.String(), Cancelled.String())
	}
	if o.status == Cancelled {
		return nil
	}

	o.status = Cancelled

	o.RaiseDomainEvent(OrderCancelledEvent{
		OrderID: o.id.String(),
		Reason:  reason,
	})

	return nil
}

// RecalculateTotalPrice recomputes the total from the current lines.
// Idempotent; raises no events.
func (o *Order) RecalculateTotalPrice() {
	o.totalPrice = computeTotal(o.lines)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

// computeTotal sums the line subtotals. Callers guarantee lines is non-empty.
func computeTotal(lines []Line) kernel.Money {
	total := lines[0].Subtotal()
	for _, line := range lines[1:] {
		total = total.Add(line.Subtotal())
	}
	return total
}

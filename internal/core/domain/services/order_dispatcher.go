package services

import (
	"errors"

	"coffeeshop/internal/core/domain/model/barista"
	"coffeeshop/internal/core/domain/model/order"
)

// ErrBaristaNotFound is returned when no barista is available to take the order.
// This occurs when either no baristas are provided or none of the provided
// baristas pass validation.
var ErrBaristaNotFound = errors.New("barista not found")

// OrderDispatcher is a domain service responsible for assigning a free barista
// to a pending order.
//
// Key responsibilities:
//   - Validating orders before dispatch
//   - Selecting a free barista for preparation
//   - Ensuring the assign-and-start transition happens atomically on the aggregate
//
// Business rules:
//   - Orders must be valid and in Pending status before dispatch
//   - Baristas must be valid aggregates
//   - The first available barista takes the order
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	pendingOrder, _ := order.NewOrder(id, customerID, lines, "")
//	baristas := []*barista.Barista{barista1, barista2}
//
//	assignedBarista, err := dispatcher.Dispatch(pendingOrder, baristas)
//	if errors.Is(err, services.ErrBaristaNotFound) {
//	    // No free baristas right now
//	    return
//	}
//	if err != nil {
//	    // Handle dispatch failure
//	    return
//	}
//	// Order is now InProgress under assignedBarista
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch picks a barista for the given order and executes the assignment workflow.
//
// The order must be in Pending status; assignment moves it to InProgress through
// the aggregate, which raises the corresponding status change event.
//
// Returns ErrBaristaNotFound if the candidate list yields no usable barista.
func (o OrderDispatcher) Dispatch(order *order.Order, baristas []*barista.Barista) (*barista.Barista, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	freeBarista, err := o.findFreeBarista(baristas)
	if err != nil {
		return nil, err
	}

	if err = order.AssignBarista(freeBarista.ID()); err != nil {
		return nil, err
	}

	return freeBarista, nil
}

// findFreeBarista returns the first valid barista from the candidate list.
// The caller supplies only baristas known to be free of active orders, so
// selection does not need to compare workloads.
func (o OrderDispatcher) findFreeBarista(baristas []*barista.Barista) (*barista.Barista, error) {
	for _, b := range baristas {
		if err := b.Validate(); err != nil {
			return nil, err
		}

		return b, nil
	}

	return nil, ErrBaristaNotFound
}

// Package order contains the order aggregate: the root entity owning its
// order lines, the status state machine, and the domain events raised by
// lifecycle operations.
//
// Lines snapshot the unit price of their menu item at creation time, so
// later menu price changes never alter the history of placed orders. The
// total price is derived from the lines and recomputed, never stored
// authoritatively anywhere else.
package order

// Package coffeeitem contains the menu item aggregate: price, availability,
// and the events raised when either changes.
package coffeeitem

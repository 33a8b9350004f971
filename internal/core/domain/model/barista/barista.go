// Package barista contains the barista aggregate, the assignment target for
// orders. Whether a barista is free or busy is derived from order assignments
// at the persistence layer; the aggregate itself only carries identity.
package barista

import (
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

const maxNameLength = 100

var (
	// ErrBaristaIsNotConstructed is returned when using an improperly initialized Barista.
	ErrBaristaIsNotConstructed = errors.New("Barista must be created via NewBarista constructor")
)

// Barista represents a member of staff who prepares orders.
type Barista struct {
	kernel.Aggregate

	id   kernel.UUID
	name string

	isConstructed bool
}

// NewBarista creates a barista with a validated display name.
func NewBarista(id kernel.UUID, name string) (*Barista, error) {
	barista := &Barista{
		Aggregate:     kernel.NewAggregate(),
		isConstructed: true,
	}

	if err := errors.Join(
		barista.setID(id),
		barista.setName(name),
	); err != nil {
		return nil, err
	}

	return barista, nil
}

// RestoreBarista reconstructs a barista from persistence.
func RestoreBarista(id kernel.UUID, name string, version int) (*Barista, error) {
	aggregate, err := kernel.RestoreAggregate(version)
	if err != nil {
		return nil, err
	}

	barista := &Barista{
		Aggregate:     aggregate,
		isConstructed: true,
	}

	if err = errors.Join(
		barista.setID(id),
		barista.setName(name),
	); err != nil {
		return nil, err
	}

	return barista, nil
}

// Validate ensures the barista was created through a factory function.
func (b *Barista) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBaristaIsNotConstructed
	}
	return nil
}

// IsEqual compares two baristas by identifier.
func (b *Barista) IsEqual(other *Barista) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the barista's unique identifier.
func (b *Barista) ID() kernel.UUID {
	return b.id
}

// Name returns the display name.
func (b *Barista) Name() string {
	return b.name
}

func (b *Barista) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Barista) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name",
			fmt.Errorf("length %d exceeds %d characters", len(name), maxNameLength),
		)
	}
	b.name = name
	return nil
}

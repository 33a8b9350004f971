// Package baristarepo provides data transfer objects and mapping functions
// for barista persistence. A barista's busy state is not stored here; it is
// derived from the orders table.
package baristarepo

import (
	"coffeeshop/internal/core/domain/model/barista"
	"coffeeshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BaristaDTO represents the database structure for persisting barista aggregates.
type BaristaDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Version int
}

// TableName specifies the database table name for barista entities.
func (BaristaDTO) TableName() string {
	return "baristas"
}

// fromDomain converts a barista domain aggregate to its database representation.
func fromDomain(aggregate *barista.Barista) BaristaDTO {
	return BaristaDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Version: aggregate.Version(),
	}
}

// toDomain converts a database DTO to a barista domain aggregate.
func toDomain(dto BaristaDTO) (*barista.Barista, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return barista.RestoreBarista(id, dto.Name, dto.Version)
}

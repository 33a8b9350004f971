package baristarepo

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/model/barista"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBaristaRepository implements BaristaRepository using GORM.
type GormBaristaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate kernel.AggregateRoot)
}

// NewGormBaristaRepository creates a new GORM barista repository.
func NewGormBaristaRepository(db *gorm.DB, tracker aggregateTracker) *GormBaristaRepository {
	return &GormBaristaRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new barista to the database.
func (r *GormBaristaRepository) Add(ctx context.Context, aggregate *barista.Barista) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a barista by ID.
func (r *GormBaristaRepository) Get(ctx context.Context, id kernel.UUID) (*barista.Barista, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BaristaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("barista", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllFree retrieves all baristas not currently preparing an order.
// A barista is busy while assigned to any order in InProgress or Ready
// status; completed and cancelled orders free the barista again.
func (r *GormBaristaRepository) GetAllFree(ctx context.Context) ([]*barista.Barista, error) {
	var dtos []BaristaDTO
	err := r.db.WithContext(ctx).
		Where(`id NOT IN (
			SELECT barista_id FROM orders
			WHERE barista_id IS NOT NULL AND status IN (?, ?)
		)`, order.InProgress, order.Ready).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	baristas := make([]*barista.Barista, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		baristas = append(baristas, b)
	}

	return baristas, nil
}

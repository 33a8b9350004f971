package orderrepo

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate kernel.AggregateRoot)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database using optimistic locking.
// The row is only written when the stored version matches the aggregate's;
// otherwise a VersionConflictError is returned. Order lines are immutable
// and never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("BaristaID", "Status", "TotalPrice", "Notes", "Version").
		Updates(OrderDTO{
			BaristaID:  dto.BaristaID,
			Status:     dto.Status,
			TotalPrice: dto.TotalPrice,
			Notes:      dto.Notes,
			Version:    aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate.ID())
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its lines in original order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloadLines(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstInPendingStatus retrieves the oldest order waiting for a barista.
func (r *GormOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.preloadLines(ctx).
		Order("order_date").
		First(&dto, "status = ?", order.Pending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first in pending status")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all orders that have not reached a terminal status.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.preloadLines(ctx).
		Order("order_date").
		Find(&dtos, "status NOT IN ?", []int{int(order.Completed), int(order.Cancelled)}).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) preloadLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("line_number")
	})
}

// classifyMissedUpdate distinguishes a missing row from a version mismatch
// after an optimistic update touched nothing.
func (r *GormOrderRepository) classifyMissedUpdate(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return errs.NewVersionConflictError("order", id.String())
}

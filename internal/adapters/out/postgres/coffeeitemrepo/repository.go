package coffeeitemrepo

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/model/coffeeitem"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCoffeeItemRepository implements CoffeeItemRepository using GORM.
type GormCoffeeItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate kernel.AggregateRoot)
}

// NewGormCoffeeItemRepository creates a new GORM coffee item repository.
func NewGormCoffeeItemRepository(db *gorm.DB, tracker aggregateTracker) *GormCoffeeItemRepository {
	return &GormCoffeeItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new coffee item to the database.
func (r *GormCoffeeItemRepository) Add(ctx context.Context, aggregate *coffeeitem.CoffeeItem) error {
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

// Update saves an existing coffee item using optimistic locking.
// The explicit column list makes sure zero values such as a cleared
// description or is_available=false are written as well.
func (r *GormCoffeeItemRepository) Update(ctx context.Context, aggregate *coffeeitem.CoffeeItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CoffeeItemDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("Name", "Description", "Price", "IsAvailable", "ImageURL", "Version").
		Updates(CoffeeItemDTO{
			Name:        dto.Name,
			Description: dto.Description,
			Price:       dto.Price,
			IsAvailable: dto.IsAvailable,
			ImageURL:    dto.ImageURL,
			Version:     aggregate.Version() + 1,
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

// Get retrieves a coffee item by ID.
func (r *GormCoffeeItemRepository) Get(ctx context.Context, id kernel.UUID) (*coffeeitem.CoffeeItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CoffeeItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coffee item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the coffee items with the given identifiers.
// Returns an ObjectNotFoundError naming the first missing identifier when
// any requested item does not exist.
func (r *GormCoffeeItemRepository) GetByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*coffeeitem.CoffeeItem, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []CoffeeItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = true
	}
	for _, id := range ids {
		if !found[id.Bytes()] {
			return nil, errs.NewObjectNotFoundError("coffee item", id.String())
		}
	}

	items := make([]*coffeeitem.CoffeeItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// GetAllAvailable retrieves all coffee items currently offered on the menu.
func (r *GormCoffeeItemRepository) GetAllAvailable(ctx context.Context) ([]*coffeeitem.CoffeeItem, error) {
	var dtos []CoffeeItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_available = ?", true).Error; err != nil {
		return nil, err
	}

	items := make([]*coffeeitem.CoffeeItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *GormCoffeeItemRepository) classifyMissedUpdate(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&CoffeeItemDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("coffee item", id.String())
	}

	return errs.NewVersionConflictError("coffee item", id.String())
}

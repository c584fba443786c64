package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vdpcza/internal/models/db_models"
)

type TripRepository interface {
	List(ctx context.Context) ([]db_models.Trip, error)
	Count(ctx context.Context) (int64, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	Create(ctx context.Context, trip *db_models.Trip) error
	Save(ctx context.Context, trip *db_models.Trip) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ToggleReveal(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (t *tripRepository) List(ctx context.Context) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := t.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("start_date ASC NULLS LAST").
		Find(&trips).Error
	return trips, err
}

func (t *tripRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := t.db.WithContext(ctx).Model(&db_models.Trip{}).Count(&n).Error
	return n, err
}

func (t *tripRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	return findOne[db_models.Trip](ctx, t.db, "id = ?", id)
}

func (t *tripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Create(trip).Error
}

func (t *tripRepository) Save(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Save(trip).Error
}

func (t *tripRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID[db_models.Trip](ctx, t.db, id)
}

func (t *tripRepository) ToggleReveal(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	return toggleColumn[db_models.Trip](ctx, t.db, id, "is_revealed")
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vdpcza/internal/models/db_models"
)

type BucketListRepository interface {
	List(ctx context.Context) ([]db_models.BucketListItem, error)
	Create(ctx context.Context, item *db_models.BucketListItem) error
	ToggleCompleted(ctx context.Context, id uuid.UUID) (*db_models.BucketListItem, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type bucketListRepository struct {
	db *gorm.DB
}

func NewBucketListRepository(db *gorm.DB) BucketListRepository {
	return &bucketListRepository{db: db}
}

func (b *bucketListRepository) List(ctx context.Context) ([]db_models.BucketListItem, error) {
	var items []db_models.BucketListItem
	err := b.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (b *bucketListRepository) Create(ctx context.Context, item *db_models.BucketListItem) error {
	return b.db.WithContext(ctx).Create(item).Error
}

func (b *bucketListRepository) ToggleCompleted(ctx context.Context, id uuid.UUID) (*db_models.BucketListItem, error) {
	return toggleColumn[db_models.BucketListItem](ctx, b.db, id, "is_completed")
}

func (b *bucketListRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID[db_models.BucketListItem](ctx, b.db, id)
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vdpcza/internal/models/db_models"
)

type CapsuleRepository interface {
	List(ctx context.Context) ([]db_models.Capsule, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Capsule, error)
	Create(ctx context.Context, capsule *db_models.Capsule) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type capsuleRepository struct {
	db *gorm.DB
}

func NewCapsuleRepository(db *gorm.DB) CapsuleRepository {
	return &capsuleRepository{db: db}
}

func (c *capsuleRepository) List(ctx context.Context) ([]db_models.Capsule, error) {
	var capsules []db_models.Capsule
	err := c.db.WithContext(ctx).Order("unlock_date ASC").Find(&capsules).Error
	return capsules, err
}

func (c *capsuleRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Capsule, error) {
	return findOne[db_models.Capsule](ctx, c.db, "id = ?", id)
}

func (c *capsuleRepository) Create(ctx context.Context, capsule *db_models.Capsule) error {
	return c.db.WithContext(ctx).Create(capsule).Error
}

func (c *capsuleRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID[db_models.Capsule](ctx, c.db, id)
}

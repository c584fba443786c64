package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vdpcza/internal/models/db_models"
)

type ProfileRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Profile, error)
	// Create inserts the profile unless one already exists for the id.
	Create(ctx context.Context, profile *db_models.Profile) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
	return findOne[db_models.Profile](ctx, p.db, "id = ?", id)
}

func (p *profileRepository) Create(ctx context.Context, profile *db_models.Profile) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(profile).Error
}

func (p *profileRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("id = ?", id).
		Updates(fields).Error
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vdpcza/internal/models/db_models"
)

type MoodRepository interface {
	Insert(ctx context.Context, mood *db_models.Mood) error
	Recent(ctx context.Context, limit int) ([]db_models.Mood, error)
	LatestForUser(ctx context.Context, userID uuid.UUID) (*db_models.Mood, error)
}

type moodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (m *moodRepository) Insert(ctx context.Context, mood *db_models.Mood) error {
	return m.db.WithContext(ctx).Create(mood).Error
}

func (m *moodRepository) Recent(ctx context.Context, limit int) ([]db_models.Mood, error) {
	var moods []db_models.Mood
	err := m.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&moods).Error
	return moods, err
}

func (m *moodRepository) LatestForUser(ctx context.Context, userID uuid.UUID) (*db_models.Mood, error) {
	var mood db_models.Mood
	res := m.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(1).
		Find(&mood)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &mood, nil
}

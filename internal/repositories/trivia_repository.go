package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vdpcza/internal/models/db_models"
)

type TriviaRepository interface {
	// ListOrdered returns questions in a stable order so the daily pick
	// does not move between requests.
	ListOrdered(ctx context.Context) ([]db_models.TriviaQuestion, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.TriviaQuestion, error)
	Create(ctx context.Context, q *db_models.TriviaQuestion) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type triviaRepository struct {
	db *gorm.DB
}

func NewTriviaRepository(db *gorm.DB) TriviaRepository {
	return &triviaRepository{db: db}
}

func (t *triviaRepository) ListOrdered(ctx context.Context) ([]db_models.TriviaQuestion, error) {
	var questions []db_models.TriviaQuestion
	err := t.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

func (t *triviaRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.TriviaQuestion, error) {
	return findOne[db_models.TriviaQuestion](ctx, t.db, "id = ?", id)
}

func (t *triviaRepository) Create(ctx context.Context, q *db_models.TriviaQuestion) error {
	return t.db.WithContext(ctx).Create(q).Error
}

func (t *triviaRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID[db_models.TriviaQuestion](ctx, t.db, id)
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vdpcza/internal/models/db_models"
)

type QuoteRepository interface {
	List(ctx context.Context) ([]db_models.Quote, error)
	// Random returns nil, nil when the table is empty.
	Random(ctx context.Context) (*db_models.Quote, error)
	Create(ctx context.Context, quote *db_models.Quote) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type quoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (q *quoteRepository) List(ctx context.Context) ([]db_models.Quote, error) {
	var quotes []db_models.Quote
	err := q.db.WithContext(ctx).Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (q *quoteRepository) Random(ctx context.Context) (*db_models.Quote, error) {
	var quote db_models.Quote
	res := q.db.WithContext(ctx).Order("random()").Limit(1).Find(&quote)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &quote, nil
}

func (q *quoteRepository) Create(ctx context.Context, quote *db_models.Quote) error {
	return q.db.WithContext(ctx).Create(quote).Error
}

func (q *quoteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID[db_models.Quote](ctx, q.db, id)
}

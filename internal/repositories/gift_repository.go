package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vdpcza/internal/models/db_models"
)

type GiftRepository interface {
	List(ctx context.Context) ([]db_models.Gift, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Gift, error)
	Create(ctx context.Context, gift *db_models.Gift) error
	Save(ctx context.Context, gift *db_models.Gift) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ToggleReceived(ctx context.Context, id uuid.UUID) (*db_models.Gift, error)

	// MarkViewed is idempotent per (user, gift).
	MarkViewed(ctx context.Context, userID, giftID uuid.UUID) error
	ViewedGiftIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type giftRepository struct {
	db *gorm.DB
}

func NewGiftRepository(db *gorm.DB) GiftRepository {
	return &giftRepository{db: db}
}

func (g *giftRepository) List(ctx context.Context) ([]db_models.Gift, error) {
	var gifts []db_models.Gift
	err := g.db.WithContext(ctx).Order("created_at DESC").Find(&gifts).Error
	return gifts, err
}

func (g *giftRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Gift, error) {
	return findOne[db_models.Gift](ctx, g.db, "id = ?", id)
}

func (g *giftRepository) Create(ctx context.Context, gift *db_models.Gift) error {
	return g.db.WithContext(ctx).Create(gift).Error
}

func (g *giftRepository) Save(ctx context.Context, gift *db_models.Gift) error {
	return g.db.WithContext(ctx).Save(gift).Error
}

func (g *giftRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID[db_models.Gift](ctx, g.db, id)
}

func (g *giftRepository) ToggleReceived(ctx context.Context, id uuid.UUID) (*db_models.Gift, error) {
	return toggleColumn[db_models.Gift](ctx, g.db, id, "is_received")
}

func (g *giftRepository) MarkViewed(ctx context.Context, userID, giftID uuid.UUID) error {
	view := &db_models.GiftView{UserID: userID, GiftID: giftID}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "gift_id"}},
			DoNothing: true,
		}).
		Create(view).Error
}

func (g *giftRepository) ViewedGiftIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := g.db.WithContext(ctx).
		Model(&db_models.GiftView{}).
		Where("user_id = ?", userID).
		Pluck("gift_id", &ids).Error
	return ids, err
}

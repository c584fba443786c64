package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vdpcza/internal/models/db_models"
)

// RestaurantWithStats is a restaurant row joined with its review aggregate.
type RestaurantWithStats struct {
	db_models.Restaurant
	ReviewCount int     `gorm:"column:review_count"`
	AvgRating   float64 `gorm:"column:avg_rating"`
}

type RestaurantRepository interface {
	ListWithStats(ctx context.Context) ([]RestaurantWithStats, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Restaurant, error)
	Create(ctx context.Context, r *db_models.Restaurant) error
	Save(ctx context.Context, r *db_models.Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	ListReviews(ctx context.Context, restaurantID uuid.UUID) ([]db_models.RestaurantReview, error)
	CreateReview(ctx context.Context, review *db_models.RestaurantReview) error
	DeleteReview(ctx context.Context, id uuid.UUID) (bool, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) ListWithStats(ctx context.Context) ([]RestaurantWithStats, error) {
	var rows []RestaurantWithStats
	err := r.db.WithContext(ctx).
		Table("restaurants AS r").
		Select(`r.*,
			COUNT(rv.id) AS review_count,
			COALESCE(AVG(rv.rating), 0) AS avg_rating`).
		Joins("LEFT JOIN restaurant_reviews rv ON rv.restaurant_id = r.id AND rv.deleted_at IS NULL").
		Where("r.deleted_at IS NULL").
		Group("r.id").
		Order("r.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *restaurantRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Restaurant, error) {
	return findOne[db_models.Restaurant](ctx, r.db, "id = ?", id)
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *db_models.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) Save(ctx context.Context, restaurant *db_models.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

func (r *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID[db_models.Restaurant](ctx, r.db, id)
}

func (r *restaurantRepository) ListReviews(ctx context.Context, restaurantID uuid.UUID) ([]db_models.RestaurantReview, error) {
	var reviews []db_models.RestaurantReview
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *restaurantRepository) CreateReview(ctx context.Context, review *db_models.RestaurantReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *restaurantRepository) DeleteReview(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID[db_models.RestaurantReview](ctx, r.db, id)
}

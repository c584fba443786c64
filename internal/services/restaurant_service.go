package services

import (
	"context"
	"math"

	"github.com/google/uuid"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/models/response_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/utils"
)

type RestaurantServiceInterface interface {
	List(ctx context.Context) ([]response_models.RestaurantResponse, error)
	Create(ctx context.Context, req request_models.RestaurantRequest) (*db_models.Restaurant, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.RestaurantRequest) (*db_models.Restaurant, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ListReviews(ctx context.Context, restaurantID uuid.UUID) ([]db_models.RestaurantReview, error)
	AddReview(ctx context.Context, userID, restaurantID uuid.UUID, req request_models.CreateReviewRequest) (*db_models.RestaurantReview, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

type RestaurantService struct {
	restaurantRepo repositories.RestaurantRepository
}

func NewRestaurantService(restaurantRepo repositories.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo}
}

func (s *RestaurantService) List(ctx context.Context) ([]response_models.RestaurantResponse, error) {
	rows, err := s.restaurantRepo.ListWithStats(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	out := make([]response_models.RestaurantResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, response_models.RestaurantResponse{
			ID:          r.ID.String(),
			Name:        r.Name,
			Cuisine:     r.Cuisine,
			Location:    r.Location,
			ImageURL:    r.ImageURL,
			ReviewCount: r.ReviewCount,
			AvgRating:   math.Round(r.AvgRating*10) / 10,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

func (s *RestaurantService) Create(ctx context.Context, req request_models.RestaurantRequest) (*db_models.Restaurant, error) {
	r := &db_models.Restaurant{Name: req.Name, Cuisine: req.Cuisine, Location: req.Location, ImageURL: req.ImageURL}
	if err := s.restaurantRepo.Create(ctx, r); err != nil {
		return nil, dbError(err)
	}
	return r, nil
}

func (s *RestaurantService) Update(ctx context.Context, id uuid.UUID, req request_models.RestaurantRequest) (*db_models.Restaurant, error) {
	r, err := s.restaurantRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if r == nil {
		return nil, utils.ErrRestaurantNotFound
	}
	r.Name = req.Name
	r.Cuisine = req.Cuisine
	r.Location = req.Location
	r.ImageURL = req.ImageURL
	if err := s.restaurantRepo.Save(ctx, r); err != nil {
		return nil, dbError(err)
	}
	return r, nil
}

func (s *RestaurantService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.restaurantRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !ok {
		return utils.ErrRestaurantNotFound
	}
	return nil
}

func (s *RestaurantService) ListReviews(ctx context.Context, restaurantID uuid.UUID) ([]db_models.RestaurantReview, error) {
	reviews, err := s.restaurantRepo.ListReviews(ctx, restaurantID)
	if err != nil {
		return nil, dbError(err)
	}
	return reviews, nil
}

func (s *RestaurantService) AddReview(ctx context.Context, userID, restaurantID uuid.UUID, req request_models.CreateReviewRequest) (*db_models.RestaurantReview, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.ErrInvalidRating
	}
	r, err := s.restaurantRepo.FindById(ctx, restaurantID)
	if err != nil {
		return nil, dbError(err)
	}
	if r == nil {
		return nil, utils.ErrRestaurantNotFound
	}

	review := &db_models.RestaurantReview{
		RestaurantID: restaurantID,
		UserID:       &userID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := s.restaurantRepo.CreateReview(ctx, review); err != nil {
		return nil, dbError(err)
	}
	return review, nil
}

func (s *RestaurantService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	ok, err := s.restaurantRepo.DeleteReview(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !ok {
		return utils.ErrReviewNotFound
	}
	return nil
}

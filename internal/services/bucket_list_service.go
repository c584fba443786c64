package services

import (
	"context"

	"github.com/google/uuid"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/utils"
)

type BucketListServiceInterface interface {
	List(ctx context.Context) ([]db_models.BucketListItem, error)
	Add(ctx context.Context, req request_models.CreateBucketItemRequest) (*db_models.BucketListItem, error)
	Toggle(ctx context.Context, id uuid.UUID) (*db_models.BucketListItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BucketListService struct {
	repo repositories.BucketListRepository
}

func NewBucketListService(repo repositories.BucketListRepository) *BucketListService {
	return &BucketListService{repo: repo}
}

func (s *BucketListService) List(ctx context.Context) ([]db_models.BucketListItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return items, nil
}

func (s *BucketListService) Add(ctx context.Context, req request_models.CreateBucketItemRequest) (*db_models.BucketListItem, error) {
	item := &db_models.BucketListItem{Title: req.Title, Description: req.Description}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, dbError(err)
	}
	return item, nil
}

func (s *BucketListService) Toggle(ctx context.Context, id uuid.UUID) (*db_models.BucketListItem, error) {
	item, err := s.repo.ToggleCompleted(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if item == nil {
		return nil, utils.ErrBucketItemNotFound
	}
	return item, nil
}

func (s *BucketListService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !ok {
		return utils.ErrBucketItemNotFound
	}
	return nil
}

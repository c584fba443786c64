package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/models/response_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/utils"
)

type CapsuleServiceInterface interface {
	List(ctx context.Context) ([]response_models.CapsuleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*response_models.CapsuleResponse, error)
	Create(ctx context.Context, req request_models.CreateCapsuleRequest) (*response_models.CapsuleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CapsuleService struct {
	capsuleRepo repositories.CapsuleRepository
	loc         *time.Location
	now         func() time.Time
}

func NewCapsuleService(capsuleRepo repositories.CapsuleRepository, loc *time.Location) *CapsuleService {
	return &CapsuleService{capsuleRepo: capsuleRepo, loc: loc, now: time.Now}
}

func (s *CapsuleService) toResponse(c *db_models.Capsule, now time.Time) response_models.CapsuleResponse {
	resp := response_models.CapsuleResponse{
		ID:         c.ID.String(),
		Title:      c.Title,
		UnlockDate: utils.FormatRFC3339(c.UnlockDate, s.loc),
		Locked:     c.LockedAt(now),
	}
	if resp.Locked {
		resp.Remaining = utils.Remaining(now, c.UnlockDate)
	} else {
		resp.Content = c.Content
	}
	return resp
}

func (s *CapsuleService) List(ctx context.Context) ([]response_models.CapsuleResponse, error) {
	capsules, err := s.capsuleRepo.List(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	now := s.now()
	out := make([]response_models.CapsuleResponse, 0, len(capsules))
	for i := range capsules {
		out = append(out, s.toResponse(&capsules[i], now))
	}
	return out, nil
}

func (s *CapsuleService) Get(ctx context.Context, id uuid.UUID) (*response_models.CapsuleResponse, error) {
	capsule, err := s.capsuleRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if capsule == nil {
		return nil, utils.ErrCapsuleNotFound
	}
	if capsule.LockedAt(s.now()) {
		return nil, utils.ErrCapsuleLocked
	}
	resp := s.toResponse(capsule, s.now())
	return &resp, nil
}

func (s *CapsuleService) Create(ctx context.Context, req request_models.CreateCapsuleRequest) (*response_models.CapsuleResponse, error) {
	unlock, err := utils.ParseDate(req.UnlockDate, s.loc)
	if err != nil {
		return nil, err
	}
	capsule := &db_models.Capsule{Title: req.Title, Content: req.Content, UnlockDate: unlock}
	if err := s.capsuleRepo.Create(ctx, capsule); err != nil {
		return nil, dbError(err)
	}
	resp := s.toResponse(capsule, s.now())
	return &resp, nil
}

func (s *CapsuleService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.capsuleRepo.Delete(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !ok {
		return utils.ErrCapsuleNotFound
	}
	return nil
}

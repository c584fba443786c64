package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/models/response_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/storage"
	"vdpcza/pkg/utils"
)

type ProfileServiceInterface interface {
	GetMe(ctx context.Context, session *utils.Session) (*response_models.ProfileResponse, error)
	UpdateMe(ctx context.Context, session *utils.Session, req request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
	UploadAvatar(ctx context.Context, session *utils.Session, file request_models.UploadFile) (*response_models.ProfileResponse, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
	store       storage.ObjectStorage
	maxBytes    int64
}

func NewProfileService(profileRepo repositories.ProfileRepository, store storage.ObjectStorage, maxBytes int64) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, store: store, maxBytes: maxBytes}
}

func (s *ProfileService) load(ctx context.Context, id uuid.UUID, email string) (*response_models.ProfileResponse, error) {
	p, err := s.profileRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if p == nil {
		return nil, utils.ErrProfileNotFound
	}
	return &response_models.ProfileResponse{
		ID:          p.ID.String(),
		Email:       email,
		FullName:    p.FullName,
		AvatarURL:   p.AvatarURL,
		Bio:         p.Bio,
		Role:        p.Role,
		DisplayName: utils.DisplayNameFor(p.FullName, email),
	}, nil
}

func (s *ProfileService) GetMe(ctx context.Context, session *utils.Session) (*response_models.ProfileResponse, error) {
	return s.load(ctx, session.UserID, session.Email)
}

func (s *ProfileService) UpdateMe(ctx context.Context, session *utils.Session, req request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if len(fields) > 0 {
		if err := s.profileRepo.UpdateFields(ctx, session.UserID, fields); err != nil {
			return nil, dbError(err)
		}
	}
	return s.load(ctx, session.UserID, session.Email)
}

func (s *ProfileService) UploadAvatar(ctx context.Context, session *utils.Session, file request_models.UploadFile) (*response_models.ProfileResponse, error) {
	if err := validateImage(file, s.maxBytes); err != nil {
		return nil, err
	}

	key := storage.ObjectKey("avatars", session.UserID.String(), file.Filename)
	if err := s.store.Upload(ctx, key, file.Body, file.Size, file.ContentType); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}

	if err := s.profileRepo.UpdateFields(ctx, session.UserID, map[string]interface{}{"avatar_url": s.store.PublicURL(key)}); err != nil {
		return nil, dbError(err)
	}
	return s.load(ctx, session.UserID, session.Email)
}

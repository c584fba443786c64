package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/repositories"
	"vdpcza/pkg/storage"
	"vdpcza/pkg/utils"
)

type MemoryServiceInterface interface {
	ListAlbums(ctx context.Context) ([]db_models.Album, error)
	CreateAlbum(ctx context.Context, req request_models.CreateAlbumRequest) (*db_models.Album, error)
	ListMemories(ctx context.Context, albumID *uuid.UUID) ([]db_models.Memory, error)
	Upload(ctx context.Context, userID uuid.UUID, req request_models.UploadMemoryRequest, file request_models.UploadFile) (*db_models.Memory, error)
}

type MemoryService struct {
	memoryRepo repositories.MemoryRepository
	store      storage.ObjectStorage
	maxBytes   int64
	loc        *time.Location
	log        *zap.Logger
	now        func() time.Time
}

func NewMemoryService(
	memoryRepo repositories.MemoryRepository,
	store storage.ObjectStorage,
	maxBytes int64,
	loc *time.Location,
	log *zap.Logger,
) *MemoryService {
	return &MemoryService{
		memoryRepo: memoryRepo,
		store:      store,
		maxBytes:   maxBytes,
		loc:        loc,
		log:        log.Named("memories"),
		now:        time.Now,
	}
}

func (s *MemoryService) ListAlbums(ctx context.Context) ([]db_models.Album, error) {
	albums, err := s.memoryRepo.ListAlbums(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	return albums, nil
}

func (s *MemoryService) CreateAlbum(ctx context.Context, req request_models.CreateAlbumRequest) (*db_models.Album, error) {
	album := &db_models.Album{Name: req.Name, CoverURL: req.CoverURL}
	if err := s.memoryRepo.CreateAlbum(ctx, album); err != nil {
		return nil, dbError(err)
	}
	return album, nil
}

func (s *MemoryService) ListMemories(ctx context.Context, albumID *uuid.UUID) ([]db_models.Memory, error) {
	memories, err := s.memoryRepo.ListMemories(ctx, albumID)
	if err != nil {
		return nil, dbError(err)
	}
	return memories, nil
}

func validateImage(file request_models.UploadFile, maxBytes int64) error {
	if file.Body == nil || file.Size == 0 {
		return fmt.Errorf("%w: empty file", utils.ErrInvalidInput)
	}
	if maxBytes > 0 && file.Size > maxBytes {
		return fmt.Errorf("%w: file larger than %d bytes", utils.ErrInvalidInput, maxBytes)
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return fmt.Errorf("%w: only images can be uploaded", utils.ErrInvalidInput)
	}
	return nil
}

// Upload stores the image and then records it. A failed insert leaves the
// object behind; nothing is cleaned up.
func (s *MemoryService) Upload(ctx context.Context, userID uuid.UUID, req request_models.UploadMemoryRequest, file request_models.UploadFile) (*db_models.Memory, error) {
	if err := validateImage(file, s.maxBytes); err != nil {
		return nil, err
	}

	date := s.now().In(s.loc)
	if req.Date != "" {
		d, err := utils.ParseDate(req.Date, s.loc)
		if err != nil {
			return nil, err
		}
		date = d
	}

	var albumID *uuid.UUID
	if req.AlbumID != "" {
		id, err := uuid.Parse(req.AlbumID)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		album, err := s.memoryRepo.FindAlbumById(ctx, id)
		if err != nil {
			return nil, dbError(err)
		}
		if album == nil {
			return nil, utils.ErrAlbumNotFound
		}
		albumID = &id
	}

	key := storage.ObjectKey("memories", "", file.Filename)
	if err := s.store.Upload(ctx, key, file.Body, file.Size, file.ContentType); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUploadFailed, err)
	}

	memory := &db_models.Memory{
		ImageURL:    s.store.PublicURL(key),
		StorageKey:  key,
		Date:        date,
		Description: req.Description,
		AlbumID:     albumID,
		UploadedBy:  &userID,
	}
	if err := s.memoryRepo.CreateMemory(ctx, memory); err != nil {
		s.log.Warn("memory row not saved after upload", zap.String("key", key), zap.Error(err))
		return nil, dbError(err)
	}
	return memory, nil
}

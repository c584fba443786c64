package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vdpcza/internal/models/db_models"
)

type MemoryRepository interface {
	ListAlbums(ctx context.Context) ([]db_models.Album, error)
	FindAlbumById(ctx context.Context, id uuid.UUID) (*db_models.Album, error)
	CreateAlbum(ctx context.Context, album *db_models.Album) error
	// ListMemories filters by album when albumID is non-nil.
	ListMemories(ctx context.Context, albumID *uuid.UUID) ([]db_models.Memory, error)
	CreateMemory(ctx context.Context, memory *db_models.Memory) error
	DeleteMemory(ctx context.Context, id uuid.UUID) (bool, error)
}

type memoryRepository struct {
	db *gorm.DB
}

func NewMemoryRepository(db *gorm.DB) MemoryRepository {
	return &memoryRepository{db: db}
}

func (m *memoryRepository) ListAlbums(ctx context.Context) ([]db_models.Album, error) {
	var albums []db_models.Album
	err := m.db.WithContext(ctx).Order("created_at DESC").Find(&albums).Error
	return albums, err
}

func (m *memoryRepository) FindAlbumById(ctx context.Context, id uuid.UUID) (*db_models.Album, error) {
	return findOne[db_models.Album](ctx, m.db, "id = ?", id)
}

func (m *memoryRepository) CreateAlbum(ctx context.Context, album *db_models.Album) error {
	return m.db.WithContext(ctx).Create(album).Error
}

func (m *memoryRepository) ListMemories(ctx context.Context, albumID *uuid.UUID) ([]db_models.Memory, error) {
	var memories []db_models.Memory
	q := m.db.WithContext(ctx)
	if albumID != nil {
		q = q.Where("album_id = ?", *albumID)
	}
	err := q.Order("date DESC").Order("created_at DESC").Find(&memories).Error
	return memories, err
}

func (m *memoryRepository) CreateMemory(ctx context.Context, memory *db_models.Memory) error {
	return m.db.WithContext(ctx).Create(memory).Error
}

func (m *memoryRepository) DeleteMemory(ctx context.Context, id uuid.UUID) (bool, error) {
	return deleteByID[db_models.Memory](ctx, m.db, id)
}

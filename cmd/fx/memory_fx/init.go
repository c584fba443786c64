package memory_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"vdpcza/internal/config"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
	"vdpcza/pkg/storage"
)

var Module = fx.Provide(
	provideMemoryRepo, provideMemoryService)

func provideMemoryRepo(db *gorm.DB) repositories.MemoryRepository {
	return repositories.NewMemoryRepository(db)
}

func provideMemoryService(
	repo repositories.MemoryRepository,
	store storage.ObjectStorage,
	cfg *config.Config,
	loc *time.Location,
	log *zap.Logger,
) services.MemoryServiceInterface {
	return services.NewMemoryService(repo, store, cfg.Storage.MaxUploadMB<<20, loc, log)
}

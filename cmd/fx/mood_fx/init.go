package mood_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
	"vdpcza/pkg/realtime"
)

var Module = fx.Provide(
	provideMoodRepo, services.NewMoodBoard, provideMoodService)

func provideMoodRepo(db *gorm.DB) repositories.MoodRepository {
	return repositories.NewMoodRepository(db)
}

func provideMoodService(repo repositories.MoodRepository, board *services.MoodBoard, publisher realtime.Publisher, log *zap.Logger) services.MoodServiceInterface {
	return services.NewMoodService(repo, board, publisher, log)
}

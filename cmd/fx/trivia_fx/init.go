package trivia_fx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
)

var Module = fx.Provide(
	provideTriviaRepo, provideTriviaService)

func provideTriviaRepo(db *gorm.DB) repositories.TriviaRepository {
	return repositories.NewTriviaRepository(db)
}

func provideTriviaService(repo repositories.TriviaRepository, loc *time.Location) services.TriviaServiceInterface {
	return services.NewTriviaService(repo, loc)
}

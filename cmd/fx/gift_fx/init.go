package gift_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
	"vdpcza/pkg/realtime"
)

var Module = fx.Provide(
	provideGiftRepo, provideGiftService)

func provideGiftRepo(db *gorm.DB) repositories.GiftRepository {
	return repositories.NewGiftRepository(db)
}

func provideGiftService(repo repositories.GiftRepository, publisher realtime.Publisher) services.GiftServiceInterface {
	return services.NewGiftService(repo, publisher)
}

package capsule_fx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
)

var Module = fx.Provide(
	provideCapsuleRepo, provideCapsuleService)

func provideCapsuleRepo(db *gorm.DB) repositories.CapsuleRepository {
	return repositories.NewCapsuleRepository(db)
}

func provideCapsuleService(repo repositories.CapsuleRepository, loc *time.Location) services.CapsuleServiceInterface {
	return services.NewCapsuleService(repo, loc)
}

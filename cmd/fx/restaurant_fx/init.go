package restaurant_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
)

var Module = fx.Provide(
	provideRestaurantRepo, provideRestaurantService)

func provideRestaurantRepo(db *gorm.DB) repositories.RestaurantRepository {
	return repositories.NewRestaurantRepository(db)
}

func provideRestaurantService(repo repositories.RestaurantRepository) services.RestaurantServiceInterface {
	return services.NewRestaurantService(repo)
}

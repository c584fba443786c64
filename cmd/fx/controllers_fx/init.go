package controllers_fx

import (
	"strings"

	"go.uber.org/fx"
	"vdpcza/internal/api/controllers"
	"vdpcza/internal/config"
	"vdpcza/internal/services"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(provideGateController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewRealtimeController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewMemoryController),
	fx.Provide(controllers.NewCapsuleController),
	fx.Provide(controllers.NewGiftController),
	fx.Provide(controllers.NewMoodController),
	fx.Provide(controllers.NewRestaurantController),
	fx.Provide(controllers.NewBucketListController),
	fx.Provide(controllers.NewQuoteController),
	fx.Provide(controllers.NewTriviaController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewChatController))

func provideGateController(cfg *config.Config, gate services.GateServiceInterface) *controllers.GateController {
	return controllers.NewGateController(gate, strings.HasPrefix(cfg.App.BaseURL, "https://"))
}

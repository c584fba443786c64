package profile_fx

import (
	"go.uber.org/fx"
	"vdpcza/internal/config"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
	"vdpcza/pkg/storage"
)

// The profile repository itself comes from auth_fx.
var Module = fx.Provide(provideProfileService)

func provideProfileService(repo repositories.ProfileRepository, store storage.ObjectStorage, cfg *config.Config) services.ProfileServiceInterface {
	return services.NewProfileService(repo, store, cfg.Storage.MaxUploadMB<<20)
}

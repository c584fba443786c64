package auth_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"vdpcza/internal/config"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
	mem "vdpcza/pkg/memcache"
	"vdpcza/pkg/middleware"
	"vdpcza/pkg/utils"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideProfileRepo,
	provideTokenIssuer,
	fx.Annotate(
		provideAuthService,
		fx.As(new(services.AuthServiceInterface)),
		fx.As(new(middleware.SessionAuthenticator)),
	),
	provideGateService,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideAuthService(
	cfg *config.Config,
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	mailService services.IMailService,
	tokens mem.TokenStore,
	issuer *utils.TokenIssuer,
	log *zap.Logger,
) *services.AuthService {
	return services.NewAuthService(accountRepo, profileRepo, mailService, tokens, issuer, services.AuthSettings{
		Whitelist:  cfg.Auth.Whitelist(),
		AdminEmail: cfg.Auth.AdminEmail,
		OTPTTL:     cfg.Auth.OTPTTL,
		AppBaseURL: cfg.App.BaseURL,
	}, log)
}

func provideGateService(cfg *config.Config) services.GateServiceInterface {
	return services.NewGateService(cfg.App.KeyDate)
}

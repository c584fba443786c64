package dashboard_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"vdpcza/cmd/fx/config_fx"
	"vdpcza/internal/config"
	"vdpcza/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideNavService, providePlaylistService,
)

func provideDashboardService(
	quotes services.QuoteServiceInterface,
	trivia services.TriviaServiceInterface,
	moods services.MoodServiceInterface,
	keyDate config_fx.KeyDate,
	log *zap.Logger,
) services.DashboardServiceInterface {
	return services.NewDashboardService(quotes, trivia, moods, time.Time(keyDate), log)
}

func provideNavService(gifts services.GiftServiceInterface, log *zap.Logger) services.NavServiceInterface {
	return services.NewNavService(gifts, log)
}

func providePlaylistService(cfg *config.Config) services.PlaylistServiceInterface {
	return services.NewPlaylistService(cfg.Playlist.SpotifyPlaylistID, cfg.Playlist.YouTubePlaylistID)
}

package config_fx

import (
	"time"

	"go.uber.org/fx"
	"vdpcza/internal/config"
	"vdpcza/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLocation,
	provideKeyDate,
)

func provideLocation(cfg *config.Config) *time.Location {
	return cfg.App.Location()
}

// KeyDate is the anniversary the counter runs from.
type KeyDate time.Time

func provideKeyDate(cfg *config.Config, loc *time.Location) (KeyDate, error) {
	t, err := utils.ParseKeyDate(cfg.App.KeyDate, loc)
	return KeyDate(t), err
}

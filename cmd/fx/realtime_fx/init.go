package realtime_fx

import (
	"go.uber.org/fx"
	"vdpcza/internal/api/controllers"
	"vdpcza/pkg/realtime"
)

const subscriberBuffer = 32

var Module = fx.Provide(
	fx.Annotate(
		provideHub,
		fx.As(new(realtime.Publisher)),
		fx.As(new(controllers.Subscriber)),
	),
)

func provideHub() *realtime.Hub {
	return realtime.NewHub(subscriberBuffer)
}

package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"vdpcza/cmd/fx/auth_fx"
	"vdpcza/cmd/fx/bucket_list_fx"
	"vdpcza/cmd/fx/capsule_fx"
	"vdpcza/cmd/fx/chat_fx"
	"vdpcza/cmd/fx/config_fx"
	"vdpcza/cmd/fx/controllers_fx"
	"vdpcza/cmd/fx/dashboard_fx"
	"vdpcza/cmd/fx/db_fx"
	"vdpcza/cmd/fx/gift_fx"
	"vdpcza/cmd/fx/logger_fx"
	"vdpcza/cmd/fx/mail_fx"
	"vdpcza/cmd/fx/memcache_fx"
	"vdpcza/cmd/fx/memory_fx"
	"vdpcza/cmd/fx/mood_fx"
	"vdpcza/cmd/fx/profile_fx"
	"vdpcza/cmd/fx/quote_fx"
	"vdpcza/cmd/fx/realtime_fx"
	"vdpcza/cmd/fx/restaurant_fx"
	"vdpcza/cmd/fx/storage_fx"
	"vdpcza/cmd/fx/trip_fx"
	"vdpcza/cmd/fx/trivia_fx"
	"vdpcza/internal/api"
	"vdpcza/internal/config"
	"vdpcza/pkg/middleware"
)

//	@title			vdpcza API
//	@version		1.0
//	@description	Private API for two people: memories, trips, gifts and moods.
//	@BasePath		/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	fx.New(options()).Run()
}

func options() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		realtime_fx.Module,
		storage_fx.Module,
		mail_fx.Module,
		auth_fx.Module,
		dashboard_fx.Module,
		trip_fx.Module,
		memory_fx.Module,
		profile_fx.Module,
		gift_fx.Module,
		mood_fx.Module,
		capsule_fx.Module,
		restaurant_fx.Module,
		bucket_list_fx.Module,
		quote_fx.Module,
		trivia_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	auth middleware.SessionAuthenticator,
	ctl api.Controllers,
) *gin.Engine {
	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger(log))
	r.Use(middleware.ZapRecovery(log))
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	api.RegisterRoutes(r, auth, ctl)

	return r
}

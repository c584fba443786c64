package chat_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"vdpcza/internal/config"
	"vdpcza/internal/services"
	"vdpcza/pkg/ai"
)

var Module = fx.Provide(provideChatService)

func provideChatService(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (services.ChatServiceInterface, error) {
	client, err := ai.NewChatClient(context.Background(), cfg.AI.Provider, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		return nil, err
	}
	if client == nil {
		log.Info("no chat provider configured, using canned replies")
		return services.NewChatService(nil, cfg.AI.Timeout, log), nil
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	log.Info("chat provider ready", zap.String("provider", client.Name()))
	return services.NewChatService(client, cfg.AI.Timeout, log), nil
}

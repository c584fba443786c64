package mail_fx

import (
	"go.uber.org/fx"
	"vdpcza/internal/config"
	"vdpcza/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) (services.IMailService, error) {
	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		FromName:   cfg.SMTP.FromName,
		UseSSL:     cfg.SMTP.UseSSL,
		RequireTLS: cfg.SMTP.RequireTLS,
		AppName:    cfg.App.Name,
		OTPTTL:     cfg.Auth.OTPTTL,
	})
}

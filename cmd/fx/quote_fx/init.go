package quote_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"vdpcza/internal/repositories"
	"vdpcza/internal/services"
)

var Module = fx.Provide(
	provideQuoteRepo, provideQuoteService)

func provideQuoteRepo(db *gorm.DB) repositories.QuoteRepository {
	return repositories.NewQuoteRepository(db)
}

func provideQuoteService(repo repositories.QuoteRepository) services.QuoteServiceInterface {
	return services.NewQuoteService(repo)
}

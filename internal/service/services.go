package service

import (
	"github.com/avolkov/inkwell/internal/config"
	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/internal/store"
)

// Services bundles the business-logic layer handed to the transport.
type Services struct {
	AuthService    AuthService
	ArticleService ArticleService
}

// NewServices constructs all services on top of the given storages.
func NewServices(storages *store.Storages, cfg config.Auth, log *logger.Logger) *Services {
	log.Info().Msg("creating new services...")

	return &Services{
		AuthService:    NewAuthService(storages.Accounts, storages.Sessions, cfg, log),
		ArticleService: NewArticleService(storages.Articles, storages.Accounts, log),
	}
}

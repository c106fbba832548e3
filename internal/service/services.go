package service

import (
	"github.com/bloglist/bloglist/internal/config"
	"github.com/bloglist/bloglist/internal/logger"
	"github.com/bloglist/bloglist/internal/store"
)

type Services struct {
	AuthService AuthService
	BlogService BlogService
}

func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, cfg.Auth, logger),
		BlogService: NewBlogService(repos.BlogRepository, repos.UserRepository, logger),
	}
}

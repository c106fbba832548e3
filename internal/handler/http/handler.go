package http

import (
	"context"

	"github.com/bloglist/bloglist/internal/logger"
	"github.com/bloglist/bloglist/internal/service"
)

// Pinger reports whether the persistence backend is reachable. Satisfied
// by *sql.DB and by the store's DB wrapper.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	pinger   Pinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, pinger Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		pinger:   pinger,
		logger:   logger,
	}
}

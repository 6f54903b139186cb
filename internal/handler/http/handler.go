package http

import (
	"github.com/muzaparoff/rest-api-exam/internal/config"
	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/service"
)

type Handler struct {
	services *service.Services

	// corsAllowedOrigins is the origin whitelist handed to the CORS
	// middleware. Empty means cross-origin requests are not allowed.
	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		logger:             logger,
	}
}

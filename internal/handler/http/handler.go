package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/storegate/gateway/internal/logger"
	"github.com/storegate/gateway/internal/service"
)

type Handler struct {
	services *service.Services
	validate *validator.Validate

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		validate: newValidator(),
		logger:   logger,
	}
}

package http

import (
	"github.com/mindpad-app/mindpad/internal/feed"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/service"
)

type Handler struct {
	services *service.Services
	hub      *feed.Hub

	logger *logger.Logger
}

func NewHandler(services *service.Services, hub *feed.Hub, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      hub,
		logger:   logger,
	}
}

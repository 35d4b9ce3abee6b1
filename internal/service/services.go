package service

import (
	"github.com/mindpad-app/mindpad/internal/config"
	"github.com/mindpad-app/mindpad/internal/gateway"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/store"
)

type Services struct {
	AuthService   AuthService
	NoteService   NoteService
	AssistService AssistService
}

func NewServices(storages *store.Storages, chatClient gateway.ChatClient, publisher NoteEventPublisher, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		NoteService:   NewNoteService(storages.NoteRepository, storages.HistoryRepository, publisher, logger),
		AssistService: NewAssistService(chatClient, storages.HistoryRepository, cfg.AI, logger),
	}
}

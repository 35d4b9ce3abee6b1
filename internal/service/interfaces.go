package service

import (
	"context"

	"github.com/mindpad-app/mindpad/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, userID int64) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, search string) ([]models.Note, error)
	GetNote(ctx context.Context, noteID string, userID int64) (models.Note, error)
	SaveNote(ctx context.Context, noteID string, userID int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string, userID int64) error
	ListHistory(ctx context.Context, noteID string, userID int64) ([]models.HistoryEntry, error)
}

type AssistService interface {
	Assist(ctx context.Context, userID int64, request models.AssistRequest) (models.AssistResponse, error)
}

// NoteEventPublisher delivers a note change event to every live session of
// the given user. Implementations must not block on slow consumers.
type NoteEventPublisher interface {
	Publish(userID int64, event models.NoteEvent)
}

package store

import (
	"context"

	"github.com/mindpad-app/mindpad/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// NoteRepository persists notes. Every method is scoped to the owning user:
// a note belonging to another user behaves as if it did not exist.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, search string) ([]models.Note, error)
	GetNote(ctx context.Context, noteID string, userID int64) (models.Note, error)
	UpdateNote(ctx context.Context, noteID string, userID int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string, userID int64) error
}

// HistoryRepository persists AI interaction records attached to notes.
type HistoryRepository interface {
	SaveHistory(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error)
	ListHistory(ctx context.Context, noteID string, userID int64) ([]models.HistoryEntry, error)
}

// LocalSessionStore caches the authenticated session on the client machine so
// a restarted TUI can resume without asking for credentials again.
type LocalSessionStore interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	LoadSession(ctx context.Context) (models.LocalSession, error)
	ClearSession(ctx context.Context) error
}

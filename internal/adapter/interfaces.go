// Package adapter provides transport-layer abstractions for communicating with
// the mindpad server.
//
// The primary abstraction is [ServerAdapter], which decouples the TUI and the
// client application layer from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) plus a websocket
// subscription for the realtime note feed.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mindpad-app/mindpad/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the mindpad
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login, or when resuming a cached session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account from user.Email and user.Password. On
	// success it stores the returned bearer token via SetToken and returns
	// the user with UserID populated from the token claims.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with user.Email and user.Password. On success it
	// stores the returned bearer token via SetToken and returns the user with
	// UserID populated from the token claims.
	Login(ctx context.Context, user models.User) (models.User, error)

	// ListNotes fetches the authenticated user's notes, most recently updated
	// first. A non-empty search narrows the list to notes whose title or
	// content contains the term (case-insensitive).
	ListNotes(ctx context.Context, search string) ([]models.Note, error)

	// CreateNote asks the server to create a fresh note with the default
	// title and empty content, and returns the stored row.
	CreateNote(ctx context.Context) (models.Note, error)

	// GetNote fetches a single note by id. Returns [ErrNotFound] (wrapped) if
	// the note does not exist or belongs to another user.
	GetNote(ctx context.Context, noteID string) (models.Note, error)

	// UpdateNote saves new title and content for the note and returns the
	// stored row with the bumped update timestamp.
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes the note and its AI history.
	DeleteNote(ctx context.Context, noteID string) error

	// NoteHistory fetches the AI interaction history of a note, newest first.
	NoteHistory(ctx context.Context, noteID string) ([]models.HistoryEntry, error)

	// Assist invokes one AI action on the server-side proxy. Returns
	// [ErrRateLimited] or [ErrCreditsExhausted] (wrapped) when the upstream
	// gateway reports those conditions.
	Assist(ctx context.Context, request models.AssistRequest) (models.AssistResponse, error)

	// SubscribeEvents opens the realtime note feed for the authenticated
	// user. Events arrive on the returned channel until ctx is cancelled or
	// the connection drops, after which the channel is closed. Callers that
	// need the feed back must resubscribe.
	SubscribeEvents(ctx context.Context) (<-chan models.NoteEvent, error)
}

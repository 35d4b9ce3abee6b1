package service

import (
	"context"
	"fmt"

	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/store"
	"github.com/mindpad-app/mindpad/internal/utils"
	"github.com/mindpad-app/mindpad/models"
)

// noteService implements NoteService over the note and history repositories.
// Every successful mutation publishes exactly one change event for the owning
// user so other live sessions refresh their lists.
type noteService struct {
	noteRepository    store.NoteRepository
	historyRepository store.HistoryRepository
	publisher         NoteEventPublisher
	uuidGenerator     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given repositories and
// event publisher.
func NewNoteService(noteRepository store.NoteRepository, historyRepository store.HistoryRepository, publisher NoteEventPublisher, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository:    noteRepository,
		historyRepository: historyRepository,
		publisher:         publisher,
		uuidGenerator:     utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// CreateNote persists a new blank note owned by userID. The note starts with
// the default title and empty content so the client can open it in the editor
// immediately.
func (n *noteService) CreateNote(ctx context.Context, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	note := models.Note{
		ID:     n.uuidGenerator.Generate(),
		UserID: userID,
		Title:  models.DefaultNoteTitle,
	}

	saved, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	n.publisher.Publish(userID, models.NoteEvent{Type: models.NoteInserted, Note: saved})

	return saved, nil
}

// ListNotes returns the user's notes, most recently updated first, optionally
// narrowed by a case-insensitive search over titles and contents.
func (n *noteService) ListNotes(ctx context.Context, userID int64, search string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := n.noteRepository.ListNotes(ctx, userID, search)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note listing ended with error")
		return nil, fmt.Errorf("note listing ended with error: %w", err)
	}

	return notes, nil
}

// GetNote returns one note owned by userID.
func (n *noteService) GetNote(ctx context.Context, noteID string, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	if noteID == "" {
		return models.Note{}, ErrNoteIDRequired
	}

	note, err := n.noteRepository.GetNote(ctx, noteID, userID)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Int64("user_id", userID).Msg("note lookup ended with error")
		return models.Note{}, fmt.Errorf("note lookup ended with error: %w", err)
	}

	return note, nil
}

// SaveNote overwrites the note's title and content. An empty title is
// replaced with the default title before persistence, so a stored note never
// has an empty title. Saves are whole-value: the last save wins.
func (n *noteService) SaveNote(ctx context.Context, noteID string, userID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if noteID == "" {
		return models.Note{}, ErrNoteIDRequired
	}
	if update.Title == "" {
		update.Title = models.DefaultNoteTitle
	}

	note, err := n.noteRepository.UpdateNote(ctx, noteID, userID, update)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Int64("user_id", userID).Msg("note save ended with error")
		return models.Note{}, fmt.Errorf("note save ended with error: %w", err)
	}

	n.publisher.Publish(userID, models.NoteEvent{Type: models.NoteUpdated, Note: note})

	return note, nil
}

// DeleteNote removes the note together with its AI history (cascaded by the
// schema). A delete event carrying only the note id is published on success.
func (n *noteService) DeleteNote(ctx context.Context, noteID string, userID int64) error {
	log := logger.FromContext(ctx)

	if noteID == "" {
		return ErrNoteIDRequired
	}

	if err := n.noteRepository.DeleteNote(ctx, noteID, userID); err != nil {
		log.Err(err).Str("note_id", noteID).Int64("user_id", userID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	n.publisher.Publish(userID, models.NoteEvent{Type: models.NoteDeleted, Note: models.Note{ID: noteID, UserID: userID}})

	return nil
}

// ListHistory returns the AI interaction records of one note, newest first.
func (n *noteService) ListHistory(ctx context.Context, noteID string, userID int64) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	if noteID == "" {
		return nil, ErrNoteIDRequired
	}

	entries, err := n.historyRepository.ListHistory(ctx, noteID, userID)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Int64("user_id", userID).Msg("history listing ended with error")
		return nil, fmt.Errorf("history listing ended with error: %w", err)
	}

	return entries, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// Every query carries the owning user id in its WHERE clause so one user can
// never read or modify another user's notes.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns it with server-assigned
// timestamps. The note id is generated by the caller.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote, note.ID, note.UserID, note.Title, note.Content)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: row is nil")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var saved models.Note
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Title, &saved.Content, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotSaved
		}
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, err
	}

	return saved, nil
}

// ListNotes returns the user's notes ordered by most recently updated first.
// A non-empty search term narrows the result to notes whose title or content
// contains the term case-insensitively. No matches yields an empty slice,
// not an error.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64, search string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID, search)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error: building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error: executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error: scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error: iterating rows")
		return nil, errors.Join(ErrScanningRows, err)
	}

	return notes, nil
}

// GetNote retrieves a single note by id for the given user. A note that does
// not exist, or belongs to another user, maps to [ErrNoteNotFound].
func (r *noteRepository) GetNote(ctx context.Context, noteID string, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getNote, noteID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error: row is nil")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var note models.Note
	if err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error: scanning error")
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote overwrites the note's title and content, refreshes updated_at
// and returns the stored row. Updating a note that does not exist for the
// user maps to [ErrNoteNotFound].
func (r *noteRepository) UpdateNote(ctx context.Context, noteID string, userID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateNote, update.Title, update.Content, noteID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: row is nil")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var note models.Note
	if err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: scanning error")
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote removes the note and, via the schema's ON DELETE CASCADE, its AI
// history. Deleting a note that does not exist for the user maps to
// [ErrNoteNotFound].
func (r *noteRepository) DeleteNote(ctx context.Context, noteID string, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: reading affected rows")
		return err
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

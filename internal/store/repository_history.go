package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/models"
)

// historyRepository is the PostgreSQL-backed implementation of
// [HistoryRepository] over the "ai_history" table.
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating ai history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// SaveHistory persists one AI interaction record and returns it with
// server-assigned fields. A foreign key violation means the note vanished
// between the AI call and the insert and maps to [ErrNoteNotFound].
func (r *historyRepository) SaveHistory(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveHistory, entry.ID, entry.NoteID, entry.Prompt, entry.AIResponse)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*historyRepository.SaveHistory").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.HistoryEntry{}, ErrNoteNotFound
		default:
			return models.HistoryEntry{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.HistoryEntry
	if err := row.Scan(&saved.ID, &saved.NoteID, &saved.Prompt, &saved.AIResponse, &saved.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HistoryEntry{}, ErrHistoryNotSaved
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.HistoryEntry{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*historyRepository.SaveHistory").Msg("error: scanning error")
		return models.HistoryEntry{}, err
	}

	return saved, nil
}

// ListHistory returns the AI interaction records for a note, newest first.
// The join against "notes" enforces ownership: history of a note belonging to
// another user comes back empty.
func (r *historyRepository) ListHistory(ctx context.Context, noteID string, userID int64) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listHistory, noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.ListHistory").Msg("error: executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var entry models.HistoryEntry
		if err = rows.Scan(&entry.ID, &entry.NoteID, &entry.Prompt, &entry.AIResponse, &entry.CreatedAt); err != nil {
			log.Err(err).Str("func", "*historyRepository.ListHistory").Msg("error: scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*historyRepository.ListHistory").Msg("error: iterating rows")
		return nil, errors.Join(ErrScanningRows, err)
	}

	return entries, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/models"
)

// ErrLocalSessionNotFound is returned by [LocalSessionStore.LoadSession] when
// no cached session exists on this machine.
var ErrLocalSessionNotFound = errors.New("local session not found")

const (
	createSessionTable = `CREATE TABLE IF NOT EXISTS session (
		one         INTEGER PRIMARY KEY CHECK (one = 1),
		user_id     INTEGER NOT NULL,
		email       TEXT    NOT NULL,
		token       TEXT    NOT NULL,
		saved_at    TIMESTAMP NOT NULL
	);`

	upsertSession = `INSERT INTO session (one, user_id, email, token, saved_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (one) DO UPDATE SET
			user_id  = excluded.user_id,
			email    = excluded.email,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	selectSession = `SELECT user_id, email, token, saved_at FROM session WHERE one = 1;`

	deleteSession = `DELETE FROM session;`
)

// localSessionStore keeps a single cached login in the client's SQLite file.
// The table holds at most one row so SaveSession always overwrites.
type localSessionStore struct {
	logger *logger.Logger
	db     *DB
}

// NewLocalSessionStore prepares the session table and returns a
// [LocalSessionStore] over the given SQLite connection.
func NewLocalSessionStore(ctx context.Context, db *DB, log *logger.Logger) (LocalSessionStore, error) {
	if _, err := db.ExecContext(ctx, createSessionTable); err != nil {
		log.Err(err).Str("func", "NewLocalSessionStore").Msg("error creating session table")
		return nil, fmt.Errorf("error creating session table: %w", err)
	}

	return &localSessionStore{
		db:     db,
		logger: log,
	}, nil
}

func (s *localSessionStore) SaveSession(ctx context.Context, session models.LocalSession) error {
	_, err := s.db.ExecContext(ctx, upsertSession, session.UserID, session.Email, session.Token, session.SavedAt)
	if err != nil {
		s.logger.Err(err).Str("func", "*localSessionStore.SaveSession").Msg("error saving session")
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

func (s *localSessionStore) LoadSession(ctx context.Context) (models.LocalSession, error) {
	var session models.LocalSession

	row := s.db.QueryRowContext(ctx, selectSession)
	if err := row.Scan(&session.UserID, &session.Email, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LocalSession{}, ErrLocalSessionNotFound
		}
		s.logger.Err(err).Str("func", "*localSessionStore.LoadSession").Msg("error loading session")
		return models.LocalSession{}, err
	}

	return session, nil
}

func (s *localSessionStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteSession); err != nil {
		s.logger.Err(err).Str("func", "*localSessionStore.ClearSession").Msg("error clearing session")
		return fmt.Errorf("error clearing session: %w", err)
	}

	return nil
}

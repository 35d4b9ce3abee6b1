package store

import "github.com/mindpad-app/mindpad/internal/logger"

// Storages bundles all server-side repositories behind one constructor so the
// application wiring stays in a single place.
type Storages struct {
	UserRepository    UserRepository
	NoteRepository    NoteRepository
	HistoryRepository HistoryRepository
}

// NewStorages constructs every repository over the shared database
// connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		NoteRepository:    NewNoteRepository(db, log),
		HistoryRepository: NewHistoryRepository(db, log),
	}
}

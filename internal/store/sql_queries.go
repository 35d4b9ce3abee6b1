package store

import sq "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createNote = `INSERT INTO notes (id, user_id, title, content)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, title, content, created_at, updated_at;`

	getNote = `SELECT id, user_id, title, content, created_at, updated_at
    FROM notes
    WHERE id = $1 AND user_id = $2;`

	updateNote = `UPDATE notes
    SET title = $1, content = $2, updated_at = NOW()
    WHERE id = $3 AND user_id = $4
    RETURNING id, user_id, title, content, created_at, updated_at;`

	deleteNote = `DELETE FROM notes
    WHERE id = $1 AND user_id = $2;`

	saveHistory = `INSERT INTO ai_history (id, note_id, prompt, ai_response)
    VALUES ($1, $2, $3, $4)
    RETURNING id, note_id, prompt, ai_response, created_at;`

	listHistory = `SELECT h.id, h.note_id, h.prompt, h.ai_response, h.created_at
    FROM ai_history h
    JOIN notes n ON n.id = h.note_id
    WHERE h.note_id = $1 AND n.user_id = $2
    ORDER BY h.created_at DESC;`
)

// noteColumns is the canonical column order scanned into [models.Note].
var noteColumns = []string{"id", "user_id", "title", "content", "created_at", "updated_at"}

// buildListNotesQuery assembles the note listing SELECT for a user. When
// search is non-empty the result set is narrowed to notes whose title or
// content matches the term case-insensitively. Notes are always ordered by
// most recently updated first.
func buildListNotesQuery(userID int64, search string) (string, []any, error) {
	builder := sq.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar)

	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
		})
	}

	return builder.ToSql()
}

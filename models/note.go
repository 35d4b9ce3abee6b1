package models

import "time"

// DefaultNoteTitle is persisted whenever a note is created or saved with an
// empty title.
const DefaultNoteTitle = "Untitled"

// Note is a single text note owned by exactly one user.
//
// Only the owning user may read, modify, or delete a note; the scoping is
// enforced by every repository query, not by the model itself.
type Note struct {
	// ID is the opaque unique identifier of the note (UUID).
	ID string `json:"id"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id"`

	// Title is the note heading. Defaults to [DefaultNoteTitle] when empty.
	Title string `json:"title"`

	// Content is the note body. May be empty.
	Content string `json:"content"`

	// CreatedAt is the creation timestamp assigned by the store.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped by the store on every successful save.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate carries the editable fields of a note for a save request.
// Saves are whole-value (last writer wins); there is no field-level merging.
type NoteUpdate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

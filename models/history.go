package models

import "time"

// HistoryEntry is an immutable record of one AI invocation attached to a note.
//
// Entries are inserted exactly once after a successful gateway call and are
// never updated. They disappear only when the parent note is deleted (the
// cascade lives in the database schema).
type HistoryEntry struct {
	// ID is the opaque unique identifier of the entry (UUID).
	ID string `json:"id"`

	// NoteID references the note the response was generated from.
	NoteID string `json:"note_id"`

	// Prompt is the action name that produced the entry
	// (e.g. "summarize"); it doubles as the display label.
	Prompt string `json:"prompt"`

	// AIResponse is the generated text as returned by the gateway.
	AIResponse string `json:"ai_response"`

	// CreatedAt is the insertion timestamp assigned by the store.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the HistoryEntry model.
func (h HistoryEntry) TableName() string {
	return "ai_history"
}

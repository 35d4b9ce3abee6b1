package models

// NoteEventType classifies a row-level change on the notes table.
type NoteEventType string

const (
	NoteInserted NoteEventType = "INSERT"
	NoteUpdated  NoteEventType = "UPDATE"
	NoteDeleted  NoteEventType = "DELETE"
)

// NoteEvent is one message on the realtime change feed. Every note mutation
// produces exactly one event, delivered only to connections of the owning
// user.
//
// For INSERT and UPDATE the Note field carries the full row snapshot; for
// DELETE only Note.ID and Note.UserID are guaranteed to be populated.
type NoteEvent struct {
	Type NoteEventType `json:"type"`
	Note Note          `json:"note"`
}

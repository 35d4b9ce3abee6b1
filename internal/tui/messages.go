package tui

import "github.com/mindpad-app/mindpad/models"

// NavigateTo switches the active page in [RootModel]. An optional Payload is
// re-dispatched to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the authentication flow. Produced by both the login
// and the register page; [RootModel] quits the program on a nil Err.
type LoginResult struct {
	Err     error
	Session models.LocalSession
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteCreatedMsg struct {
	note models.Note
	err  error
}

// noteSavedMsg reports the outcome of one autosave. noteID and generation
// identify which pending edit the save covered.
type noteSavedMsg struct {
	noteID     string
	generation uint64
	note       models.Note
	err        error
}

type noteDeletedMsg struct {
	noteID string
	err    error
}

// autosaveTickMsg fires when the debounce window of one edit burst elapses.
// A tick whose generation no longer matches the editor state is stale and
// must be ignored.
type autosaveTickMsg struct {
	noteID     string
	generation uint64
}

type historyLoadedMsg struct {
	noteID  string
	entries []models.HistoryEntry
	err     error
}

type assistDoneMsg struct {
	noteID   string
	action   models.AssistAction
	response string
	err      error
}

// feedOpenedMsg delivers the live event channel after a successful
// subscription.
type feedOpenedMsg struct {
	events <-chan models.NoteEvent
	err    error
}

type feedEventMsg struct {
	event models.NoteEvent
}

// feedClosedMsg signals that the event channel was closed by the server or
// the network; the workspace schedules a resubscribe.
type feedClosedMsg struct{}

type retrySubscribeMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mindpad-app/mindpad/models"
)

func (m workspaceModel) cmdLoadNotes(search string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		notes, err := serverAdapter.ListNotes(ctx, search)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m workspaceModel) cmdCreateNote() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		note, err := serverAdapter.CreateNote(ctx)
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m workspaceModel) cmdSaveNote(noteID string, generation uint64) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	update := models.NoteUpdate{
		Title:   m.titleInput.Value(),
		Content: m.contentArea.Value(),
	}

	return func() tea.Msg {
		note, err := serverAdapter.UpdateNote(ctx, noteID, update)
		return noteSavedMsg{noteID: noteID, generation: generation, note: note, err: err}
	}
}

func (m workspaceModel) cmdDeleteNote(noteID string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		err := serverAdapter.DeleteNote(ctx, noteID)
		return noteDeletedMsg{noteID: noteID, err: err}
	}
}

func (m workspaceModel) cmdLoadHistory(noteID string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		entries, err := serverAdapter.NoteHistory(ctx, noteID)
		return historyLoadedMsg{noteID: noteID, entries: entries, err: err}
	}
}

// cmdAssist refetches the note before the AI call so the model always works
// on the stored content rather than whatever the editor buffer holds.
func (m workspaceModel) cmdAssist(noteID string, action models.AssistAction) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		note, err := serverAdapter.GetNote(ctx, noteID)
		if err != nil {
			return assistDoneMsg{noteID: noteID, action: action, err: err}
		}
		result, err := serverAdapter.Assist(ctx, models.AssistRequest{
			Action:  action,
			Content: note.Content,
			NoteID:  noteID,
		})
		return assistDoneMsg{noteID: noteID, action: action, response: result.Response, err: err}
	}
}

func (m workspaceModel) cmdSubscribe() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		events, err := serverAdapter.SubscribeEvents(ctx)
		return feedOpenedMsg{events: events, err: err}
	}
}

// cmdWaitEvent blocks on the feed channel for the next event. Re-issued after
// every received event.
func (m workspaceModel) cmdWaitEvent() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}

	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return feedClosedMsg{}
		}
		return feedEventMsg{event: event}
	}
}

func (m workspaceModel) cmdRetrySubscribe() tea.Cmd {
	return tea.Tick(resubscribeDelay, func(time.Time) tea.Msg {
		return retrySubscribeMsg{}
	})
}

func (m workspaceModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

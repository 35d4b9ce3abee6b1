package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mindpad-app/mindpad/internal/adapter"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/models"
)

// autosaveDelay is the quiet period after the last keystroke before a dirty
// note is written to the server.
const autosaveDelay = 500 * time.Millisecond

// resubscribeDelay is the pause before re-opening a dropped event feed.
const resubscribeDelay = 5 * time.Second

const statusTTL = 3 * time.Second

type workspaceFocus int

const (
	focusList workspaceFocus = iota
	focusSearch
	focusTitle
	focusContent
)

// workspaceModel is the main screen: the note list on the left, the editor on
// the right, the AI panel below the editor, plus history/confirm overlays.
type workspaceModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	logger  *logger.Logger
	userID  int64

	notes   []models.Note
	visible []models.Note
	idx     int
	loading bool

	searchInput textinput.Model
	searchTerm  string

	titleInput   textinput.Model
	contentArea  textarea.Model
	activeNoteID string
	dirty        bool
	generation   uint64
	saving       bool

	aiRunning map[string]models.AssistAction
	aiQueued  map[string]models.AssistAction
	aiResults map[string]string

	showHistory    bool
	historyLoading bool
	history        []models.HistoryEntry

	confirmDelete   bool
	pendingDeleteID string

	events <-chan models.NoteEvent

	focus  workspaceFocus
	width  int
	height int
	status string
	errMsg string
	logout bool
}

func newWorkspaceModel(ctx context.Context, serverAdapter adapter.ServerAdapter, log *logger.Logger, userID int64) workspaceModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "search notes"
	searchInput.CharLimit = 100
	searchInput.Width = 24

	titleInput := textinput.New()
	titleInput.Placeholder = models.DefaultNoteTitle
	titleInput.CharLimit = 200
	titleInput.Width = 46

	contentArea := textarea.New()
	contentArea.Placeholder = "Start writing..."
	contentArea.CharLimit = 0
	contentArea.SetWidth(48)
	contentArea.SetHeight(12)

	return workspaceModel{
		ctx:         ctx,
		adapter:     serverAdapter,
		logger:      log,
		userID:      userID,
		loading:     true,
		searchInput: searchInput,
		titleInput:  titleInput,
		contentArea: contentArea,
		aiRunning:   map[string]models.AssistAction{},
		aiQueued:    map[string]models.AssistAction{},
		aiResults:   map[string]string{},
	}
}

func (m workspaceModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadNotes(""), m.cmdSubscribe())
}

func (m workspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeEditor()
		return m, nil

	case notesLoadedMsg:
		return m.onNotesLoaded(msg)

	case noteCreatedMsg:
		return m.onNoteCreated(msg)

	case noteSavedMsg:
		return m.onNoteSaved(msg)

	case noteDeletedMsg:
		return m.onNoteDeleted(msg)

	case autosaveTickMsg:
		// Stale ticks from superseded edit bursts or a previous note are
		// dropped; only the latest generation may write.
		if msg.noteID != m.activeNoteID || msg.generation != m.generation || !m.dirty || !m.hasDraft() {
			return m, nil
		}
		m.saving = true
		return m, m.cmdSaveNote(m.activeNoteID, m.generation)

	case historyLoadedMsg:
		m.historyLoading = false
		if msg.noteID != m.activeNoteID {
			return m, nil
		}
		if msg.err != nil {
			m.showHistory = false
			m.errMsg = "History: " + humanizeNetworkError(msg.err)
			return m, nil
		}
		m.history = msg.entries
		return m, nil

	case assistDoneMsg:
		return m.onAssistDone(msg)

	case feedOpenedMsg:
		if msg.err != nil {
			m.errMsg = "Live updates unavailable: " + humanizeNetworkError(msg.err)
			return m, m.cmdRetrySubscribe()
		}
		m.events = msg.events
		return m, m.cmdWaitEvent()

	case feedEventMsg:
		model, cmd := m.applyEvent(msg.event)
		return model, tea.Batch(cmd, model.cmdWaitEvent())

	case feedClosedMsg:
		m.events = nil
		return m, m.cmdRetrySubscribe()

	case retrySubscribeMsg:
		return m, m.cmdSubscribe()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, m.flushThen(tea.Quit)
	}

	if m.confirmDelete {
		return m.updateConfirmDelete(keyMsg)
	}
	if m.showHistory {
		if keyMsg.String() == "esc" || keyMsg.String() == "H" {
			m.showHistory = false
			m.history = nil
		}
		return m, nil
	}

	switch m.focus {
	case focusSearch:
		return m.updateSearch(keyMsg)
	case focusTitle, focusContent:
		return m.updateEditor(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

// ── list focus ──────────────────────────────────────────────────────────────

func (m workspaceModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, m.flushThen(tea.Quit)
	case "L":
		m.logout = true
		return m, m.flushThen(tea.Quit)
	case "up", "k":
		if m.idx > 0 {
			m.idx--
			return m.openSelected()
		}
	case "down", "j":
		if m.idx < len(m.visible)-1 {
			m.idx++
			return m.openSelected()
		}
	case "enter", "tab":
		if m.activeNoteID != "" {
			return m.setFocus(focusTitle), textinput.Blink
		}
	case "n":
		return m, m.cmdCreateNote()
	case "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	case "ctrl+d":
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, m.cmdClearStatus()
		}
		m.confirmDelete = true
		m.pendingDeleteID = note.ID
		return m, nil
	case "H":
		if m.activeNoteID == "" {
			m.status = "Select a note first"
			return m, m.cmdClearStatus()
		}
		m.showHistory = true
		m.historyLoading = true
		return m, m.cmdLoadHistory(m.activeNoteID)
	case "c":
		result := m.aiResults[m.activeNoteID]
		if result == "" {
			m.status = "Nothing to copy"
			return m, m.cmdClearStatus()
		}
		if err := clipboard.WriteAll(result); err != nil {
			m.errMsg = "Copy failed: " + err.Error()
			return m, nil
		}
		m.status = "Copied"
		return m, m.cmdClearStatus()
	case "1":
		return m.startAssist(models.ActionSummarize)
	case "2":
		return m.startAssist(models.ActionRewriteFormal)
	case "3":
		return m.startAssist(models.ActionRewriteConcise)
	case "4":
		return m.startAssist(models.ActionGenerateIdeas)
	}
	return m, nil
}

func (m workspaceModel) updateConfirmDelete(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		noteID := m.pendingDeleteID
		m.confirmDelete = false
		m.pendingDeleteID = ""
		return m, m.cmdDeleteNote(noteID)
	case "n", "esc":
		m.confirmDelete = false
		m.pendingDeleteID = ""
	}
	return m, nil
}

func (m workspaceModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.focus = focusList
		if m.searchTerm != "" {
			m.searchTerm = ""
			m.applyFilter()
		}
		return m, nil
	case "enter":
		m.searchInput.Blur()
		m.focus = focusList
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(keyMsg)

	// The sidebar narrows on every keystroke; no server round trip.
	if m.searchInput.Value() != before {
		m.searchTerm = strings.TrimSpace(m.searchInput.Value())
		m.applyFilter()
	}
	return m, cmd
}

// ── editor focus ────────────────────────────────────────────────────────────

func (m workspaceModel) updateEditor(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		return m.setFocus(focusList), nil
	case "tab":
		if m.focus == focusTitle {
			return m.setFocus(focusContent), textarea.Blink
		}
		return m.setFocus(focusList), nil
	case "shift+tab":
		if m.focus == focusContent {
			return m.setFocus(focusTitle), textinput.Blink
		}
		return m.setFocus(focusList), nil
	}

	if m.focus == focusTitle {
		before := m.titleInput.Value()
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(keyMsg)
		if m.titleInput.Value() != before {
			return m, tea.Batch(cmd, m.bumpAutosave())
		}
		return m, cmd
	}

	before := m.contentArea.Value()
	var cmd tea.Cmd
	m.contentArea, cmd = m.contentArea.Update(keyMsg)
	if m.contentArea.Value() != before {
		return m, tea.Batch(cmd, m.bumpAutosave())
	}
	return m, cmd
}

// bumpAutosave marks the active note dirty and restarts the debounce window.
// Each edit burst gets a fresh generation so earlier pending ticks become
// no-ops.
func (m *workspaceModel) bumpAutosave() tea.Cmd {
	m.dirty = true
	m.generation++

	// A note emptied on both fields is never written; the next real keystroke
	// restarts the debounce.
	if !m.hasDraft() {
		return nil
	}

	noteID := m.activeNoteID
	generation := m.generation
	return tea.Tick(autosaveDelay, func(time.Time) tea.Msg {
		return autosaveTickMsg{noteID: noteID, generation: generation}
	})
}

// flushThen saves pending edits before running next (quit or logout), so the
// last keystrokes are not lost to the debounce window.
func (m *workspaceModel) flushThen(next tea.Cmd) tea.Cmd {
	if !m.dirty || m.activeNoteID == "" || !m.hasDraft() {
		return next
	}
	save := m.cmdSaveNote(m.activeNoteID, m.generation)
	return tea.Sequence(save, next)
}

// ── message handlers ────────────────────────────────────────────────────────

func (m workspaceModel) onNotesLoaded(msg notesLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errMsg = humanizeNetworkError(msg.err)
		return m, nil
	}
	m.errMsg = ""
	m.notes = msg.notes

	// Release the editor if its note did not survive the reload.
	if m.activeNoteID != "" && m.findNote(m.activeNoteID) < 0 {
		m.clearEditor()
	}
	m.applyFilter()
	return m, nil
}

func (m workspaceModel) onNoteCreated(msg noteCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = "Create failed: " + humanizeNetworkError(msg.err)
		return m, nil
	}
	m.errMsg = ""

	// A fresh note starts blank and would be hidden by any active filter.
	if m.searchTerm != "" || m.searchInput.Value() != "" {
		m.searchTerm = ""
		m.searchInput.SetValue("")
	}

	// The server also broadcasts an INSERT event for this note; applyEvent
	// skips notes that are already present.
	if m.findNote(msg.note.ID) < 0 {
		m.notes = append([]models.Note{msg.note}, m.notes...)
	}
	m.applyFilter()
	m.idx = m.findNote(msg.note.ID)

	model, _ := m.openSelected()
	ws := model.(workspaceModel)
	next := ws.setFocus(focusTitle)
	return next, textinput.Blink
}

func (m workspaceModel) onNoteSaved(msg noteSavedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		// The note stays dirty; the next edit restarts the debounce and
		// retries. An AI action waiting on this save is abandoned.
		if _, queued := m.aiQueued[msg.noteID]; queued {
			delete(m.aiQueued, msg.noteID)
			delete(m.aiRunning, msg.noteID)
		}
		m.errMsg = "Autosave failed: " + humanizeNetworkError(msg.err)
		return m, nil
	}
	m.errMsg = ""

	if msg.noteID == m.activeNoteID && msg.generation == m.generation {
		m.dirty = false
	}
	m.upsertNote(msg.note)
	m.status = "Saved"

	if action, queued := m.aiQueued[msg.noteID]; queued {
		delete(m.aiQueued, msg.noteID)
		return m, m.cmdAssist(msg.noteID, action)
	}
	return m, m.cmdClearStatus()
}

func (m workspaceModel) onNoteDeleted(msg noteDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = "Delete failed: " + humanizeNetworkError(msg.err)
		return m, nil
	}
	m.errMsg = ""
	m.removeNote(msg.noteID)
	m.status = "Note deleted"
	return m, m.cmdClearStatus()
}

func (m workspaceModel) onAssistDone(msg assistDoneMsg) (tea.Model, tea.Cmd) {
	delete(m.aiRunning, msg.noteID)
	if msg.err != nil {
		m.errMsg = humanizeNetworkError(msg.err)
		return m, nil
	}
	m.errMsg = ""
	m.aiResults[msg.noteID] = msg.response
	m.status = "AI " + string(msg.action) + " done"
	return m, m.cmdClearStatus()
}

// startAssist kicks off one AI action for the active note. A note runs at
// most one action at a time. The action always reads the stored note, so a
// dirty editor is flushed first and the content refetched before the call.
func (m workspaceModel) startAssist(action models.AssistAction) (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok || m.activeNoteID == "" {
		m.status = "Select a note first"
		return m, m.cmdClearStatus()
	}

	draft := note.Content
	if note.ID == m.activeNoteID {
		draft = m.contentArea.Value()
	}
	if strings.TrimSpace(draft) == "" {
		m.status = "Note is empty"
		return m, m.cmdClearStatus()
	}

	if _, running := m.aiRunning[note.ID]; running {
		m.status = "AI action already running"
		return m, m.cmdClearStatus()
	}

	m.aiRunning[note.ID] = action
	if note.ID == m.activeNoteID && m.dirty {
		m.aiQueued[note.ID] = action
		m.saving = true
		return m, m.cmdSaveNote(note.ID, m.generation)
	}
	return m, m.cmdAssist(note.ID, action)
}

// ── realtime feed ───────────────────────────────────────────────────────────

// applyEvent patches the note list in place. When the patch cannot be applied
// locally the whole list is refetched.
func (m workspaceModel) applyEvent(event models.NoteEvent) (workspaceModel, tea.Cmd) {
	switch event.Type {
	case models.NoteInserted:
		if m.findNote(event.Note.ID) >= 0 {
			return m, nil
		}
		m.notes = append([]models.Note{event.Note}, m.notes...)
		m.applyFilter()
		return m, nil

	case models.NoteUpdated:
		if m.findNote(event.Note.ID) < 0 {
			m.loading = true
			return m, m.cmdLoadNotes("")
		}
		m.upsertNote(event.Note)
		// Refresh the open editor only when there are no local edits in
		// flight; pending keystrokes win over remote state.
		if event.Note.ID == m.activeNoteID && !m.dirty && !m.saving {
			m.titleInput.SetValue(event.Note.Title)
			m.contentArea.SetValue(event.Note.Content)
		}
		return m, nil

	case models.NoteDeleted:
		m.removeNote(event.Note.ID)
		return m, nil

	default:
		m.logger.Warn().Str("type", string(event.Type)).Msg("unknown note event type")
		return m, nil
	}
}

func (m workspaceModel) matchesSearch(note models.Note) bool {
	if m.searchTerm == "" {
		return true
	}
	term := strings.ToLower(m.searchTerm)
	return strings.Contains(strings.ToLower(note.Title), term) ||
		strings.Contains(strings.ToLower(note.Content), term)
}

// applyFilter recomputes the sidebar rows from the full list and the current
// search term, keeping the selection on the open note where possible.
func (m *workspaceModel) applyFilter() {
	if m.searchTerm == "" {
		m.visible = m.notes
	} else {
		visible := make([]models.Note, 0, len(m.notes))
		for _, note := range m.notes {
			if m.matchesSearch(note) {
				visible = append(visible, note)
			}
		}
		m.visible = visible
	}

	if m.activeNoteID != "" {
		for i, note := range m.visible {
			if note.ID == m.activeNoteID {
				m.idx = i
				return
			}
		}
	}
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// ── editor/list state helpers ───────────────────────────────────────────────

// openSelected flushes pending edits of the previous note and binds the
// editor to the currently selected one.
func (m workspaceModel) openSelected() (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok {
		return m, nil
	}
	if note.ID == m.activeNoteID {
		return m, nil
	}

	var flush tea.Cmd
	if m.dirty && m.activeNoteID != "" && m.hasDraft() {
		flush = m.cmdSaveNote(m.activeNoteID, m.generation)
	}

	m.activeNoteID = note.ID
	m.titleInput.SetValue(note.Title)
	m.contentArea.SetValue(note.Content)
	m.dirty = false
	m.generation++

	return m, flush
}

func (m *workspaceModel) setFocus(focus workspaceFocus) workspaceModel {
	m.titleInput.Blur()
	m.contentArea.Blur()
	m.searchInput.Blur()

	m.focus = focus
	switch focus {
	case focusTitle:
		m.titleInput.Focus()
	case focusContent:
		m.contentArea.Focus()
	case focusSearch:
		m.searchInput.Focus()
	}
	return *m
}

func (m workspaceModel) current() (models.Note, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.Note{}, false
	}
	return m.visible[m.idx], true
}

// hasDraft reports whether the editor holds anything worth persisting.
func (m workspaceModel) hasDraft() bool {
	return m.titleInput.Value() != "" || m.contentArea.Value() != ""
}

func (m workspaceModel) findNote(noteID string) int {
	for i, note := range m.notes {
		if note.ID == noteID {
			return i
		}
	}
	return -1
}

// upsertNote replaces the stored row and moves it to the top, mirroring the
// server's updated_at ordering.
func (m *workspaceModel) upsertNote(note models.Note) {
	if pos := m.findNote(note.ID); pos >= 0 {
		m.notes = append(m.notes[:pos], m.notes[pos+1:]...)
	}
	m.notes = append([]models.Note{note}, m.notes...)
	m.applyFilter()
}

func (m *workspaceModel) removeNote(noteID string) {
	pos := m.findNote(noteID)
	if pos < 0 {
		return
	}
	m.notes = append(m.notes[:pos], m.notes[pos+1:]...)

	if noteID == m.activeNoteID {
		m.clearEditor()
	}
	m.applyFilter()
}

func (m *workspaceModel) clearEditor() {
	m.activeNoteID = ""
	m.titleInput.SetValue("")
	m.contentArea.SetValue("")
	m.dirty = false
	m.generation++
	m.focus = focusList
	m.titleInput.Blur()
	m.contentArea.Blur()
}

func (m *workspaceModel) resizeEditor() {
	if m.width <= 0 {
		return
	}
	editorWidth := m.width - sidebarWidth - 8
	if editorWidth < 20 {
		editorWidth = 20
	}
	m.titleInput.Width = editorWidth - 2
	m.contentArea.SetWidth(editorWidth)

	if m.height > 14 {
		m.contentArea.SetHeight(m.height - 14)
	}
}

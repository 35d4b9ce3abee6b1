package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mindpad-app/mindpad/models"
)

const sidebarWidth = 28

func (m workspaceModel) View() string {
	if m.confirmDelete {
		return m.viewConfirmDelete()
	}
	if m.showHistory {
		return m.viewHistory()
	}

	sidebar := m.viewSidebar()
	editor := m.viewEditor()
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", editor)

	var footer strings.Builder
	if m.errMsg != "" {
		footer.WriteString(errorStyle.Render("Error: " + m.errMsg))
		footer.WriteString("\n")
	} else if m.status != "" {
		footer.WriteString(m.status)
		footer.WriteString("\n")
	}
	footer.WriteString(helpStyle.Render(m.hotkeysLine()))

	return appStyle.Render(titleStyle.Render("MINDPAD") + "\n\n" + body + "\n\n" + footer.String())
}

func (m workspaceModel) viewSidebar() string {
	var b strings.Builder

	b.WriteString("Search [")
	b.WriteString(m.searchInput.View())
	b.WriteString("]\n\n")

	switch {
	case m.loading:
		b.WriteString(dimStyle.Render("Loading..."))
	case len(m.visible) == 0 && m.searchTerm != "":
		b.WriteString(dimStyle.Render("No notes match the search"))
	case len(m.visible) == 0:
		b.WriteString(dimStyle.Render("No notes yet. Press n to create one."))
	default:
		for i, note := range m.visible {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}

			title := note.Title
			if title == "" {
				title = models.DefaultNoteTitle
			}
			row := cursor + fitText(title, sidebarWidth-4)
			if note.ID == m.activeNoteID && m.dirty {
				row += " *"
			}
			if i == m.idx {
				row = selectedStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Width(sidebarWidth).Render(b.String())
}

func (m workspaceModel) viewEditor() string {
	if m.activeNoteID == "" {
		return dimStyle.Render("Select a note or press n to create one.")
	}

	var b strings.Builder
	b.WriteString("Title [")
	b.WriteString(m.titleInput.View())
	b.WriteString("]\n\n")
	b.WriteString(m.contentArea.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewAIPanel())

	return b.String()
}

func (m workspaceModel) viewAIPanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AI"))
	b.WriteString("  1: summarize │ 2: formal │ 3: concise │ 4: ideas\n")

	if action, running := m.aiRunning[m.activeNoteID]; running {
		b.WriteString(dimStyle.Render("Running " + string(action) + "..."))
		return b.String()
	}

	if result := m.aiResults[m.activeNoteID]; result != "" {
		b.WriteString(fitText(firstLine(result), 72))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("c: copy full result │ H: history"))
	} else {
		b.WriteString(dimStyle.Render("No AI result yet"))
	}
	return b.String()
}

func (m workspaceModel) viewHistory() string {
	var b strings.Builder

	if m.historyLoading {
		b.WriteString("Loading...")
	} else if len(m.history) == 0 {
		b.WriteString("No AI history for this note")
	} else {
		for _, entry := range m.history {
			b.WriteString(titleStyle.Render(entry.Prompt))
			b.WriteString("  ")
			b.WriteString(dimStyle.Render(entry.CreatedAt.Format("2006-01-02 15:04")))
			b.WriteString("\n")
			b.WriteString(fitText(firstLine(entry.AIResponse), 72))
			b.WriteString("\n\n")
		}
	}

	return renderPage("AI HISTORY", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func (m workspaceModel) viewConfirmDelete() string {
	note, _ := m.current()
	title := note.Title
	if title == "" {
		title = models.DefaultNoteTitle
	}

	box := overlayBoxStyle.Render("Delete note \"" + fitText(title, 40) + "\"?\n\ny: delete │ n: cancel")
	return appStyle.Render(box)
}

func (m workspaceModel) hotkeysLine() string {
	switch m.focus {
	case focusSearch:
		return "enter: apply │ esc: clear"
	case focusTitle, focusContent:
		return "tab: switch field │ esc: back to list"
	default:
		return "↑/↓: select │ enter: edit │ n: new │ /: search │ ctrl+d: delete │ 1-4: AI │ H: history │ L: logout │ q: quit"
	}
}

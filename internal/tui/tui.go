// Package tui implements the terminal user interface of the mindpad client:
// the login/register flow and the note workspace with live updates.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mindpad-app/mindpad/internal/adapter"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/models"
)

// ErrUserQuit is returned when the user leaves the program instead of
// completing the flow.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if serverAdapter == nil {
		return nil, errors.New("tui: server adapter is required")
	}
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo, logger: log}, nil
}

// LoginFlow runs the menu/login/register screens until the user is
// authenticated or quits. On success the adapter already holds the bearer
// token and the returned session carries the identity to cache.
func (t *TUI) LoginFlow(ctx context.Context) (models.LocalSession, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.adapter),
		"register": NewRegisterModel(ctx, t.adapter),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.LocalSession{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.LocalSession{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.LocalSession{}, ErrUserQuit
	}

	return result.resultSession, nil
}

// MainLoop runs the note workspace until the user quits or logs out.
func (t *TUI) MainLoop(ctx context.Context, userID int64) (logout bool, err error) {
	model := newWorkspaceModel(ctx, t.adapter, t.logger, userID)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(workspaceModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mindpad-app/mindpad/internal/adapter"
	"github.com/mindpad-app/mindpad/internal/config"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/store"
	"github.com/mindpad-app/mindpad/internal/tui"
	"github.com/mindpad-app/mindpad/models"
)

type App struct {
	adapter  adapter.ServerAdapter
	sessions store.LocalSessionStore
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}

	sessions, err := store.NewLocalSessionStore(ctx, db, log)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	ui, err := tui.New(serverAdapter, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{
		adapter:  serverAdapter,
		sessions: sessions,
		tui:      ui,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	userID, resumed := a.resumeSession(ctx)
	if !resumed {
		session, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		userID = session.UserID
		if err := a.sessions.SaveSession(ctx, session); err != nil {
			a.logger.Err(err).Msg("could not cache session")
		}
	}

	logout, err := a.tui.MainLoop(ctx, userID)
	if err != nil {
		return err
	}
	if logout {
		if err := a.sessions.ClearSession(ctx); err != nil {
			a.logger.Err(err).Msg("could not clear cached session")
		}
		a.adapter.SetToken("")
		return a.Run()
	}

	// Refresh the cached timestamp so the session survives the next start.
	session := models.LocalSession{
		UserID:  userID,
		Token:   a.adapter.Token(),
		SavedAt: time.Now(),
	}
	if stored, loadErr := a.sessions.LoadSession(ctx); loadErr == nil {
		session.Email = stored.Email
	}
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Msg("could not cache session")
	}

	return nil
}

// resumeSession restores a cached token and verifies it against the server.
// A missing cache or a rejected token falls back to the login flow; the stale
// entry is dropped so the next start does not retry it.
func (a *App) resumeSession(ctx context.Context) (int64, bool) {
	session, err := a.sessions.LoadSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			a.logger.Err(err).Msg("could not load cached session")
		}
		return 0, false
	}
	if session.Token == "" || session.UserID <= 0 {
		return 0, false
	}

	a.adapter.SetToken(session.Token)
	if _, err := a.adapter.ListNotes(ctx, ""); err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			if clearErr := a.sessions.ClearSession(ctx); clearErr != nil {
				a.logger.Err(clearErr).Msg("could not clear stale session")
			}
		} else {
			a.logger.Err(err).Msg("session check failed")
		}
		a.adapter.SetToken("")
		return 0, false
	}

	return session.UserID, true
}

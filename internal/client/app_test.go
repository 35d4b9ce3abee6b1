package client

import (
	"context"
	"testing"
	"time"

	"github.com/mindpad-app/mindpad/internal/adapter"
	"github.com/mindpad-app/mindpad/internal/config"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/mock"
	"github.com/mindpad-app/mindpad/internal/store"
	"github.com/mindpad-app/mindpad/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, store.LocalSessionStore) {
	t.Helper()

	ctx := context.Background()
	log := logger.Nop()

	db, err := store.NewConnectSQLite(ctx, config.ClientDB{DSN: ":memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sessions, err := store.NewLocalSessionStore(ctx, db, log)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	app := &App{
		adapter:  mockAdapter,
		sessions: sessions,
		logger:   log,
	}
	return app, mockAdapter, sessions
}

func TestResumeSession_NoCachedSession(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, resumed := app.resumeSession(context.Background())

	assert.False(t, resumed)
}

func TestResumeSession_ValidTokenResumes(t *testing.T) {
	app, mockAdapter, sessions := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, sessions.SaveSession(ctx, models.LocalSession{
		UserID:  42,
		Email:   "alice@example.com",
		Token:   "cached-token",
		SavedAt: time.Now(),
	}))

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken("cached-token"),
		mockAdapter.EXPECT().ListNotes(ctx, "").Return([]models.Note{}, nil),
	)

	userID, resumed := app.resumeSession(ctx)

	require.True(t, resumed)
	assert.Equal(t, int64(42), userID)
}

func TestResumeSession_RejectedTokenClearsCache(t *testing.T) {
	app, mockAdapter, sessions := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, sessions.SaveSession(ctx, models.LocalSession{
		UserID:  42,
		Email:   "alice@example.com",
		Token:   "expired-token",
		SavedAt: time.Now().Add(-24 * time.Hour),
	}))

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken("expired-token"),
		mockAdapter.EXPECT().ListNotes(ctx, "").Return(nil, adapter.ErrUnauthorized),
		mockAdapter.EXPECT().SetToken(""),
	)

	_, resumed := app.resumeSession(ctx)

	require.False(t, resumed)
	_, err := sessions.LoadSession(ctx)
	assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
}

func TestResumeSession_EmptyTokenFallsBackToLogin(t *testing.T) {
	app, _, sessions := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, sessions.SaveSession(ctx, models.LocalSession{
		UserID: 42,
		Email:  "alice@example.com",
	}))

	_, resumed := app.resumeSession(ctx)

	assert.False(t, resumed)
}

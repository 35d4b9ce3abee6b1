package http

import (
	"context"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mindpad-app/mindpad/internal/feed"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/service"
	"github.com/mindpad-app/mindpad/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return stubToken("signed.jwt.token", user.UserID), nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return stubToken(tokenString, 1), nil
}

// ─────────────────────────────────────────────
// Mock: service.NoteService
// ─────────────────────────────────────────────

type mockNoteService struct {
	createFn  func(ctx context.Context, userID int64) (models.Note, error)
	listFn    func(ctx context.Context, userID int64, search string) ([]models.Note, error)
	getFn     func(ctx context.Context, noteID string, userID int64) (models.Note, error)
	saveFn    func(ctx context.Context, noteID string, userID int64, update models.NoteUpdate) (models.Note, error)
	deleteFn  func(ctx context.Context, noteID string, userID int64) error
	historyFn func(ctx context.Context, noteID string, userID int64) ([]models.HistoryEntry, error)
}

func (m *mockNoteService) CreateNote(ctx context.Context, userID int64) (models.Note, error) {
	return m.createFn(ctx, userID)
}

func (m *mockNoteService) ListNotes(ctx context.Context, userID int64, search string) ([]models.Note, error) {
	return m.listFn(ctx, userID, search)
}

func (m *mockNoteService) GetNote(ctx context.Context, noteID string, userID int64) (models.Note, error) {
	return m.getFn(ctx, noteID, userID)
}

func (m *mockNoteService) SaveNote(ctx context.Context, noteID string, userID int64, update models.NoteUpdate) (models.Note, error) {
	return m.saveFn(ctx, noteID, userID, update)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, noteID string, userID int64) error {
	return m.deleteFn(ctx, noteID, userID)
}

func (m *mockNoteService) ListHistory(ctx context.Context, noteID string, userID int64) ([]models.HistoryEntry, error) {
	return m.historyFn(ctx, noteID, userID)
}

// ─────────────────────────────────────────────
// Mock: service.AssistService
// ─────────────────────────────────────────────

type mockAssistService struct {
	assistFn func(ctx context.Context, userID int64, request models.AssistRequest) (models.AssistResponse, error)
}

func (m *mockAssistService) Assist(ctx context.Context, userID int64, request models.AssistRequest) (models.AssistResponse, error) {
	return m.assistFn(ctx, userID, request)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// stubToken returns a models.Token carrying the given signed string and a
// subject claim for userID, matching what the auth middleware needs.
func stubToken(signed string, userID int64) models.Token {
	return models.Token{
		SignedString:     signed,
		UserID:           userID,
		RegisteredClaims: jwt.RegisteredClaims{Subject: strconv.FormatInt(userID, 10)},
	}
}

// newTestHandler builds a Handler whose services are the given mocks. Nil
// mocks may be passed for services the test never reaches.
func newTestHandler(auth service.AuthService, notes service.NoteService, assist service.AssistService) *Handler {
	svcs := &service.Services{
		AuthService:   auth,
		NoteService:   notes,
		AssistService: assist,
	}
	return NewHandler(svcs, feed.NewHub(logger.Nop()), logger.Nop())
}

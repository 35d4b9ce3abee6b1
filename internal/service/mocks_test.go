package service

import (
	"context"

	"github.com/mindpad-app/mindpad/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, email)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	createFn func(ctx context.Context, note models.Note) (models.Note, error)
	listFn   func(ctx context.Context, userID int64, search string) ([]models.Note, error)
	getFn    func(ctx context.Context, noteID string, userID int64) (models.Note, error)
	updateFn func(ctx context.Context, noteID string, userID int64, update models.NoteUpdate) (models.Note, error)
	deleteFn func(ctx context.Context, noteID string, userID int64) error
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) ListNotes(ctx context.Context, userID int64, search string) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, search)
	}
	return nil, nil
}

func (m *mockNoteRepository) GetNote(ctx context.Context, noteID string, userID int64) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, noteID, userID)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, noteID string, userID int64, update models.NoteUpdate) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, noteID, userID, update)
	}
	return models.Note{}, nil
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, noteID string, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, noteID, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.HistoryRepository
// ─────────────────────────────────────────────

type mockHistoryRepository struct {
	saveFn func(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error)
	listFn func(ctx context.Context, noteID string, userID int64) ([]models.HistoryEntry, error)
}

func (m *mockHistoryRepository) SaveHistory(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, entry)
	}
	return entry, nil
}

func (m *mockHistoryRepository) ListHistory(ctx context.Context, noteID string, userID int64) ([]models.HistoryEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, noteID, userID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: gateway.ChatClient
// ─────────────────────────────────────────────

type mockChatClient struct {
	completeFn func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func (m *mockChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, systemPrompt, userPrompt)
	}
	return "", nil
}

// ─────────────────────────────────────────────
// Mock: NoteEventPublisher
// ─────────────────────────────────────────────

type mockPublisher struct {
	events []models.NoteEvent
	users  []int64
}

func (m *mockPublisher) Publish(userID int64, event models.NoteEvent) {
	m.users = append(m.users, userID)
	m.events = append(m.events, event)
}

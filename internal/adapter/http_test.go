package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mindpad-app/mindpad/internal/config"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at a test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		ServerURL:      serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// signedToken returns a compact JWT whose subject claim carries userID.
func signedToken(t *testing.T, userID int64) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: strconv.FormatInt(userID, 10),
	})
	signed, err := token.SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return signed
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "secret123", user.Password)

		w.Header().Set("Authorization", "Bearer "+signedToken(t, 42))
		writeJSON(t, w, http.StatusOK, models.User{Email: user.Email})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.User{Email: "alice@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.NotEmpty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "email already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Email: "alice@example.com", Password: "secret123"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email already exists")
	assert.Empty(t, a.Token())
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)

		w.Header().Set("Authorization", "Bearer "+signedToken(t, 7))
		writeJSON(t, w, http.StatusOK, models.User{Email: "bob@example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Email: "bob@example.com", Password: "hunter22"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.NotEmpty(t, a.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid email/password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Email: "bob@example.com", Password: "wrong"})

	require.ErrorIs(t, err, ErrUnauthorized)
}

// ── Notes ───────────────────────────────────────────────────────────────────

func TestListNotes_SendsTokenAndSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		assert.Equal(t, "groceries", r.URL.Query().Get("q"))
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, []models.Note{
			{ID: "n-1", Title: "Groceries", Content: "milk"},
			{ID: "n-2", Title: "More groceries", Content: "eggs"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	notes, err := a.ListNotes(context.Background(), "groceries")

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n-1", notes[0].ID)
}

func TestListNotes_EmptySearchOmitsParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasQ := r.URL.Query()["q"]
		assert.False(t, hasQ)
		writeJSON(t, w, http.StatusOK, []models.Note{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	notes, err := a.ListNotes(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestCreateNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, models.Note{ID: "n-9", Title: models.DefaultNoteTitle})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	note, err := a.CreateNote(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "n-9", note.ID)
	assert.Equal(t, models.DefaultNoteTitle, note.Title)
}

func TestUpdateNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notes/n-5", r.URL.Path)

		var update models.NoteUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		assert.Equal(t, "Plan", update.Title)

		writeJSON(t, w, http.StatusOK, models.Note{ID: "n-5", Title: update.Title, Content: update.Content})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	note, err := a.UpdateNote(context.Background(), "n-5", models.NoteUpdate{Title: "Plan", Content: "step one"})

	require.NoError(t, err)
	assert.Equal(t, "Plan", note.Title)
}

func TestGetNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "note not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	_, err := a.GetNote(context.Background(), "missing")

	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/n-3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	require.NoError(t, a.DeleteNote(context.Background(), "n-3"))
}

func TestNoteHistory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/n-3/history", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.HistoryEntry{
			{ID: "h-2", NoteID: "n-3", Prompt: "summarize", AIResponse: "short version"},
			{ID: "h-1", NoteID: "n-3", Prompt: "generate_ideas", AIResponse: "ideas"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	entries, err := a.NoteHistory(context.Background(), "n-3")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "summarize", entries[0].Prompt)
}

// ── Assist ──────────────────────────────────────────────────────────────────

func TestAssist_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ai/assist", r.URL.Path)

		var request models.AssistRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, models.ActionSummarize, request.Action)
		assert.Equal(t, "n-1", request.NoteID)

		writeJSON(t, w, http.StatusOK, models.AssistResponse{Response: "a short summary"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	got, err := a.Assist(context.Background(), models.AssistRequest{
		Action:  models.ActionSummarize,
		Content: "long note text",
		NoteID:  "n-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "a short summary", got.Response)
}

func TestAssist_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", ErrRateLimited},
		{"credits exhausted", http.StatusPaymentRequired, "AI credits exhausted. Please add credits.", ErrCreditsExhausted},
		{"gateway failure", http.StatusInternalServerError, "AI gateway error", ErrServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.ErrorResponse{Error: tt.message})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("stored-token")

			_, err := a.Assist(context.Background(), models.AssistRequest{
				Action:  models.ActionSummarize,
				Content: "text",
				NoteID:  "n-1",
			})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_RequiresServerURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

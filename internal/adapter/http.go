package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mindpad-app/mindpad/internal/config"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/utils"
	"github.com/mindpad-app/mindpad/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a [ServerAdapter] speaking the mindpad REST API
// at cfg.ServerURL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("adapter: server URL is not set")
	}
	if _, err := url.Parse(cfg.ServerURL); err != nil {
		return nil, fmt.Errorf("adapter: invalid server URL %q: %w", cfg.ServerURL, err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ServerURL, "/")).
		SetTimeout(timeout)

	return &httpServerAdapter{client: cli, logger: log}, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request returns a prepared request with the bearer token attached when one
// has been set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, user, "/api/user/register", "register")
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, user, "/api/user/login", "login")
}

// authenticate posts credentials, stores the bearer token from the
// Authorization response header and fills UserID from the token claims.
func (h *httpServerAdapter) authenticate(ctx context.Context, user models.User, path, op string) (models.User, error) {
	var respUser models.User

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&respUser).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", op, err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse user id: %w", op, err)
	}

	h.SetToken(token)
	respUser.UserID = userID
	if respUser.Email == "" {
		respUser.Email = user.Email
	}
	return respUser, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context, search string) ([]models.Note, error) {
	var notes []models.Note

	req := h.request(ctx).SetResult(&notes)
	if search != "" {
		req.SetQueryParam("q", search)
	}

	resp, err := req.Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return notes, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context) (models.Note, error) {
	var note models.Note

	resp, err := h.request(ctx).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (h *httpServerAdapter) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	var note models.Note

	resp, err := h.request(ctx).
		SetResult(&note).
		Get("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	var note models.Note

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&note).
		Put("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.request(ctx).
		Delete("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) NoteHistory(ctx context.Context, noteID string) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry

	resp, err := h.request(ctx).
		SetResult(&entries).
		Get("/api/notes/" + url.PathEscape(noteID) + "/history")
	if err != nil {
		return nil, fmt.Errorf("note history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h *httpServerAdapter) Assist(ctx context.Context, request models.AssistRequest) (models.AssistResponse, error) {
	var result models.AssistResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		Post("/api/ai/assist")
	if err != nil {
		return models.AssistResponse{}, fmt.Errorf("assist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AssistResponse{}, err
	}
	return result, nil
}

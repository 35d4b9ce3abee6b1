package service

import (
	"context"
	"fmt"

	"github.com/mindpad-app/mindpad/internal/config"
	"github.com/mindpad-app/mindpad/internal/gateway"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/store"
	"github.com/mindpad-app/mindpad/internal/utils"
	"github.com/mindpad-app/mindpad/models"
)

// promptPair holds the fixed prompt texts of one assist action. The user
// content is appended to the user prompt; client-supplied text never becomes
// a system prompt.
type promptPair struct {
	system string
	user   string
}

// actionPrompts is the closed set of supported assist actions. Anything not
// in this table is rejected before the gateway is called.
var actionPrompts = map[models.AssistAction]promptPair{
	models.ActionSummarize: {
		system: "You are a helpful assistant that creates clear, concise summaries.",
		user:   "Summarize the following note in 2-3 sentences:\n\n",
	},
	models.ActionRewriteFormal: {
		system: "You are a professional writing assistant that transforms text into formal, professional language.",
		user:   "Rewrite the following text in a formal, professional tone:\n\n",
	},
	models.ActionRewriteConcise: {
		system: "You are a writing assistant that makes text more concise while preserving meaning.",
		user:   "Rewrite the following text to be more concise:\n\n",
	},
	models.ActionGenerateIdeas: {
		system: "You are a creative assistant that generates innovative ideas based on given topics.",
		user:   "Based on this note, generate 5 creative ideas or next steps:\n\n",
	},
}

// assistService implements AssistService. It validates the request, forwards
// the fixed prompts plus note content to the chat gateway and records the
// interaction in the note's AI history.
type assistService struct {
	chatClient        gateway.ChatClient
	historyRepository store.HistoryRepository
	uuidGenerator     *utils.UUIDGenerator

	// apiKeyConfigured is resolved once at startup; requests fail fast
	// when the deployment has no gateway credentials.
	apiKeyConfigured bool

	logger *logger.Logger
}

// NewAssistService constructs an AssistService over the given gateway client
// and history repository.
func NewAssistService(chatClient gateway.ChatClient, historyRepository store.HistoryRepository, cfg config.AI, logger *logger.Logger) AssistService {
	return &assistService{
		chatClient:        chatClient,
		historyRepository: historyRepository,
		uuidGenerator:     utils.NewUUIDGenerator(),
		apiKeyConfigured:  cfg.APIKey != "",
		logger:            logger,
	}
}

// Assist performs one AI action on behalf of userID.
//
// Validation happens before any gateway traffic: unknown actions map to
// ErrInvalidAction, empty content or note id to ErrInvalidDataProvided and a
// missing gateway key to ErrAIKeyNotConfigured.
//
// On success the interaction is appended to the note's AI history with the
// action name as the recorded prompt. A history write failure is logged and
// swallowed: the user still receives the AI response.
func (a *assistService) Assist(ctx context.Context, userID int64, request models.AssistRequest) (models.AssistResponse, error) {
	log := logger.FromContext(ctx)

	if request.Content == "" || request.NoteID == "" {
		log.Error().Str("action", string(request.Action)).Msg("invalid assist request")
		return models.AssistResponse{}, ErrInvalidDataProvided
	}

	prompts, ok := actionPrompts[request.Action]
	if !ok {
		log.Error().Str("action", string(request.Action)).Msg("invalid assist action")
		return models.AssistResponse{}, ErrInvalidAction
	}

	if !a.apiKeyConfigured {
		log.Error().Msg("ai api key is not configured")
		return models.AssistResponse{}, ErrAIKeyNotConfigured
	}

	answer, err := a.chatClient.Complete(ctx, prompts.system, prompts.user+request.Content)
	if err != nil {
		return models.AssistResponse{}, fmt.Errorf("ai completion ended with error: %w", err)
	}

	entry := models.HistoryEntry{
		ID:         a.uuidGenerator.Generate(),
		NoteID:     request.NoteID,
		Prompt:     string(request.Action),
		AIResponse: answer,
	}
	if _, err = a.historyRepository.SaveHistory(ctx, entry); err != nil {
		// The answer is already paid for; do not fail the request over
		// a bookkeeping write.
		log.Err(err).Str("note_id", request.NoteID).Msg("error saving ai history")
	}

	return models.AssistResponse{Response: answer}, nil
}

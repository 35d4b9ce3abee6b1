package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mindpad-app/mindpad/internal/app"
	"github.com/mindpad-app/mindpad/internal/gateway"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/service"
	"github.com/mindpad-app/mindpad/internal/utils"
	"github.com/mindpad-app/mindpad/models"
)

// assist proxies one AI action to the chat gateway on behalf of the
// authenticated user and records the interaction in the note's history.
func (h *Handler) assist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.AssistRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.AssistService.Assist(ctx, userID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAction):
			log.Err(err).Msg("invalid assist action")
			utils.WriteJSONError(w, app.MsgInvalidAction, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid assist request")
			utils.WriteJSONError(w, app.MsgContentAndActionRequired, http.StatusBadRequest)
			return
		case errors.Is(err, gateway.ErrRateLimited):
			utils.WriteJSONError(w, app.MsgRateLimited, http.StatusTooManyRequests)
			return
		case errors.Is(err, gateway.ErrCreditsExhausted):
			utils.WriteJSONError(w, app.MsgCreditsExhausted, http.StatusPaymentRequired)
			return
		case errors.Is(err, gateway.ErrGatewayFailure):
			log.Err(err).Msg("ai gateway failure")
			utils.WriteJSONError(w, app.MsgAIGatewayError, http.StatusInternalServerError)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during assist")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

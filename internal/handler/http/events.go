package http

import (
	"net/http"

	"github.com/mindpad-app/mindpad/internal/feed"
	"github.com/mindpad-app/mindpad/internal/utils"
)

// events upgrades the request to a WebSocket session on the note change
// feed. The session only ever receives events of the authenticated user.
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// the upgrade takes over the connection; the upgrader has already
	// replied on error
	_ = feed.ServeWS(h.hub, w, r, userID)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mindpad-app/mindpad/internal/app"
	"github.com/mindpad-app/mindpad/internal/logger"
	"github.com/mindpad-app/mindpad/internal/utils"
	"github.com/mindpad-app/mindpad/models"
)

// listNotes returns all notes of the authenticated user, most recently
// updated first. The optional "q" query parameter narrows the result with a
// case-insensitive search over titles and contents.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID, r.URL.Query().Get("q"))
	if err != nil {
		log.Err(err).Msg("note listing failed")
		writeErrorFromService(w, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

// createNote creates a blank note and returns it so the client can open it
// in the editor immediately.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, userID)
	if err != nil {
		log.Err(err).Msg("note creation failed")
		writeErrorFromService(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, chi.URLParam(r, "noteID"), userID)
	if err != nil {
		log.Err(err).Msg("note lookup failed")
		writeErrorFromService(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// updateNote overwrites the note's title and content with the request body.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.SaveNote(ctx, chi.URLParam(r, "noteID"), userID, update)
	if err != nil {
		log.Err(err).Msg("note save failed")
		writeErrorFromService(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, chi.URLParam(r, "noteID"), userID); err != nil {
		log.Err(err).Msg("note deletion failed")
		writeErrorFromService(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteHistory returns the AI interaction records of one note, newest first.
func (h *Handler) noteHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entries, err := h.services.NoteService.ListHistory(ctx, chi.URLParam(r, "noteID"), userID)
	if err != nil {
		log.Err(err).Msg("history listing failed")
		writeErrorFromService(w, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

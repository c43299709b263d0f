package handlers

import (
	"net/http"

	"github.com/fairwayleague/draft-system/services"
)

type FieldHandler struct {
	fieldService services.FieldService
}

func NewFieldHandler(fs services.FieldService) *FieldHandler {
	return &FieldHandler{fieldService: fs}
}

// GetFieldHandler handles GET /api/tournament/{tournamentID}/field
func (h *FieldHandler) GetFieldHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	players, err := h.fieldService.EnsureField(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	env := jsonResponse{"players": players}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AvailablePlayersHandler handles GET /api/tournament/{tournamentID}/available-players
func (h *FieldHandler) AvailablePlayersHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	players, err := h.fieldService.AvailablePlayers(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	env := jsonResponse{"players": players}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

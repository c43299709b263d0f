package handlers

import (
	"net/http"

	"github.com/fairwayleague/draft-system/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

// CurrentHandler handles GET /api/tournament/current
func (h *TournamentHandler) CurrentHandler(w http.ResponseWriter, r *http.Request) {
	tournament, settings, err := h.tournamentService.Current(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	env := jsonResponse{"tournament": tournament, "settings": settings}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetHandler handles POST /api/tournament/{tournamentID}/reset
func (h *TournamentHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.tournamentService.Reset(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	env := jsonResponse{"message": "tournament reset successfully"}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

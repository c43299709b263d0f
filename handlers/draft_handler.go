package handlers

import (
	"net/http"

	"github.com/fairwayleague/draft-system/services"
)

type DraftHandler struct {
	draftService services.DraftService
}

func NewDraftHandler(ds services.DraftService) *DraftHandler {
	return &DraftHandler{draftService: ds}
}

// DraftPlayerHandler handles POST /api/draft
func (h *DraftHandler) DraftPlayerHandler(w http.ResponseWriter, r *http.Request) {
	var input services.DraftPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pick, err := h.draftService.DraftPlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	env := jsonResponse{"pick": pick}
	if err := writeJSON(w, http.StatusCreated, env, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPicksHandler handles GET /api/tournament/{tournamentID}/draft
func (h *DraftHandler) ListPicksHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	picks, err := h.draftService.ListPicks(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	env := jsonResponse{"picks": picks}
	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

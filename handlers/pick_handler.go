package handlers

import (
	"net/http"

	"github.com/cactuspool/pickem/middleware"
	"github.com/cactuspool/pickem/services"
)

type PickHandler struct {
	pickService  services.PickService
	userService  services.UserService
	scoreService services.ScoreService
}

func NewPickHandler(
	pickService services.PickService,
	userService services.UserService,
	scoreService services.ScoreService,
) *PickHandler {
	return &PickHandler{
		pickService:  pickService,
		userService:  userService,
		scoreService: scoreService,
	}
}

func (h *PickHandler) SubmitGroupPickHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input struct {
		GroupID      int `json:"group_id"`
		FirstSeedID  int `json:"first_seed_id"`
		SecondSeedID int `json:"second_seed_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	// First write from this identity also records the user.
	if _, err := h.userService.EnsureUser(r.Context(), identity.UserID, identity.Name); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	pick, err := h.pickService.SubmitGroupPick(r.Context(), identity.UserID, input.GroupID, input.FirstSeedID, input.SecondSeedID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pick": pick}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PickHandler) SubmitKnockoutPickHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input struct {
		KnockoutMatchID int `json:"knockout_match_id"`
		WinnerID        int `json:"winner_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.userService.EnsureUser(r.Context(), identity.UserID, identity.Name); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	pick, err := h.pickService.SubmitKnockoutPick(r.Context(), identity.UserID, input.KnockoutMatchID, input.WinnerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"pick": pick}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListMyPicksHandler returns both pick kinds for the authenticated user.
func (h *PickHandler) ListMyPicksHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	groupPicks, err := h.pickService.ListGroupPicks(r.Context(), identity.UserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	knockoutPicks, err := h.pickService.ListKnockoutPicks(r.Context(), identity.UserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"group_picks":    groupPicks,
		"knockout_picks": knockoutPicks,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MyScoreHandler returns the authenticated user's scores. group_score is
// null until the user has a pick for every group.
func (h *PickHandler) MyScoreHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	groupScore, err := h.scoreService.GroupScore(r.Context(), identity.UserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	knockoutScore, err := h.scoreService.KnockoutScore(r.Context(), identity.UserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"group_score":    groupScore,
		"knockout_score": knockoutScore,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

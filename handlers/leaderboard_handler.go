package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cactuspool/pickem/services"
)

var errMissingUserID = errors.New("missing userID parameter")

type LeaderboardHandler struct {
	scoreService services.ScoreService
	userService  services.UserService
}

func NewLeaderboardHandler(scoreService services.ScoreService, userService services.UserService) *LeaderboardHandler {
	return &LeaderboardHandler{scoreService: scoreService, userService: userService}
}

func (h *LeaderboardHandler) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.scoreService.Leaderboard(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeaderboardHandler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"users": users}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UserScoreHandler exposes any participant's scores; the pool is public, so
// this needs no authentication. User ids are opaque strings.
func (h *LeaderboardHandler) UserScoreHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		badRequestResponse(w, r, errMissingUserID)
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	groupScore, err := h.scoreService.GroupScore(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	knockoutScore, err := h.scoreService.KnockoutScore(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"user":           user,
		"group_score":    groupScore,
		"knockout_score": knockoutScore,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

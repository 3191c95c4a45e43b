package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cactuspool/pickem/services"
)

type MatchHandler struct {
	matchService services.MatchService
	scoreService services.ScoreService
	logger       *slog.Logger
}

func NewMatchHandler(
	matchService services.MatchService,
	scoreService services.ScoreService,
	logger *slog.Logger,
) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		scoreService: scoreService,
		logger:       logger,
	}
}

func (h *MatchHandler) ListMatchesHandler(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.ListMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) GetMatchHandler(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) ListKnockoutMatchesHandler(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.ListKnockoutMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"knockout_matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) GetKnockoutMatchHandler(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetKnockoutMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"knockout_match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) RecordResultHandler(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Team1Goals int `json:"team_1_goals"`
		Team2Goals int `json:"team_2_goals"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.RecordResult(r.Context(), matchID, input.Team1Goals, input.Team2Goals)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.publishLeaderboard(r)

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) RecordKnockoutResultHandler(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		WinnerID int `json:"winner_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.RecordKnockoutResult(r.Context(), matchID, input.WinnerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.publishLeaderboard(r)

	if err := writeJSON(w, http.StatusOK, jsonResponse{"knockout_match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// publishLeaderboard pushes the recomputed leaderboard to live clients after
// a result lands. Best effort: the recorded result is already committed, so
// a failed recompute is logged but never fails the admin's request.
func (h *MatchHandler) publishLeaderboard(r *http.Request) {
	if err := h.scoreService.PublishLeaderboard(r.Context()); err != nil {
		h.logger.Error("failed to publish leaderboard after result",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

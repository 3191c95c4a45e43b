package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cactuspool/pickem/handlers"
	"github.com/cactuspool/pickem/middleware"
)

// SetupRoutes wires every endpoint onto the router. Reads are public; pick
// submission requires an authenticated identity, and recording results or
// uploading crests additionally requires the admin role.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret []byte,
	groupHandler *handlers.GroupHandler,
	teamHandler *handlers.TeamHandler,
	matchHandler *handlers.MatchHandler,
	pickHandler *handlers.PickHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)
	requireAdmin := middleware.RequireRole("admin")

	router.Route("/groups", func(r chi.Router) {
		r.Get("/", groupHandler.ListGroupsHandler)
		r.Get("/{groupID}", groupHandler.GetGroupHandler)
		r.Get("/{groupID}/standings", groupHandler.GroupStandingsHandler)
		r.Get("/{groupID}/seeds", groupHandler.GroupSeedOrderHandler)
		r.Get("/{groupID}/matches", groupHandler.ListGroupMatchesHandler)
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.ListTeamsHandler)
		r.Get("/{teamID}", teamHandler.GetTeamHandler)
		r.Get("/{teamID}/standing", teamHandler.TeamStandingHandler)
		r.Get("/{teamID}/matches", teamHandler.ListTeamMatchesHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireAdmin)
			r.Post("/{teamID}/crest", teamHandler.UploadCrestHandler)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", matchHandler.ListMatchesHandler)
		r.Get("/{matchID}", matchHandler.GetMatchHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireAdmin)
			r.Put("/{matchID}/result", matchHandler.RecordResultHandler)
		})
	})

	router.Route("/knockouts", func(r chi.Router) {
		r.Get("/", matchHandler.ListKnockoutMatchesHandler)
		r.Get("/{matchID}", matchHandler.GetKnockoutMatchHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(requireAdmin)
			r.Put("/{matchID}/result", matchHandler.RecordKnockoutResultHandler)
		})
	})

	router.Route("/picks", func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/", pickHandler.ListMyPicksHandler)
		r.Post("/groups", pickHandler.SubmitGroupPickHandler)
		r.Post("/knockouts", pickHandler.SubmitKnockoutPickHandler)
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/scores/me", pickHandler.MyScoreHandler)
	})

	router.Get("/leaderboard", leaderboardHandler.LeaderboardHandler)
	router.Get("/users", leaderboardHandler.ListUsersHandler)
	router.Get("/users/{userID}/score", leaderboardHandler.UserScoreHandler)

	router.Get("/ws", webSocketHandler.ServeWS)
}

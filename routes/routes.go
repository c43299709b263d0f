package routes

import (
	"net/http"

	"github.com/fairwayleague/draft-system/docs"
	"github.com/fairwayleague/draft-system/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRoutes mounts the whole HTTP surface on the router.
func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	tournamentHandler *handlers.TournamentHandler,
	fieldHandler *handlers.FieldHandler,
	draftHandler *handlers.DraftHandler,
	rosterHandler *handlers.RosterHandler,
	scoreHandler *handlers.ScoreHandler,
	settingsHandler *handlers.SettingsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", handlers.HealthHandler)

	router.Route("/api", func(r chi.Router) {
		r.Post("/draft", draftHandler.DraftPlayerHandler)
		r.Post("/players/{playerID}/score", scoreHandler.UpdateScoreHandler)

		r.Route("/tournament", func(r chi.Router) {
			r.Get("/current", tournamentHandler.CurrentHandler)

			r.Route("/{tournamentID}", func(r chi.Router) {
				r.Get("/field", fieldHandler.GetFieldHandler)
				r.Get("/available-players", fieldHandler.AvailablePlayersHandler)
				r.Get("/draft", draftHandler.ListPicksHandler)
				r.Get("/settings", settingsHandler.GetSettingsHandler)
				r.Get("/teams", rosterHandler.TeamsHandler)
				r.Post("/simulate-scores", scoreHandler.SimulateScoresHandler)
				r.Post("/reset", tournamentHandler.ResetHandler)
			})
		})
	})

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)

	router.Get("/docs/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(docs.OpenAPI)
	})
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/openapi.json"),
	))
}

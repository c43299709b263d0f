package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairwayleague/draft-system/config"
	"github.com/fairwayleague/draft-system/db"
	"github.com/fairwayleague/draft-system/handlers"
	"github.com/fairwayleague/draft-system/live"
	"github.com/fairwayleague/draft-system/repositories"
	api "github.com/fairwayleague/draft-system/routes"
	"github.com/fairwayleague/draft-system/seed"
	"github.com/fairwayleague/draft-system/services"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.Bool("score_simulation", cfg.ScoreSimulationEnabled),
	)

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	hub := live.NewHub(logger)
	go hub.Run()
	logger.Info("live event hub started")

	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	pickRepo := repositories.NewPostgresDraftPickRepository(dbConn)
	settingsRepo := repositories.NewPostgresSettingsRepository(dbConn)
	txRunner := repositories.NewSQLTxRunner(dbConn)
	logger.Info("repositories initialized")

	tournamentService := services.NewTournamentService(
		txRunner, tournamentRepo, playerRepo, pickRepo, settingsRepo, hub, logger,
	)
	draftService := services.NewDraftService(
		txRunner, tournamentRepo, playerRepo, pickRepo, settingsRepo, hub, logger,
	)
	fieldService := services.NewFieldService(txRunner, playerRepo, seed.TournamentField(), logger)
	rosterService := services.NewRosterService(playerRepo)
	scoreService := services.NewScoreService(playerRepo, hub, logger, cfg.ScoreSimulationEnabled)
	settingsService := services.NewSettingsService(settingsRepo)
	logger.Info("services initialized")

	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	fieldHandler := handlers.NewFieldHandler(fieldService)
	draftHandler := handlers.NewDraftHandler(draftService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	scoreHandler := handlers.NewScoreHandler(scoreService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	webSocketHandler := handlers.NewWebSocketHandler(hub)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.CORSAllowedOrigins,
		tournamentHandler,
		fieldHandler,
		draftHandler,
		rosterHandler,
		scoreHandler,
		settingsHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}

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

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/cactuspool/pickem/config"
	"github.com/cactuspool/pickem/db"
	"github.com/cactuspool/pickem/handlers"
	"github.com/cactuspool/pickem/live"
	"github.com/cactuspool/pickem/repositories"
	api "github.com/cactuspool/pickem/routes"
	"github.com/cactuspool/pickem/scoring"
	"github.com/cactuspool/pickem/services"
	"github.com/cactuspool/pickem/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("crest storage initialized")

	hub := live.NewHub(logger)
	go hub.Run()

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	groupRepo := repositories.NewPostgresGroupRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	knockoutRepo := repositories.NewPostgresKnockoutMatchRepository(dbConn)
	groupPickRepo := repositories.NewPostgresGroupPickRepository(dbConn)
	knockoutPickRepo := repositories.NewPostgresKnockoutPickRepository(dbConn)

	policy := scoring.RequireCompleteGroupPicks
	if cfg.LeaderboardIncludeAll {
		policy = scoring.IncludeAllUsers
	}
	engine := scoring.NewEngine(scoring.Cutoffs{
		First:  cfg.FirstKnockoutCutoff,
		Second: cfg.SecondKnockoutCutoff,
	}, policy)

	userService := services.NewUserService(userRepo)
	teamService := services.NewTeamService(teamRepo, uploader)
	groupService := services.NewGroupService(groupRepo)
	matchService := services.NewMatchService(matchRepo, knockoutRepo, hub, logger)
	pickService := services.NewPickService(groupPickRepo, knockoutPickRepo, groupRepo, knockoutRepo)
	scoreService := services.NewScoreService(
		userRepo,
		teamRepo,
		groupRepo,
		matchRepo,
		knockoutRepo,
		groupPickRepo,
		knockoutPickRepo,
		engine,
		hub,
		logger,
	)
	logger.Info("services initialized")

	groupHandler := handlers.NewGroupHandler(groupService, matchService, scoreService)
	teamHandler := handlers.NewTeamHandler(teamService, matchService, scoreService)
	matchHandler := handlers.NewMatchHandler(matchService, scoreService, logger)
	pickHandler := handlers.NewPickHandler(pickService, userService, scoreService)
	leaderboardHandler := handlers.NewLeaderboardHandler(scoreService, userService)
	webSocketHandler := handlers.NewWebSocketHandler(hub, logger)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		[]byte(cfg.JWTSecretKey),
		groupHandler,
		teamHandler,
		matchHandler,
		pickHandler,
		leaderboardHandler,
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
}

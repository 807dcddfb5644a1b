package main

import (
	"alcyxob/fitness-recommender/internal/api"
	"alcyxob/fitness-recommender/internal/catalog"
	"alcyxob/fitness-recommender/internal/config"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/metrics"
	"alcyxob/fitness-recommender/internal/repository/cache"
	"alcyxob/fitness-recommender/internal/repository/mongo"
	"alcyxob/fitness-recommender/internal/service"
	"alcyxob/fitness-recommender/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// @title Fitness Recommender API
// @version 1.0
// @description Exercise library, workout logging and daily workout recommendations.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("Starting Fitness Recommender Server...", "address", cfg.Server.Address, "log_mode", cfg.Log.Mode)

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatal("Could not connect to MongoDB", "error", err)
	}
	defer func() {
		log.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Error("Failed to disconnect MongoDB", "error", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info("Database connection established", "database", cfg.Database.Name)

	metricsManager := metrics.NewManager("fitness", "recommender", prometheus.DefaultRegisterer)

	// --- Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := cache.NewExerciseRepository(
		mongo.NewMongoExerciseRepository(appDB),
		cfg.Cache.SizeMB*1024*1024,
		cfg.Cache.CatalogTTL,
		metricsManager,
		log,
	)
	logRepo := mongo.NewMongoWorkoutLogRepository(appDB)

	// --- Indexes and catalog seed ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			log.Error("Index creation failed", "error", err)
			return
		}
		log.Info("Index creation process completed")

		if !cfg.Catalog.Seed {
			return
		}
		if _, err := catalog.Seed(ctx, exerciseRepo, log); err != nil {
			log.Error("Catalog seed failed", "error", err)
		}
	}()

	// --- Storage ---
	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	mediaStorage, err := storage.NewS3Storage(initCtx, cfg.S3, log)
	cancelInit()
	if err != nil {
		log.Fatal("Failed to initialize S3 storage", "error", err)
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.Auth.AdminEmails)
	profileService := service.NewProfileService(userRepo)
	exerciseService := service.NewExerciseService(exerciseRepo, mediaStorage, log)
	logService := service.NewWorkoutLogService(logRepo, exerciseRepo, log)
	recService := service.NewRecommendationService(profileService, logService, exerciseRepo, cfg.Recommendation, log)

	// --- Routes ---
	router := api.NewRouter(cfg.Server.Mode, cfg.Server.CORSOrigins, metricsManager, log)
	api.SetupRoutes(router, cfg.JWT.Secret, cfg.Recommendation.LogWindowDays, api.Services{
		Auth:           authService,
		Profile:        profileService,
		Exercise:       exerciseService,
		WorkoutLog:     logService,
		Recommendation: recService,
	}, metricsManager, log)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("Server listening", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("ListenAndServe error", "error", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exiting")
}

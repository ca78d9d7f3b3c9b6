package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nuhub-backend/internal/config"
	"nuhub-backend/internal/database"
	"nuhub-backend/internal/examsource"
	"nuhub-backend/internal/handlers"
	"nuhub-backend/internal/middleware"
	"nuhub-backend/internal/repository"
	"nuhub-backend/internal/router"
	"nuhub-backend/internal/services"
	"nuhub-backend/internal/store"
	"nuhub-backend/internal/study"
)

func main() {
	log.Println("🚀 Starting NU Hub Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Client ────
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Step 5: Collection Store ────
	var kv store.KV
	switch cfg.StoreBackend {
	case "postgres":
		kv = store.NewPostgresKV(pool)
	default:
		kv = store.NewRedisKV(redisClient)
	}
	collections := store.NewCollections(kv, store.Keys{
		Sessions:  cfg.SessionsKey,
		Materials: cfg.MaterialsKey,
		Reviews:   cfg.ReviewsKey,
	})
	log.Printf("✓ Collection store ready (%s)", cfg.StoreBackend)

	// ──── Step 6: Exam Data Sources ────
	remote := examsource.NewRemote(cfg.ExamAPIBaseURL, 10*time.Second)
	cached := examsource.NewCached(remote, redisClient, time.Duration(cfg.ExamCacheSeconds)*time.Second)
	safe := examsource.NewFallback(cached, examsource.NewFixed(examsource.SampleExams()))
	log.Printf("✓ Exam provider configured (%s)", cfg.ExamAPIBaseURL)

	// ──── Initialize Services ────
	userRepo := repository.NewUserRepo(pool)
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, redisClient, jwtAuth)
	estimator := study.NewEstimator(study.DefaultEstimatorConfig())
	validate := handlers.NewValidator()

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	examsHandler := handlers.NewExamsHandler(safe, cached)
	plannerHandler := handlers.NewPlannerHandler(collections, safe, estimator, validate)
	materialsHandler := handlers.NewMaterialsHandler(collections, userRepo, cfg.StoragePath)
	reviewsHandler := handlers.NewReviewsHandler(collections, userRepo, validate)
	dashboardHandler := handlers.NewDashboardHandler(collections, safe)

	// ──── Step 7: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		authHandler,
		examsHandler,
		plannerHandler,
		materialsHandler,
		reviewsHandler,
		dashboardHandler,
		cfg.StoragePath,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ NU Hub Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

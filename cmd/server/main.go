package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/archylab/archy/internal/handlers/httpapi"
	sessionRepo "github.com/archylab/archy/internal/repositories/session"
	shotRepo "github.com/archylab/archy/internal/repositories/shot"
	slotRepo "github.com/archylab/archy/internal/repositories/slot"
	targetRepo "github.com/archylab/archy/internal/repositories/target"
	"github.com/archylab/archy/internal/common/clock"
	"github.com/archylab/archy/internal/services/livestats"
	sessionService "github.com/archylab/archy/internal/services/session"
	slotService "github.com/archylab/archy/internal/services/slot"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	targets, err := targetRepo.NewRedis(&targetRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create target repository: %v", err)
	}

	slots, err := slotRepo.NewRedis(&slotRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create slot repository: %v", err)
	}

	shots, err := shotRepo.NewRedis(&shotRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create shot repository: %v", err)
	}

	// Initialize services
	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo: sessions,
		SlotRepo:    slots,
		Clock:       &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	slotSvc, err := slotService.New(&slotService.Config{
		SessionRepo: sessions,
		TargetRepo:  targets,
		SlotRepo:    slots,
	})
	if err != nil {
		log.Fatalf("Failed to create slot service: %v", err)
	}

	statsSvc, err := livestats.New(&livestats.Config{
		ShotRepo: shots,
		SlotRepo: slots,
	})
	if err != nil {
		log.Fatalf("Failed to create live stats service: %v", err)
	}

	// Initialize the HTTP API
	api, err := httpapi.New(&httpapi.Config{
		SessionService: sessionSvc,
		SlotService:    slotSvc,
		StatsService:   statsSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP API: %v", err)
	}

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: api.Routes(),
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("failed to close redis client", "error", err)
	}

	slog.Info("server stopped")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

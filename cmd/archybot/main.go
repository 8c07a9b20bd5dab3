package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/archylab/archy/internal/common/clock"
	sessionRepo "github.com/archylab/archy/internal/repositories/session"
	shotRepo "github.com/archylab/archy/internal/repositories/shot"
	slotRepo "github.com/archylab/archy/internal/repositories/slot"
	targetRepo "github.com/archylab/archy/internal/repositories/target"
	"github.com/archylab/archy/internal/services/livestats"
	sessionService "github.com/archylab/archy/internal/services/session"
	slotService "github.com/archylab/archy/internal/services/slot"
)

// archybot is a simulated shooter: it opens a session (or reuses its
// own open one), joins at a random distance and records a randomly
// scored shot on every tick until interrupted, then leaves and closes.
// Useful for exercising the live stats feed end to end.
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}
	targets, err := targetRepo.NewRedis(&targetRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create target repository: %v", err)
	}
	slots, err := slotRepo.NewRedis(&slotRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create slot repository: %v", err)
	}
	shots, err := shotRepo.NewRedis(&shotRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create shot repository: %v", err)
	}

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

	archerID := getEnv("ARCHER_ID", "archy-bot")
	interval, err := time.ParseDuration(getEnv("SHOT_INTERVAL", "4s"))
	if err != nil {
		log.Fatalf("Invalid SHOT_INTERVAL: %v", err)
	}

	ctx := context.Background()

	sessionID, err := openOrReuseSession(ctx, sessionSvc, archerID)
	if err != nil {
		log.Fatalf("Failed to open session: %v", err)
	}
	slog.Info("session ready", "session_id", sessionID)

	distance := 10 + rand.Intn(60)
	join, err := slotSvc.Join(ctx, &slotService.JoinInput{
		SessionID: sessionID,
		ArcherID:  archerID,
		Distance:  distance,
		FaceType:  "40cm",
		BowStyle:  "recurve",
	})
	if err != nil {
		log.Fatalf("Failed to join session: %v", err)
	}
	slog.Info("joined", "slot_id", join.SlotID, "code", join.Code, "distance", distance)

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

shooting:
	for {
		select {
		case <-ticker.C:
			if err := recordRandomShot(ctx, statsSvc, join.SlotID); err != nil {
				slog.Error("failed to record shot", "error", err)
			}
		case <-sc:
			break shooting
		}
	}

	slog.Info("winding down")

	if _, err := slotSvc.Leave(ctx, &slotService.LeaveInput{
		SlotID:      join.SlotID,
		RequesterID: archerID,
	}); err != nil {
		slog.Error("failed to leave slot", "error", err)
	}

	if _, err := sessionSvc.Close(ctx, &sessionService.CloseInput{
		SessionID: sessionID,
	}); err != nil {
		slog.Error("failed to close session", "error", err)
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("failed to close redis client", "error", err)
	}

	slog.Info("bot stopped")
}

// openOrReuseSession returns the bot's open session, creating one when
// it has none
func openOrReuseSession(ctx context.Context, svc sessionService.Service, archerID string) (string, error) {
	existing, err := svc.OwnerOpenSession(ctx, &sessionService.OwnerOpenSessionInput{
		OwnerArcherID: archerID,
	})
	if err != nil {
		return "", err
	}
	if existing.Session != nil {
		return existing.Session.ID, nil
	}

	opened, err := svc.Open(ctx, &sessionService.OpenInput{
		OwnerArcherID: archerID,
		Location:      "default location",
		IsIndoor:      false,
		ShotsPerRound: 6,
	})
	if err != nil {
		return "", err
	}
	return opened.Session.ID, nil
}

// recordRandomShot records either a scored landing or a miss, roughly
// half and half like a distracted archer
func recordRandomShot(ctx context.Context, svc livestats.Service, slotID string) error {
	input := &livestats.RecordShotInput{SlotID: slotID}

	if rand.Intn(2) == 0 {
		x := rand.Float64()*100 - 50
		y := rand.Float64()*100 - 50
		score := rand.Intn(11)
		input.X = &x
		input.Y = &y
		input.Score = &score
	}

	output, err := svc.RecordShot(ctx, input)
	if err != nil {
		return err
	}

	if output.Shot.Score != nil {
		slog.Info("shot recorded", "shot_id", output.Shot.ID, "score", *output.Shot.Score)
	} else {
		slog.Info("shot recorded", "shot_id", output.Shot.ID, "score", "miss")
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

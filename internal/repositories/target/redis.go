package target

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/archylab/archy/internal/common/clock"
	"github.com/archylab/archy/internal/common/uuid"
	"github.com/archylab/archy/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	targetKeyPrefix         = "target:"
	sessionTargetsKeyPrefix = "session_targets:" // ZSET target ID scored by lane
	sessionLanesKeyPrefix   = "session_lanes:"   // monotone lane counter per session
)

// ErrTargetNotFound is returned when a target is not found
var ErrTargetNotFound = errors.New("target not found")

// Config holds configuration for the Redis target repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used to stamp targets; defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator used for target IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed target repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo := &redisRepository{
		client: cfg.RedisClient,
		clock:  cfg.Clock,
		uuid:   cfg.UUIDGenerator,
	}
	if repo.clock == nil {
		repo.clock = &clock.DefaultClock{}
	}
	if repo.uuid == nil {
		repo.uuid = uuid.New()
	}

	return repo, nil
}

// CreateTarget persists a new target and adds it to the session's
// lane-ordered index
func (r *redisRepository) CreateTarget(ctx context.Context, input *CreateTargetInput) (*models.Target, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	if input.Distance < 1 || input.Distance > 100 {
		return nil, errors.New("distance must be between 1 and 100")
	}

	target := &models.Target{
		ID:        r.uuid.NewUUID(),
		SessionID: input.SessionID,
		Distance:  input.Distance,
		Lane:      input.Lane,
		CreatedAt: r.clock.Now(),
	}

	targetJSON, err := json.Marshal(target)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal target: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", targetKeyPrefix, target.ID), targetJSON, 0)
	pipe.ZAdd(ctx, fmt.Sprintf("%s%s", sessionTargetsKeyPrefix, input.SessionID), redis.Z{
		Score:  float64(input.Lane),
		Member: target.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save target: %w", err)
	}

	return target, nil
}

// GetTarget retrieves a target by ID from Redis
func (r *redisRepository) GetTarget(ctx context.Context, input *GetTargetInput) (*models.Target, error) {
	if input == nil || input.TargetID == "" {
		return nil, errors.New("input and target ID cannot be empty")
	}

	targetJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", targetKeyPrefix, input.TargetID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to get target: %w", err)
	}

	var target models.Target
	if err := json.Unmarshal([]byte(targetJSON), &target); err != nil {
		return nil, fmt.Errorf("failed to unmarshal target: %w", err)
	}

	return &target, nil
}

// GetTargetsByDistance retrieves the session's targets at the requested
// distance, ordered by lane ascending. Distance is a hard partition key:
// targets at other distances are never candidates.
func (r *redisRepository) GetTargetsByDistance(ctx context.Context, input *GetTargetsByDistanceInput) (*GetTargetsByDistanceOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	// ZRange returns members ordered by score, i.e. by lane
	targetIDs, err := r.client.ZRange(ctx, fmt.Sprintf("%s%s", sessionTargetsKeyPrefix, input.SessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session target IDs: %w", err)
	}

	targets := make([]*models.Target, 0, len(targetIDs))
	for _, targetID := range targetIDs {
		target, err := r.GetTarget(ctx, &GetTargetInput{TargetID: targetID})
		if err != nil {
			if errors.Is(err, ErrTargetNotFound) {
				continue
			}
			return nil, err
		}
		if target.Distance == input.Distance {
			targets = append(targets, target)
		}
	}

	return &GetTargetsByDistanceOutput{Targets: targets}, nil
}

// NextLane allocates the next lane number for a session. Lane numbers are
// global per session, not per distance, and never reused.
func (r *redisRepository) NextLane(ctx context.Context, input *NextLaneInput) (int, error) {
	if input == nil || input.SessionID == "" {
		return 0, errors.New("input and session ID cannot be empty")
	}

	lane, err := r.client.Incr(ctx, fmt.Sprintf("%s%s", sessionLanesKeyPrefix, input.SessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate lane: %w", err)
	}

	return int(lane), nil
}

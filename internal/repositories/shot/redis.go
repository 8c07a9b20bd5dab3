package shot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/archylab/archy/internal/common/clock"
	"github.com/archylab/archy/internal/common/uuid"
	"github.com/archylab/archy/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	shotKeyPrefix      = "shot:"
	slotShotsKeyPrefix = "slot_shots:" // LIST of ShotScore JSON, commit order

	// shotInsertChannelPrefix names the per-slot change-event channel.
	// One message is published per committed shot insert.
	shotInsertChannelPrefix = "shot_insert_"
)

var (
	// ErrShotNotFound is returned when a shot is not found
	ErrShotNotFound = errors.New("shot not found")

	// ErrInvalidCoordinates is returned when x, y and score are not all
	// present or all absent
	ErrInvalidCoordinates = errors.New("x, y and score must all be provided together or all be nil")

	// ErrInvalidScore is returned when the score is outside 0-10
	ErrInvalidScore = errors.New("score must be between 0 and 10")
)

// InsertChannel returns the change-event channel name for a slot
func InsertChannel(slotID string) string {
	return fmt.Sprintf("%s%s", shotInsertChannelPrefix, slotID)
}

// Config holds configuration for the Redis shot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used to stamp shots; defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator used for shot IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed shot repository
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

// CreateShot persists a new shot and publishes its ShotScore on the
// slot's change-event channel. The publish happens only after the row
// write succeeds, mirroring a commit hook.
func (r *redisRepository) CreateShot(ctx context.Context, input *CreateShotInput) (*models.Shot, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.New("input and slot ID cannot be empty")
	}

	present := 0
	for _, set := range []bool{input.X != nil, input.Y != nil, input.Score != nil} {
		if set {
			present++
		}
	}
	if present != 0 && present != 3 {
		return nil, ErrInvalidCoordinates
	}

	if input.Score != nil && (*input.Score < 0 || *input.Score > 10) {
		return nil, ErrInvalidScore
	}

	shot := &models.Shot{
		ID:        r.uuid.NewUUID(),
		SlotID:    input.SlotID,
		X:         input.X,
		Y:         input.Y,
		Score:     input.Score,
		ArrowID:   input.ArrowID,
		CreatedAt: r.clock.Now(),
	}

	shotJSON, err := json.Marshal(shot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shot: %w", err)
	}

	score := &models.ShotScore{
		ShotID:    shot.ID,
		Score:     shot.Score,
		CreatedAt: shot.CreatedAt,
	}
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shot score: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", shotKeyPrefix, shot.ID), shotJSON, 0)
	pipe.RPush(ctx, fmt.Sprintf("%s%s", slotShotsKeyPrefix, input.SlotID), scoreJSON)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save shot: %w", err)
	}

	if err := r.client.Publish(ctx, InsertChannel(input.SlotID), scoreJSON).Err(); err != nil {
		return nil, fmt.Errorf("failed to publish shot event: %w", err)
	}

	return shot, nil
}

// GetShot retrieves a shot by ID from Redis
func (r *redisRepository) GetShot(ctx context.Context, input *GetShotInput) (*models.Shot, error) {
	if input == nil || input.ShotID == "" {
		return nil, errors.New("input and shot ID cannot be empty")
	}

	shotJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", shotKeyPrefix, input.ShotID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrShotNotFound
		}
		return nil, fmt.Errorf("failed to get shot: %w", err)
	}

	var shot models.Shot
	if err := json.Unmarshal([]byte(shotJSON), &shot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shot: %w", err)
	}

	return &shot, nil
}

// GetScores retrieves all scores for a slot in commit order
func (r *redisRepository) GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.New("input and slot ID cannot be empty")
	}

	entries, err := r.client.LRange(ctx, fmt.Sprintf("%s%s", slotShotsKeyPrefix, input.SlotID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get slot scores: %w", err)
	}

	scores := make([]*models.ShotScore, 0, len(entries))
	for _, entry := range entries {
		var score models.ShotScore
		if err := json.Unmarshal([]byte(entry), &score); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shot score: %w", err)
		}
		scores = append(scores, &score)
	}

	return &GetScoresOutput{Scores: scores}, nil
}

// Subscribe opens a change-event subscription for one slot's shots
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) (Subscription, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.New("input and slot ID cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, InsertChannel(input.SlotID))

	// Force the SUBSCRIBE to hit the wire so a dead connection surfaces
	// here instead of as a silent, empty stream.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to shot events: %w", err)
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		events: make(chan []byte),
		done:   make(chan struct{}),
	}
	go sub.pump()

	return sub, nil
}

// redisSubscription adapts a go-redis PubSub to the Subscription interface
type redisSubscription struct {
	pubsub *redis.PubSub
	events chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

// pump forwards payloads until the pub/sub channel closes. The done
// select keeps a payload in flight from pinning the goroutine after the
// consumer has closed the subscription without draining events.
func (s *redisSubscription) pump() {
	defer close(s.events)
	for msg := range s.pubsub.Channel() {
		select {
		case s.events <- []byte(msg.Payload):
		case <-s.done:
			return
		}
	}
}

func (s *redisSubscription) Events() <-chan []byte {
	return s.events
}

func (s *redisSubscription) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return s.pubsub.Close()
}

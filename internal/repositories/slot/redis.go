package slot

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
	slotKeyPrefix          = "slot:"
	targetLettersKeyPrefix = "target_letters:" // HASH letter -> active slot ID
	participantKeyPrefix   = "participant:"    // archer ID -> Participation JSON
	sessionActiveKeyPrefix = "session_active:" // SET of active slot IDs
)

var (
	// ErrSlotNotFound is returned when a slot is not found
	ErrSlotNotFound = errors.New("slot not found")

	// ErrLetterTaken is returned when the requested letter is already
	// held by an active slot on the target
	ErrLetterTaken = errors.New("slot letter already taken")

	// ErrArcherParticipating is returned when the archer already has an
	// active slot somewhere
	ErrArcherParticipating = errors.New("archer already participating")

	// ErrSlotNotActive is returned when deactivating a slot that is not shooting
	ErrSlotNotActive = errors.New("slot is not active")

	// ErrSlotActive is returned when reactivating a slot that is already shooting
	ErrSlotActive = errors.New("slot is already active")

	// ErrParticipationNotFound is returned when the archer has no active slot
	ErrParticipationNotFound = errors.New("participation not found")
)

// Config holds configuration for the Redis slot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used to stamp slots; defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator used for slot IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed slot repository
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

func validLetter(letter models.SlotLetter) bool {
	for _, l := range models.SlotLetters {
		if l == letter {
			return true
		}
	}
	return false
}

// CreateSlot persists a new active slot assignment. The letter is claimed
// with HSETNX and the archer's participation with SETNX, so two joins
// racing for the same letter, or the same archer joining twice, yield
// exactly one success.
func (r *redisRepository) CreateSlot(ctx context.Context, input *CreateSlotInput) (*models.Slot, error) {
	if input == nil || input.SessionID == "" || input.TargetID == "" || input.ArcherID == "" {
		return nil, errors.New("input, session ID, target ID and archer ID cannot be empty")
	}

	if !validLetter(input.Letter) {
		return nil, fmt.Errorf("invalid slot letter %q", input.Letter)
	}

	slotID := r.uuid.NewUUID()
	lettersKey := fmt.Sprintf("%s%s", targetLettersKeyPrefix, input.TargetID)
	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, input.ArcherID)

	claimed, err := r.client.HSetNX(ctx, lettersKey, string(input.Letter), slotID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim slot letter: %w", err)
	}
	if !claimed {
		return nil, ErrLetterTaken
	}

	participation := &Participation{
		ArcherID:  input.ArcherID,
		SessionID: input.SessionID,
		SlotID:    slotID,
	}
	participationJSON, err := json.Marshal(participation)
	if err != nil {
		r.client.HDel(ctx, lettersKey, string(input.Letter))
		return nil, fmt.Errorf("failed to marshal participation: %w", err)
	}

	registered, err := r.client.SetNX(ctx, participantKey, participationJSON, 0).Result()
	if err != nil {
		r.client.HDel(ctx, lettersKey, string(input.Letter))
		return nil, fmt.Errorf("failed to register participation: %w", err)
	}
	if !registered {
		r.client.HDel(ctx, lettersKey, string(input.Letter))
		return nil, ErrArcherParticipating
	}

	slot := &models.Slot{
		ID:         slotID,
		TargetID:   input.TargetID,
		SessionID:  input.SessionID,
		ArcherID:   input.ArcherID,
		Letter:     input.Letter,
		IsShooting: true,
		FaceType:   input.FaceType,
		BowStyle:   input.BowStyle,
		DrawWeight: input.DrawWeight,
		ClubID:     input.ClubID,
		CreatedAt:  r.clock.Now(),
	}

	slotJSON, err := json.Marshal(slot)
	if err != nil {
		r.rollbackClaims(ctx, lettersKey, input.Letter, participantKey)
		return nil, fmt.Errorf("failed to marshal slot: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", slotKeyPrefix, slotID), slotJSON, 0)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", sessionActiveKeyPrefix, input.SessionID), slotID)

	if _, err := pipe.Exec(ctx); err != nil {
		r.rollbackClaims(ctx, lettersKey, input.Letter, participantKey)
		return nil, fmt.Errorf("failed to save slot: %w", err)
	}

	return slot, nil
}

func (r *redisRepository) rollbackClaims(ctx context.Context, lettersKey string, letter models.SlotLetter, participantKey string) {
	r.client.HDel(ctx, lettersKey, string(letter))
	r.client.Del(ctx, participantKey)
}

// GetSlot retrieves a slot by ID from Redis
func (r *redisRepository) GetSlot(ctx context.Context, input *GetSlotInput) (*models.Slot, error) {
	if input == nil || input.SlotID == "" {
		return nil, errors.New("input and slot ID cannot be empty")
	}

	return r.getSlot(ctx, input.SlotID)
}

func (r *redisRepository) getSlot(ctx context.Context, slotID string) (*models.Slot, error) {
	slotJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", slotKeyPrefix, slotID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	var slot models.Slot
	if err := json.Unmarshal([]byte(slotJSON), &slot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal slot: %w", err)
	}

	return &slot, nil
}

// GetAssignedLetters retrieves the letters currently in use on a target
func (r *redisRepository) GetAssignedLetters(ctx context.Context, input *GetAssignedLettersInput) (*GetAssignedLettersOutput, error) {
	if input == nil || input.TargetID == "" {
		return nil, errors.New("input and target ID cannot be empty")
	}

	entries, err := r.client.HGetAll(ctx, fmt.Sprintf("%s%s", targetLettersKeyPrefix, input.TargetID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned letters: %w", err)
	}

	letters := make(map[models.SlotLetter]string, len(entries))
	for letter, slotID := range entries {
		letters[models.SlotLetter(letter)] = slotID
	}

	return &GetAssignedLettersOutput{Letters: letters}, nil
}

// DeactivateSlot marks an active slot as not shooting. The slot row is
// preserved; only the letter and participation claims are released.
func (r *redisRepository) DeactivateSlot(ctx context.Context, input *DeactivateSlotInput) error {
	if input == nil || input.SlotID == "" {
		return errors.New("input and slot ID cannot be empty")
	}

	slot, err := r.getSlot(ctx, input.SlotID)
	if err != nil {
		return err
	}

	if !slot.IsShooting {
		return ErrSlotNotActive
	}

	slot.IsShooting = false
	slotJSON, err := json.Marshal(slot)
	if err != nil {
		return fmt.Errorf("failed to marshal slot: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", slotKeyPrefix, slot.ID), slotJSON, 0)
	pipe.HDel(ctx, fmt.Sprintf("%s%s", targetLettersKeyPrefix, slot.TargetID), string(slot.Letter))
	pipe.Del(ctx, fmt.Sprintf("%s%s", participantKeyPrefix, slot.ArcherID))
	pipe.SRem(ctx, fmt.Sprintf("%s%s", sessionActiveKeyPrefix, slot.SessionID), slot.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to deactivate slot: %w", err)
	}

	return nil
}

// ReactivateSlot marks an inactive slot as shooting again, re-claiming its
// original letter and the archer's participation. The letter may have been
// taken by another joiner while the slot was inactive; in that case the
// re-join fails rather than reassigning.
func (r *redisRepository) ReactivateSlot(ctx context.Context, input *ReactivateSlotInput) error {
	if input == nil || input.SlotID == "" {
		return errors.New("input and slot ID cannot be empty")
	}

	slot, err := r.getSlot(ctx, input.SlotID)
	if err != nil {
		return err
	}

	if slot.IsShooting {
		return ErrSlotActive
	}

	lettersKey := fmt.Sprintf("%s%s", targetLettersKeyPrefix, slot.TargetID)
	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, slot.ArcherID)

	claimed, err := r.client.HSetNX(ctx, lettersKey, string(slot.Letter), slot.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to claim slot letter: %w", err)
	}
	if !claimed {
		return ErrLetterTaken
	}

	participation := &Participation{
		ArcherID:  slot.ArcherID,
		SessionID: slot.SessionID,
		SlotID:    slot.ID,
	}
	participationJSON, err := json.Marshal(participation)
	if err != nil {
		r.client.HDel(ctx, lettersKey, string(slot.Letter))
		return fmt.Errorf("failed to marshal participation: %w", err)
	}

	registered, err := r.client.SetNX(ctx, participantKey, participationJSON, 0).Result()
	if err != nil {
		r.client.HDel(ctx, lettersKey, string(slot.Letter))
		return fmt.Errorf("failed to register participation: %w", err)
	}
	if !registered {
		r.client.HDel(ctx, lettersKey, string(slot.Letter))
		return ErrArcherParticipating
	}

	slot.IsShooting = true
	slotJSON, err := json.Marshal(slot)
	if err != nil {
		r.rollbackClaims(ctx, lettersKey, slot.Letter, participantKey)
		return fmt.Errorf("failed to marshal slot: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", slotKeyPrefix, slot.ID), slotJSON, 0)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", sessionActiveKeyPrefix, slot.SessionID), slot.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		r.rollbackClaims(ctx, lettersKey, slot.Letter, participantKey)
		return fmt.Errorf("failed to reactivate slot: %w", err)
	}

	return nil
}

// GetParticipation retrieves the archer's active participation, if any
func (r *redisRepository) GetParticipation(ctx context.Context, input *GetParticipationInput) (*Participation, error) {
	if input == nil || input.ArcherID == "" {
		return nil, errors.New("input and archer ID cannot be empty")
	}

	participationJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", participantKeyPrefix, input.ArcherID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipationNotFound
		}
		return nil, fmt.Errorf("failed to get participation: %w", err)
	}

	var participation Participation
	if err := json.Unmarshal([]byte(participationJSON), &participation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participation: %w", err)
	}

	return &participation, nil
}

// HasActiveParticipants reports whether any slot in the session is active
func (r *redisRepository) HasActiveParticipants(ctx context.Context, input *HasActiveParticipantsInput) (bool, error) {
	if input == nil || input.SessionID == "" {
		return false, errors.New("input and session ID cannot be empty")
	}

	active, err := r.client.SCard(ctx, fmt.Sprintf("%s%s", sessionActiveKeyPrefix, input.SessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count active participants: %w", err)
	}

	return active > 0, nil
}

// DeactivateAllInSession marks every active slot in a session as not shooting
func (r *redisRepository) DeactivateAllInSession(ctx context.Context, input *DeactivateAllInSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	slotIDs, err := r.client.SMembers(ctx, fmt.Sprintf("%s%s", sessionActiveKeyPrefix, input.SessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to get active slot IDs: %w", err)
	}

	for _, slotID := range slotIDs {
		if err := r.DeactivateSlot(ctx, &DeactivateSlotInput{SlotID: slotID}); err != nil {
			// Slot raced a concurrent leave; nothing left to release
			if errors.Is(err, ErrSlotNotActive) || errors.Is(err, ErrSlotNotFound) {
				continue
			}
			return err
		}
	}

	return nil
}

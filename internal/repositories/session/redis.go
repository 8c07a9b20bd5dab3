package session

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
	sessionKeyPrefix       = "session:"
	ownerOpenKeyPrefix     = "owner_open:"
	ownerSessionsKeyPrefix = "owner_sessions:"
	openSessionsKey        = "open_sessions"

	// sessionActiveKeyPrefix is the per-session set of active slot IDs.
	// The slot repository maintains it; close reads it under WATCH so a
	// racing join conflicts instead of slipping past the guard.
	sessionActiveKeyPrefix = "session_active:"

	// closeSessionRetries bounds how many times a close re-runs its watch
	// after losing to a concurrent write
	closeSessionRetries = 3
)

var (
	// ErrSessionNotFound is returned when no session matches the lookup
	ErrSessionNotFound = errors.New("session not found")

	// ErrOwnerHasOpenSession is returned when the owner already has an open session
	ErrOwnerHasOpenSession = errors.New("owner already has an open session")

	// ErrActiveParticipants is returned when a session cannot be closed
	// because participants are still shooting
	ErrActiveParticipants = errors.New("session has active participants")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used to stamp sessions; defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator used for session IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed session repository
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

// CreateSession persists a new open session. The owner_open key is claimed
// with SETNX first, so two racing creates for the same owner yield exactly
// one success.
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil || input.OwnerArcherID == "" {
		return nil, errors.New("input and owner archer ID cannot be empty")
	}

	sessionID := r.uuid.NewUUID()
	session := &models.Session{
		ID:            sessionID,
		OwnerArcherID: input.OwnerArcherID,
		Location:      input.Location,
		IsIndoor:      input.IsIndoor,
		IsOpened:      true,
		ShotsPerRound: input.ShotsPerRound,
		CreatedAt:     r.clock.Now(),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	ownerOpenKey := fmt.Sprintf("%s%s", ownerOpenKeyPrefix, input.OwnerArcherID)
	claimed, err := r.client.SetNX(ctx, ownerOpenKey, sessionID, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim owner open session: %w", err)
	}
	if !claimed {
		return nil, ErrOwnerHasOpenSession
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID), sessionJSON, 0)
	pipe.SAdd(ctx, openSessionsKey, sessionID)
	pipe.SAdd(ctx, fmt.Sprintf("%s%s", ownerSessionsKeyPrefix, input.OwnerArcherID), sessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		// Release the owner guard so the owner is not locked out by a
		// half-written session.
		r.client.Del(ctx, ownerOpenKey)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	return r.getSession(ctx, input.SessionID)
}

func (r *redisRepository) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// GetOpenSessionByOwner retrieves the owner's currently open session
func (r *redisRepository) GetOpenSessionByOwner(ctx context.Context, input *GetOpenSessionByOwnerInput) (*models.Session, error) {
	if input == nil || input.OwnerArcherID == "" {
		return nil, errors.New("input and owner archer ID cannot be empty")
	}

	sessionID, err := r.client.Get(ctx, fmt.Sprintf("%s%s", ownerOpenKeyPrefix, input.OwnerArcherID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get open session for owner: %w", err)
	}

	return r.getSession(ctx, sessionID)
}

// CloseSession marks an open session as closed. The session row and the
// session's active-slot set are read under WATCH: if a join lands between
// the participant check and the commit, the transaction aborts instead of
// closing a session that has just gained an active participant.
func (r *redisRepository) CloseSession(ctx context.Context, input *CloseSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	activeKey := fmt.Sprintf("%s%s", sessionActiveKeyPrefix, input.SessionID)

	txf := func(tx *redis.Tx) error {
		sessionJSON, err := tx.Get(ctx, sessionKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to get session: %w", err)
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		if !session.IsOpened {
			return ErrSessionNotFound
		}

		active, err := tx.SCard(ctx, activeKey).Result()
		if err != nil {
			return fmt.Errorf("failed to count active participants: %w", err)
		}
		if active > 0 {
			return ErrActiveParticipants
		}

		closedAt := input.ClosedAt
		session.IsOpened = false
		session.ClosedAt = &closedAt

		updatedJSON, err := json.Marshal(&session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, sessionKey, updatedJSON, 0)
			pipe.SRem(ctx, openSessionsKey, session.ID)
			pipe.Del(ctx, fmt.Sprintf("%s%s", ownerOpenKeyPrefix, session.OwnerArcherID))
			return nil
		})
		return err
	}

	// A failed transaction means the watched keys moved between the read
	// and the commit. Re-running the watch re-reads the session, so a
	// close that lost to another close reports ErrSessionNotFound and one
	// that lost to a join reports ErrActiveParticipants.
	for attempt := 0; attempt < closeSessionRetries; attempt++ {
		err := r.client.Watch(ctx, txf, sessionKey, activeKey)
		if err != redis.TxFailedErr {
			return err
		}
	}

	// Participation kept churning through every retry
	return ErrActiveParticipants
}

// ReopenSession marks a closed session as open again
func (r *redisRepository) ReopenSession(ctx context.Context, input *ReopenSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.getSession(ctx, input.SessionID)
	if err != nil {
		return err
	}

	if session.IsOpened {
		return ErrSessionNotFound
	}

	ownerOpenKey := fmt.Sprintf("%s%s", ownerOpenKeyPrefix, session.OwnerArcherID)
	claimed, err := r.client.SetNX(ctx, ownerOpenKey, session.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim owner open session: %w", err)
	}
	if !claimed {
		return ErrOwnerHasOpenSession
	}

	session.IsOpened = true
	session.ClosedAt = nil

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		r.client.Del(ctx, ownerOpenKey)
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", sessionKeyPrefix, session.ID), sessionJSON, 0)
	pipe.SAdd(ctx, openSessionsKey, session.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		r.client.Del(ctx, ownerOpenKey)
		return fmt.Errorf("failed to reopen session: %w", err)
	}

	return nil
}

// ListOpenSessions retrieves all currently open sessions
func (r *redisRepository) ListOpenSessions(ctx context.Context, input *ListOpenSessionsInput) (*ListOpenSessionsOutput, error) {
	sessionIDs, err := r.client.SMembers(ctx, openSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get open session IDs: %w", err)
	}

	sessions, err := r.getSessions(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	return &ListOpenSessionsOutput{Sessions: sessions}, nil
}

// ListClosedSessionsByOwner retrieves all closed sessions owned by an archer
func (r *redisRepository) ListClosedSessionsByOwner(ctx context.Context, input *ListClosedSessionsByOwnerInput) (*ListClosedSessionsByOwnerOutput, error) {
	if input == nil || input.OwnerArcherID == "" {
		return nil, errors.New("input and owner archer ID cannot be empty")
	}

	sessionIDs, err := r.client.SMembers(ctx, fmt.Sprintf("%s%s", ownerSessionsKeyPrefix, input.OwnerArcherID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get owner session IDs: %w", err)
	}

	sessions, err := r.getSessions(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	closed := make([]*models.Session, 0, len(sessions))
	for _, session := range sessions {
		if !session.IsOpened {
			closed = append(closed, session)
		}
	}

	return &ListClosedSessionsByOwnerOutput{Sessions: closed}, nil
}

func (r *redisRepository) getSessions(ctx context.Context, sessionIDs []string) ([]*models.Session, error) {
	if len(sessionIDs) == 0 {
		return []*models.Session{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(sessionIDs))
	for _, sessionID := range sessionIDs {
		commands[sessionID] = pipe.Get(ctx, fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for sessionID, cmd := range commands {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Session was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionID, err)
		}

		sessions = append(sessions, &session)
	}

	return sessions, nil
}

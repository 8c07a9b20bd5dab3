package shot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/archylab/archy/internal/repositories/shot Repository

import (
	"context"

	"github.com/archylab/archy/internal/models"
)

// Repository defines the interface for shot persistence and the
// commit-time change-event feed. Shots are append-only.
type Repository interface {
	// CreateShot persists a new shot and publishes its score on the
	// slot's change-event channel once the write has committed
	CreateShot(ctx context.Context, input *CreateShotInput) (*models.Shot, error)

	// GetShot retrieves a shot by ID
	GetShot(ctx context.Context, input *GetShotInput) (*models.Shot, error)

	// GetScores retrieves all scores for a slot in commit order
	GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error)

	// Subscribe opens a change-event subscription for one slot's shots.
	// The caller must Close the subscription when done.
	Subscribe(ctx context.Context, input *SubscribeInput) (Subscription, error)
}

// Subscription is a live feed of change-event payloads for one slot.
// Payloads arrive in commit order of the underlying shot inserts.
type Subscription interface {
	// Events delivers raw payloads. The channel closes when the
	// subscription ends; closure without a prior Close call means the
	// underlying connection was lost.
	Events() <-chan []byte

	// Close releases the underlying channel subscription
	Close() error
}

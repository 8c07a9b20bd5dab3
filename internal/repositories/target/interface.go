package target

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/archylab/archy/internal/repositories/target Repository

import (
	"context"

	"github.com/archylab/archy/internal/models"
)

// Repository defines the interface for target data persistence
type Repository interface {
	// CreateTarget persists a new target on the given lane
	CreateTarget(ctx context.Context, input *CreateTargetInput) (*models.Target, error)

	// GetTarget retrieves a target by ID
	GetTarget(ctx context.Context, input *GetTargetInput) (*models.Target, error)

	// GetTargetsByDistance retrieves a session's targets at the given
	// distance, ordered by lane ascending
	GetTargetsByDistance(ctx context.Context, input *GetTargetsByDistanceInput) (*GetTargetsByDistanceOutput, error)

	// NextLane allocates the next lane number for a session
	NextLane(ctx context.Context, input *NextLaneInput) (int, error)
}

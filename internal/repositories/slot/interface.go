package slot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/archylab/archy/internal/repositories/slot Repository

import (
	"context"

	"github.com/archylab/archy/internal/models"
)

// Repository defines the interface for slot assignment persistence
type Repository interface {
	// CreateSlot persists a new active slot assignment, atomically
	// claiming the (target, letter) pair and the archer's participation
	CreateSlot(ctx context.Context, input *CreateSlotInput) (*models.Slot, error)

	// GetSlot retrieves a slot by ID
	GetSlot(ctx context.Context, input *GetSlotInput) (*models.Slot, error)

	// GetAssignedLetters retrieves the letters currently in use on a target
	GetAssignedLetters(ctx context.Context, input *GetAssignedLettersInput) (*GetAssignedLettersOutput, error)

	// DeactivateSlot marks an active slot as not shooting, freeing its
	// letter and the archer's participation. The row survives for
	// re-join and shot history.
	DeactivateSlot(ctx context.Context, input *DeactivateSlotInput) error

	// ReactivateSlot marks an inactive slot as shooting again on its
	// original target and letter
	ReactivateSlot(ctx context.Context, input *ReactivateSlotInput) error

	// GetParticipation retrieves the archer's active participation, if any
	GetParticipation(ctx context.Context, input *GetParticipationInput) (*Participation, error)

	// HasActiveParticipants reports whether any slot in the session is active
	HasActiveParticipants(ctx context.Context, input *HasActiveParticipantsInput) (bool, error)

	// DeactivateAllInSession marks every active slot in a session as not
	// shooting. Administrative path only; session close never cascades.
	DeactivateAllInSession(ctx context.Context, input *DeactivateAllInSessionInput) error
}

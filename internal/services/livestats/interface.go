package livestats

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/archylab/archy/internal/services/livestats Service

// Service handles shot recording and per-slot live statistics
type Service interface {
	// RecordShot persists a single shot against a slot and publishes it
	// to the slot's change channel
	RecordShot(ctx context.Context, input *RecordShotInput) (*RecordShotOutput, error)

	// GetLiveStat returns the current score history and aggregate for a slot
	GetLiveStat(ctx context.Context, input *GetLiveStatInput) (*GetLiveStatOutput, error)

	// Stream opens an ordered feed of live statistics for a slot. The
	// first emission is the current snapshot; every shot recorded after
	// that produces exactly one further emission carrying the new scores
	// and the recomputed aggregate. The feed ends cleanly when ctx is
	// cancelled, or with ErrChannelLost on the error channel when the
	// underlying subscription dies.
	Stream(ctx context.Context, input *StreamInput) (*StreamOutput, error)
}

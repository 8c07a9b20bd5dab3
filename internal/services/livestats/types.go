package livestats

import (
	shotRepo "github.com/archylab/archy/internal/repositories/shot"
	slotRepo "github.com/archylab/archy/internal/repositories/slot"

	"github.com/archylab/archy/internal/models"
)

// Config holds the dependencies for the live stats service
type Config struct {
	ShotRepo shotRepo.Repository
	SlotRepo slotRepo.Repository
}

// RecordShotInput holds the data for recording a shot
type RecordShotInput struct {
	SlotID  string
	X       *float64
	Y       *float64
	Score   *int
	ArrowID string
}

// RecordShotOutput holds the recorded shot
type RecordShotOutput struct {
	Shot *models.Shot
}

// GetLiveStatInput identifies the slot to read
type GetLiveStatInput struct {
	SlotID string
}

// GetLiveStatOutput holds the current score history and aggregate
type GetLiveStatOutput struct {
	LiveStat *models.LiveStat
}

// StreamInput identifies the slot to stream
type StreamInput struct {
	SlotID string
}

// StreamOutput carries the live feed. Events is closed on clean
// shutdown; a value on Errs means the feed failed and will produce
// nothing further.
type StreamOutput struct {
	Events <-chan *models.LiveStat
	Errs   <-chan error
}

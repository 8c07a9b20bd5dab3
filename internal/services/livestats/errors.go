package livestats

// StatsError is a custom error type for live statistics errors
type StatsError string

// Error implements the error interface
func (e StatsError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrChannelLost signals that the change-event subscription ended
	// unexpectedly; the stream fails rather than ending quietly
	ErrChannelLost StatsError = "change-event channel lost"

	ErrSlotNotFound StatsError = "slot not found"
	ErrNilConfig    StatsError = "config cannot be nil"
	ErrNilShotRepo  StatsError = "shot repository cannot be nil"
	ErrNilSlotRepo  StatsError = "slot repository cannot be nil"
)

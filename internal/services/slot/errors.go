package slot

// SlotError is a custom error type for slot allocation errors
type SlotError string

// Error implements the error interface
func (e SlotError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotOpen       SlotError = "session doesn't exist or it was already closed"
	ErrAlreadyParticipating SlotError = "archer already participating in an open session"
	ErrAlreadyJoined        SlotError = "archer already joined this session"
	ErrNotAllowed           SlotError = "archer is not allowed to modify this slot"
	ErrNotParticipating     SlotError = "slot is not active"
	ErrAlreadyActive        SlotError = "slot is already active"
	ErrSessionClosed        SlotError = "session is closed"
	ErrLetterConflict       SlotError = "slot letter is no longer available"
	ErrInvalidDistance      SlotError = "distance must be between 1 and 100"
	ErrNilConfig            SlotError = "config cannot be nil"
	ErrNilSessionRepo       SlotError = "session repository cannot be nil"
	ErrNilTargetRepo        SlotError = "target repository cannot be nil"
	ErrNilSlotRepo          SlotError = "slot repository cannot be nil"
)

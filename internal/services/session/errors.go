package session

// SessionError is a custom error type for session registry errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrAlreadyOpen           SessionError = "archer already has an open session"
	ErrAlreadyParticipating  SessionError = "archer already participating in an open session"
	ErrNotFound              SessionError = "session not found"
	ErrHasActiveParticipants SessionError = "cannot close session with active participants"
	ErrNotOwner              SessionError = "archer is not allowed to reopen this session"
	ErrNilConfig             SessionError = "config cannot be nil"
	ErrNilSessionRepo        SessionError = "session repository cannot be nil"
	ErrNilSlotRepo           SessionError = "slot repository cannot be nil"
	ErrNilClock              SessionError = "clock cannot be nil"
)

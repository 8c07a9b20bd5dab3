package session

import "context"

// Service defines the interface for the session registry: the open/closed
// state machine for practice sessions
type Service interface {
	// Open creates a new open session for the owner
	Open(ctx context.Context, input *OpenInput) (*OpenOutput, error)

	// Close marks an open session as closed
	Close(ctx context.Context, input *CloseInput) (*CloseOutput, error)

	// Reopen marks a closed session as open again, owner only
	Reopen(ctx context.Context, input *ReopenInput) (*ReopenOutput, error)

	// OwnerOpenSession looks up the owner's currently open session, if any
	OwnerOpenSession(ctx context.Context, input *OwnerOpenSessionInput) (*OwnerOpenSessionOutput, error)

	// IsParticipating looks up the open session an archer is actively
	// shooting in, if any
	IsParticipating(ctx context.Context, input *IsParticipatingInput) (*IsParticipatingOutput, error)

	// ListOpenSessions retrieves all currently open sessions
	ListOpenSessions(ctx context.Context, input *ListOpenSessionsInput) (*ListOpenSessionsOutput, error)

	// ListClosedSessions retrieves the owner's closed sessions
	ListClosedSessions(ctx context.Context, input *ListClosedSessionsInput) (*ListClosedSessionsOutput, error)
}

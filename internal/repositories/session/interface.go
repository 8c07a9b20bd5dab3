package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/archylab/archy/internal/repositories/session Repository

import (
	"context"

	"github.com/archylab/archy/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// CreateSession persists a new open session, enforcing the
	// single-open-session-per-owner constraint
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetOpenSessionByOwner retrieves the owner's currently open session
	GetOpenSessionByOwner(ctx context.Context, input *GetOpenSessionByOwnerInput) (*models.Session, error)

	// CloseSession marks an open session as closed, failing if any
	// participant in the session is still shooting
	CloseSession(ctx context.Context, input *CloseSessionInput) error

	// ReopenSession marks a closed session as open again
	ReopenSession(ctx context.Context, input *ReopenSessionInput) error

	// ListOpenSessions retrieves all currently open sessions
	ListOpenSessions(ctx context.Context, input *ListOpenSessionsInput) (*ListOpenSessionsOutput, error)

	// ListClosedSessionsByOwner retrieves all closed sessions owned by an archer
	ListClosedSessionsByOwner(ctx context.Context, input *ListClosedSessionsByOwnerInput) (*ListClosedSessionsByOwnerOutput, error)
}

package session

import (
	"time"

	"github.com/archylab/archy/internal/models"
)

type CreateSessionInput struct {
	OwnerArcherID string
	Location      string
	IsIndoor      bool
	ShotsPerRound int
}

type GetSessionInput struct {
	SessionID string
}

type GetOpenSessionByOwnerInput struct {
	OwnerArcherID string
}

type CloseSessionInput struct {
	SessionID string
	ClosedAt  time.Time
}

type ReopenSessionInput struct {
	SessionID string
}

type ListOpenSessionsInput struct {
}

type ListOpenSessionsOutput struct {
	Sessions []*models.Session
}

type ListClosedSessionsByOwnerInput struct {
	OwnerArcherID string
}

type ListClosedSessionsByOwnerOutput struct {
	Sessions []*models.Session
}

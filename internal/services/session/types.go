package session

import (
	"github.com/archylab/archy/internal/common/clock"
	"github.com/archylab/archy/internal/models"
	sessionRepo "github.com/archylab/archy/internal/repositories/session"
	slotRepo "github.com/archylab/archy/internal/repositories/slot"
)

// Config holds configuration for the session registry service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	SlotRepo    slotRepo.Repository

	// Clock used to stamp session closes
	Clock clock.Clock
}

type OpenInput struct {
	OwnerArcherID string
	Location      string
	IsIndoor      bool
	ShotsPerRound int
}

type OpenOutput struct {
	Session *models.Session
}

type CloseInput struct {
	SessionID string
}

type CloseOutput struct {
}

type ReopenInput struct {
	SessionID   string
	RequesterID string
}

type ReopenOutput struct {
}

type OwnerOpenSessionInput struct {
	OwnerArcherID string
}

type OwnerOpenSessionOutput struct {
	// Session is nil when the owner has no open session
	Session *models.Session
}

type IsParticipatingInput struct {
	ArcherID string
}

type IsParticipatingOutput struct {
	// SessionID and SlotID are empty when the archer is not an active
	// participant anywhere
	SessionID string
	SlotID    string
}

type ListOpenSessionsInput struct {
}

type ListOpenSessionsOutput struct {
	Sessions []*models.Session
}

type ListClosedSessionsInput struct {
	OwnerArcherID string
}

type ListClosedSessionsOutput struct {
	Sessions []*models.Session
}

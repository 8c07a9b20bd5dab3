package slot

import (
	"github.com/archylab/archy/internal/models"
	sessionRepo "github.com/archylab/archy/internal/repositories/session"
	slotRepo "github.com/archylab/archy/internal/repositories/slot"
	targetRepo "github.com/archylab/archy/internal/repositories/target"
)

// Config holds configuration for the slot allocator service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	TargetRepo  targetRepo.Repository
	SlotRepo    slotRepo.Repository
}

type JoinInput struct {
	SessionID string
	ArcherID  string

	// Distance is the requested shooting distance in meters (1-100)
	Distance int

	// FaceType is the requested target face (e.g. "40cm")
	FaceType string

	// BowStyle, DrawWeight and ClubID are copied onto the slot at join
	// time to keep the session record historically accurate
	BowStyle   string
	DrawWeight float64
	ClubID     string
}

type JoinOutput struct {
	TargetID string
	SlotID   string

	// Code is the human-readable slot code, e.g. "2C"
	Code string
}

type LeaveInput struct {
	SlotID      string
	RequesterID string
}

type LeaveOutput struct {
}

type RejoinInput struct {
	SlotID      string
	RequesterID string
}

type RejoinOutput struct {
	// Code is the human-readable slot code, unchanged from the
	// original assignment
	Code string
}

type ActiveSlotInput struct {
	ArcherID string
}

type ActiveSlotOutput struct {
	Slot *models.Slot

	// Code is the human-readable slot code for the active assignment
	Code string
}

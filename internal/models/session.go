package models

import (
	"time"
)

// Session represents a bounded archery practice event owned by a single archer
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// OwnerArcherID is the archer who opened the session
	OwnerArcherID string

	// Location is a free-form label for where the session takes place
	Location string

	// IsIndoor indicates whether the session is held indoors
	IsIndoor bool

	// IsOpened indicates whether the session is currently open
	IsOpened bool

	// ShotsPerRound is the number of shots per round for this session format
	ShotsPerRound int

	// CreatedAt is when the session was opened
	CreatedAt time.Time

	// ClosedAt is when the session was closed; nil while the session is open
	ClosedAt *time.Time
}

package models

import (
	"time"
)

// Target represents a single physical lane position at a fixed distance
// within a session, hosting up to four slots (A-D)
type Target struct {
	// ID is the unique identifier for the target
	ID string

	// SessionID is the session this target belongs to
	SessionID string

	// Distance is the shooting distance in meters (1-100)
	Distance int

	// Lane is the lane number, unique per session and monotonically assigned
	Lane int

	// CreatedAt is when the target was created
	CreatedAt time.Time
}

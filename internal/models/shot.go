package models

import (
	"time"
)

// Shot represents a single arrow release recorded against a slot.
// X, Y and Score are either all present (a scored landing) or all nil
// (the arrow never reached the target). Shots are append-only.
type Shot struct {
	// ID is the unique identifier for the shot
	ID string

	// SlotID is the slot assignment this shot belongs to
	SlotID string

	// X is the landing X coordinate in millimeters, nil if unscored
	X *float64

	// Y is the landing Y coordinate in millimeters, nil if unscored
	Y *float64

	// Score is the computed score (0-10), nil if unscored
	Score *int

	// ArrowID optionally identifies the arrow that was shot
	ArrowID string

	// CreatedAt is when the shot was recorded
	CreatedAt time.Time
}

// ShotScore is the compact per-shot payload carried by change events and
// streamed to live subscribers alongside the recomputed aggregate
type ShotScore struct {
	// ShotID is the shot this score belongs to
	ShotID string `json:"shot_id"`

	// Score is the shot's score, nil if the shot was unscored
	Score *int `json:"score"`

	// CreatedAt is when the shot was recorded
	CreatedAt time.Time `json:"created_at"`
}

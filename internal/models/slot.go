package models

import (
	"fmt"
	"time"
)

// SlotLetter identifies one of the four positions on a target
type SlotLetter string

const (
	// SlotLetterA is the first slot position on a target
	SlotLetterA SlotLetter = "A"

	// SlotLetterB is the second slot position on a target
	SlotLetterB SlotLetter = "B"

	// SlotLetterC is the third slot position on a target
	SlotLetterC SlotLetter = "C"

	// SlotLetterD is the fourth slot position on a target
	SlotLetterD SlotLetter = "D"
)

// SlotLetters lists all letters in assignment order. Allocation always
// picks the lowest free letter, so a vacated letter is reused by the
// next joiner.
var SlotLetters = []SlotLetter{SlotLetterA, SlotLetterB, SlotLetterC, SlotLetterD}

// Slot represents an archer's assignment to a letter position on a target.
// BowStyle, DrawWeight and ClubID are copied from the archer at join time
// so the session record stays accurate if the archer's profile changes later.
type Slot struct {
	// ID is the unique identifier for the slot assignment
	ID string

	// TargetID is the target this slot belongs to
	TargetID string

	// SessionID is the session this slot belongs to
	SessionID string

	// ArcherID is the archer assigned to this slot
	ArcherID string

	// Letter is the slot position on the target (A-D)
	Letter SlotLetter

	// IsShooting indicates whether the assignment is currently active
	IsShooting bool

	// FaceType is the target face requested at join time (e.g. "40cm")
	FaceType string

	// BowStyle is the archer's bow style copied at join time
	BowStyle string

	// DrawWeight is the archer's draw weight copied at join time
	DrawWeight float64

	// ClubID is the archer's club at join time, empty if none
	ClubID string

	// CreatedAt is when the slot assignment was created
	CreatedAt time.Time
}

// Code returns the human-readable slot code for a lane, e.g. "3B"
func (s *Slot) Code(lane int) string {
	return fmt.Sprintf("%d%s", lane, s.Letter)
}

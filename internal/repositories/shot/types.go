package shot

import "github.com/archylab/archy/internal/models"

type CreateShotInput struct {
	SlotID string

	// X, Y and Score must all be set or all be nil: a scored landing has
	// all three, an arrow that never reached the target has none
	X     *float64
	Y     *float64
	Score *int

	// ArrowID optionally identifies the arrow that was shot
	ArrowID string
}

type GetShotInput struct {
	ShotID string
}

type GetScoresInput struct {
	SlotID string
}

type GetScoresOutput struct {
	Scores []*models.ShotScore
}

type SubscribeInput struct {
	SlotID string
}

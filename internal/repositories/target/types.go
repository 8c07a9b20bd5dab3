package target

import "github.com/archylab/archy/internal/models"

type CreateTargetInput struct {
	SessionID string
	Distance  int
	Lane      int
}

type GetTargetInput struct {
	TargetID string
}

type GetTargetsByDistanceInput struct {
	SessionID string
	Distance  int
}

type GetTargetsByDistanceOutput struct {
	Targets []*models.Target
}

type NextLaneInput struct {
	SessionID string
}

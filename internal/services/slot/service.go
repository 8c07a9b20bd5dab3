package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/archylab/archy/internal/models"
	sessionRepo "github.com/archylab/archy/internal/repositories/session"
	slotRepo "github.com/archylab/archy/internal/repositories/slot"
	targetRepo "github.com/archylab/archy/internal/repositories/target"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	targetRepo  targetRepo.Repository
	slotRepo    slotRepo.Repository
}

// New creates a new slot allocator service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.TargetRepo == nil {
		return nil, ErrNilTargetRepo
	}
	if cfg.SlotRepo == nil {
		return nil, ErrNilSlotRepo
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		targetRepo:  cfg.TargetRepo,
		slotRepo:    cfg.SlotRepo,
	}, nil
}

// Join assigns the archer to a target and letter at the requested
// distance. Targets are scanned in lane order and the lowest free letter
// wins, so a letter vacated by a leave is reused by the next joiner.
// When no target at the distance has a free letter, a new lane is
// allocated; distance is a hard partition key, never a fallback filter.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil || input.SessionID == "" || input.ArcherID == "" {
		return nil, errors.New("input, session ID and archer ID cannot be empty")
	}

	if input.Distance < 1 || input.Distance > 100 {
		return nil, ErrInvalidDistance
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotOpen
		}
		return nil, err
	}
	if !session.IsOpened {
		return nil, ErrSessionNotOpen
	}

	participation, err := s.slotRepo.GetParticipation(ctx, &slotRepo.GetParticipationInput{
		ArcherID: input.ArcherID,
	})
	if err == nil {
		if participation.SessionID == input.SessionID {
			return nil, ErrAlreadyJoined
		}
		return nil, ErrAlreadyParticipating
	}
	if !errors.Is(err, slotRepo.ErrParticipationNotFound) {
		return nil, err
	}

	targets, err := s.targetRepo.GetTargetsByDistance(ctx, &targetRepo.GetTargetsByDistanceInput{
		SessionID: input.SessionID,
		Distance:  input.Distance,
	})
	if err != nil {
		return nil, err
	}

	for _, candidate := range targets.Targets {
		created, err := s.claimOnTarget(ctx, input, candidate)
		if err != nil {
			return nil, err
		}
		if created != nil {
			return &JoinOutput{
				TargetID: created.TargetID,
				SlotID:   created.ID,
				Code:     created.Code(candidate.Lane),
			}, nil
		}
	}

	// Every existing target at this distance is full (or none exists):
	// allocate a fresh lane.
	lane, err := s.targetRepo.NextLane(ctx, &targetRepo.NextLaneInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	created, err := s.targetRepo.CreateTarget(ctx, &targetRepo.CreateTargetInput{
		SessionID: input.SessionID,
		Distance:  input.Distance,
		Lane:      lane,
	})
	if err != nil {
		return nil, err
	}

	assigned, err := s.claimOnTarget(ctx, input, created)
	if err != nil {
		return nil, err
	}
	if assigned == nil {
		// A fresh lane filled up before we could claim any letter; the
		// caller can simply retry.
		return nil, ErrLetterConflict
	}

	return &JoinOutput{
		TargetID: assigned.TargetID,
		SlotID:   assigned.ID,
		Code:     assigned.Code(created.Lane),
	}, nil
}

// claimOnTarget attempts to claim the lowest free letter on the target.
// A lost HSETNX race re-reads the letters and tries again, so two joins
// racing for the same target can never both hold the same letter. Returns
// nil without error when the target has no free letter.
func (s *service) claimOnTarget(ctx context.Context, input *JoinInput, target *models.Target) (*models.Slot, error) {
	for range models.SlotLetters {
		assigned, err := s.slotRepo.GetAssignedLetters(ctx, &slotRepo.GetAssignedLettersInput{
			TargetID: target.ID,
		})
		if err != nil {
			return nil, err
		}

		letter, ok := lowestFreeLetter(assigned.Letters)
		if !ok {
			return nil, nil
		}

		created, err := s.slotRepo.CreateSlot(ctx, &slotRepo.CreateSlotInput{
			SessionID:  input.SessionID,
			TargetID:   target.ID,
			ArcherID:   input.ArcherID,
			Letter:     letter,
			FaceType:   input.FaceType,
			BowStyle:   input.BowStyle,
			DrawWeight: input.DrawWeight,
			ClubID:     input.ClubID,
		})
		if err != nil {
			if errors.Is(err, slotRepo.ErrLetterTaken) {
				continue
			}
			if errors.Is(err, slotRepo.ErrArcherParticipating) {
				// A concurrent join won the participation guard; re-read
				// it to report which session already holds the archer
				participation, perr := s.slotRepo.GetParticipation(ctx, &slotRepo.GetParticipationInput{
					ArcherID: input.ArcherID,
				})
				if perr == nil && participation.SessionID == input.SessionID {
					return nil, ErrAlreadyJoined
				}
				return nil, ErrAlreadyParticipating
			}
			return nil, err
		}

		return created, nil
	}

	return nil, nil
}

func lowestFreeLetter(assigned map[models.SlotLetter]string) (models.SlotLetter, bool) {
	for _, letter := range models.SlotLetters {
		if _, taken := assigned[letter]; !taken {
			return letter, true
		}
	}
	return "", false
}

// Leave deactivates the requester's slot assignment. The slot row and its
// target and letter association survive for re-join and shot history.
func (s *service) Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error) {
	if input == nil || input.SlotID == "" || input.RequesterID == "" {
		return nil, errors.New("input, slot ID and requester ID cannot be empty")
	}

	slot, err := s.slotRepo.GetSlot(ctx, &slotRepo.GetSlotInput{SlotID: input.SlotID})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrNotParticipating
		}
		return nil, err
	}

	if slot.ArcherID != input.RequesterID {
		return nil, ErrNotAllowed
	}

	if !slot.IsShooting {
		return nil, ErrNotParticipating
	}

	err = s.slotRepo.DeactivateSlot(ctx, &slotRepo.DeactivateSlotInput{SlotID: input.SlotID})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotActive) {
			return nil, ErrNotParticipating
		}
		return nil, err
	}

	return &LeaveOutput{}, nil
}

// Rejoin reactivates a previously vacated slot. The assignment keeps its
// original target and letter; re-join never runs the allocation
// algorithm. A missing slot reports ErrNotAllowed so an unauthorized
// caller learns nothing about whether the slot exists.
func (s *service) Rejoin(ctx context.Context, input *RejoinInput) (*RejoinOutput, error) {
	if input == nil || input.SlotID == "" || input.RequesterID == "" {
		return nil, errors.New("input, slot ID and requester ID cannot be empty")
	}

	slot, err := s.slotRepo.GetSlot(ctx, &slotRepo.GetSlotInput{SlotID: input.SlotID})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrNotAllowed
		}
		return nil, err
	}

	if slot.ArcherID != input.RequesterID {
		return nil, ErrNotAllowed
	}

	if slot.IsShooting {
		return nil, ErrAlreadyActive
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: slot.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionClosed
		}
		return nil, err
	}
	if !session.IsOpened {
		return nil, ErrSessionClosed
	}

	err = s.slotRepo.ReactivateSlot(ctx, &slotRepo.ReactivateSlotInput{SlotID: input.SlotID})
	if err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotActive):
			return nil, ErrAlreadyActive
		case errors.Is(err, slotRepo.ErrLetterTaken):
			return nil, ErrLetterConflict
		case errors.Is(err, slotRepo.ErrArcherParticipating):
			return nil, ErrAlreadyParticipating
		}
		return nil, err
	}

	target, err := s.targetRepo.GetTarget(ctx, &targetRepo.GetTargetInput{
		TargetID: slot.TargetID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get target for reactivated slot: %w", err)
	}

	return &RejoinOutput{Code: slot.Code(target.Lane)}, nil
}

// ActiveSlot looks up the archer's currently active slot
func (s *service) ActiveSlot(ctx context.Context, input *ActiveSlotInput) (*ActiveSlotOutput, error) {
	if input == nil || input.ArcherID == "" {
		return nil, errors.New("input and archer ID cannot be empty")
	}

	participation, err := s.slotRepo.GetParticipation(ctx, &slotRepo.GetParticipationInput{
		ArcherID: input.ArcherID,
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrParticipationNotFound) {
			return nil, ErrNotParticipating
		}
		return nil, err
	}

	slot, err := s.slotRepo.GetSlot(ctx, &slotRepo.GetSlotInput{SlotID: participation.SlotID})
	if err != nil {
		return nil, err
	}

	target, err := s.targetRepo.GetTarget(ctx, &targetRepo.GetTargetInput{
		TargetID: slot.TargetID,
	})
	if err != nil {
		return nil, err
	}

	return &ActiveSlotOutput{
		Slot: slot,
		Code: slot.Code(target.Lane),
	}, nil
}

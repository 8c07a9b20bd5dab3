package session

import (
	"context"
	"errors"

	"github.com/archylab/archy/internal/common/clock"
	sessionRepo "github.com/archylab/archy/internal/repositories/session"
	slotRepo "github.com/archylab/archy/internal/repositories/slot"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	slotRepo    slotRepo.Repository
	clock       clock.Clock
}

// New creates a new session registry service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.SlotRepo == nil {
		return nil, ErrNilSlotRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		slotRepo:    cfg.SlotRepo,
		clock:       cfg.Clock,
	}, nil
}

// Open creates a new open session for the owner. The owner must not
// already own an open session and must not be an active participant in
// any open session, including one they do not own.
func (s *service) Open(ctx context.Context, input *OpenInput) (*OpenOutput, error) {
	if input == nil || input.OwnerArcherID == "" {
		return nil, errors.New("input and owner archer ID cannot be empty")
	}

	_, err := s.slotRepo.GetParticipation(ctx, &slotRepo.GetParticipationInput{
		ArcherID: input.OwnerArcherID,
	})
	if err == nil {
		return nil, ErrAlreadyParticipating
	}
	if !errors.Is(err, slotRepo.ErrParticipationNotFound) {
		return nil, err
	}

	created, err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		OwnerArcherID: input.OwnerArcherID,
		Location:      input.Location,
		IsIndoor:      input.IsIndoor,
		ShotsPerRound: input.ShotsPerRound,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrOwnerHasOpenSession) {
			return nil, ErrAlreadyOpen
		}
		return nil, err
	}

	return &OpenOutput{Session: created}, nil
}

// Close marks an open session as closed. It fails while any participant
// in the session is still shooting; it never cascades a deactivation.
func (s *service) Close(ctx context.Context, input *CloseInput) (*CloseOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	err := s.sessionRepo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
		SessionID: input.SessionID,
		ClosedAt:  s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, sessionRepo.ErrActiveParticipants) {
			return nil, ErrHasActiveParticipants
		}
		return nil, err
	}

	return &CloseOutput{}, nil
}

// Reopen marks a closed session as open again. Only the session's owner
// may reopen it.
func (s *service) Reopen(ctx context.Context, input *ReopenInput) (*ReopenOutput, error) {
	if input == nil || input.SessionID == "" || input.RequesterID == "" {
		return nil, errors.New("input, session ID and requester ID cannot be empty")
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Reopen only applies to a currently closed session
	if session.IsOpened {
		return nil, ErrNotFound
	}

	if session.OwnerArcherID != input.RequesterID {
		return nil, ErrNotOwner
	}

	err = s.sessionRepo.ReopenSession(ctx, &sessionRepo.ReopenSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, sessionRepo.ErrOwnerHasOpenSession) {
			return nil, ErrAlreadyOpen
		}
		return nil, err
	}

	return &ReopenOutput{}, nil
}

// OwnerOpenSession looks up the owner's currently open session, if any
func (s *service) OwnerOpenSession(ctx context.Context, input *OwnerOpenSessionInput) (*OwnerOpenSessionOutput, error) {
	if input == nil || input.OwnerArcherID == "" {
		return nil, errors.New("input and owner archer ID cannot be empty")
	}

	session, err := s.sessionRepo.GetOpenSessionByOwner(ctx, &sessionRepo.GetOpenSessionByOwnerInput{
		OwnerArcherID: input.OwnerArcherID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return &OwnerOpenSessionOutput{}, nil
		}
		return nil, err
	}

	return &OwnerOpenSessionOutput{Session: session}, nil
}

// IsParticipating looks up the open session an archer is actively
// shooting in, if any
func (s *service) IsParticipating(ctx context.Context, input *IsParticipatingInput) (*IsParticipatingOutput, error) {
	if input == nil || input.ArcherID == "" {
		return nil, errors.New("input and archer ID cannot be empty")
	}

	participation, err := s.slotRepo.GetParticipation(ctx, &slotRepo.GetParticipationInput{
		ArcherID: input.ArcherID,
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrParticipationNotFound) {
			return &IsParticipatingOutput{}, nil
		}
		return nil, err
	}

	return &IsParticipatingOutput{
		SessionID: participation.SessionID,
		SlotID:    participation.SlotID,
	}, nil
}

// ListOpenSessions retrieves all currently open sessions
func (s *service) ListOpenSessions(ctx context.Context, input *ListOpenSessionsInput) (*ListOpenSessionsOutput, error) {
	out, err := s.sessionRepo.ListOpenSessions(ctx, &sessionRepo.ListOpenSessionsInput{})
	if err != nil {
		return nil, err
	}

	return &ListOpenSessionsOutput{Sessions: out.Sessions}, nil
}

// ListClosedSessions retrieves the owner's closed sessions
func (s *service) ListClosedSessions(ctx context.Context, input *ListClosedSessionsInput) (*ListClosedSessionsOutput, error) {
	if input == nil || input.OwnerArcherID == "" {
		return nil, errors.New("input and owner archer ID cannot be empty")
	}

	out, err := s.sessionRepo.ListClosedSessionsByOwner(ctx, &sessionRepo.ListClosedSessionsByOwnerInput{
		OwnerArcherID: input.OwnerArcherID,
	})
	if err != nil {
		return nil, err
	}

	return &ListClosedSessionsOutput{Sessions: out.Sessions}, nil
}

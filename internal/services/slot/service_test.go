package slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/archylab/archy/internal/models"
	sessionRepo "github.com/archylab/archy/internal/repositories/session"
	sessionMocks "github.com/archylab/archy/internal/repositories/session/mocks"
	slotRepo "github.com/archylab/archy/internal/repositories/slot"
	slotMocks "github.com/archylab/archy/internal/repositories/slot/mocks"
	targetRepo "github.com/archylab/archy/internal/repositories/target"
	targetMocks "github.com/archylab/archy/internal/repositories/target/mocks"
)

type SlotServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockTargetRepo  *targetMocks.MockRepository
	mockSlotRepo    *slotMocks.MockRepository
	service         Service
	ctx             context.Context

	testTime      time.Time
	testSessionID string
	testArcherID  string

	openSession *models.Session
	laneTarget  *models.Target
}

func (s *SlotServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockTargetRepo = targetMocks.NewMockRepository(s.mockCtrl)
	s.mockSlotRepo = slotMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.testArcherID = "test-archer-id"

	s.openSession = &models.Session{
		ID:            s.testSessionID,
		OwnerArcherID: "test-owner-id",
		IsOpened:      true,
		CreatedAt:     s.testTime,
	}
	s.laneTarget = &models.Target{
		ID:        "target-one",
		SessionID: s.testSessionID,
		Distance:  18,
		Lane:      1,
		CreatedAt: s.testTime,
	}

	service, err := New(&Config{
		SessionRepo: s.mockSessionRepo,
		TargetRepo:  s.mockTargetRepo,
		SlotRepo:    s.mockSlotRepo,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *SlotServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SlotServiceTestSuite))
}

// expectJoinPreamble covers the session and participation checks every
// join runs first
func (s *SlotServiceTestSuite) expectJoinPreamble() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.openSession, nil)
	s.mockSlotRepo.EXPECT().
		GetParticipation(s.ctx, &slotRepo.GetParticipationInput{ArcherID: s.testArcherID}).
		Return(nil, slotRepo.ErrParticipationNotFound)
}

func assigned(letters ...models.SlotLetter) *slotRepo.GetAssignedLettersOutput {
	out := &slotRepo.GetAssignedLettersOutput{
		Letters: make(map[models.SlotLetter]string, len(letters)),
	}
	for _, letter := range letters {
		out.Letters[letter] = "slot-" + string(letter)
	}
	return out
}

func (s *SlotServiceTestSuite) TestJoinLowestFreeLetterOnExistingTarget() {
	s.expectJoinPreamble()

	s.mockTargetRepo.EXPECT().
		GetTargetsByDistance(s.ctx, &targetRepo.GetTargetsByDistanceInput{
			SessionID: s.testSessionID,
			Distance:  18,
		}).
		Return(&targetRepo.GetTargetsByDistanceOutput{
			Targets: []*models.Target{s.laneTarget},
		}, nil)

	// A and C are taken, so the lowest free letter is B
	s.mockSlotRepo.EXPECT().
		GetAssignedLetters(s.ctx, &slotRepo.GetAssignedLettersInput{TargetID: "target-one"}).
		Return(assigned(models.SlotLetterA, models.SlotLetterC), nil)

	s.mockSlotRepo.EXPECT().
		CreateSlot(s.ctx, &slotRepo.CreateSlotInput{
			SessionID: s.testSessionID,
			TargetID:  "target-one",
			ArcherID:  s.testArcherID,
			Letter:    models.SlotLetterB,
		}).
		Return(&models.Slot{
			ID:         "new-slot-id",
			TargetID:   "target-one",
			SessionID:  s.testSessionID,
			ArcherID:   s.testArcherID,
			Letter:     models.SlotLetterB,
			IsShooting: true,
		}, nil)

	output, err := s.service.Join(s.ctx, &JoinInput{
		SessionID: s.testSessionID,
		ArcherID:  s.testArcherID,
		Distance:  18,
	})
	s.Require().NoError(err)
	s.Equal("target-one", output.TargetID)
	s.Equal("new-slot-id", output.SlotID)
	s.Equal("1B", output.Code)
}

func (s *SlotServiceTestSuite) TestJoinOverflowsToNewLane() {
	s.expectJoinPreamble()

	// The only target at this distance is full, so the join allocates
	// lane 2 and takes letter A there
	s.mockTargetRepo.EXPECT().
		GetTargetsByDistance(s.ctx, gomock.Any()).
		Return(&targetRepo.GetTargetsByDistanceOutput{
			Targets: []*models.Target{s.laneTarget},
		}, nil)
	s.mockSlotRepo.EXPECT().
		GetAssignedLetters(s.ctx, &slotRepo.GetAssignedLettersInput{TargetID: "target-one"}).
		Return(assigned(models.SlotLetters...), nil)

	s.mockTargetRepo.EXPECT().
		NextLane(s.ctx, &targetRepo.NextLaneInput{SessionID: s.testSessionID}).
		Return(2, nil)
	newTarget := &models.Target{
		ID:        "target-two",
		SessionID: s.testSessionID,
		Distance:  18,
		Lane:      2,
	}
	s.mockTargetRepo.EXPECT().
		CreateTarget(s.ctx, &targetRepo.CreateTargetInput{
			SessionID: s.testSessionID,
			Distance:  18,
			Lane:      2,
		}).
		Return(newTarget, nil)

	s.mockSlotRepo.EXPECT().
		GetAssignedLetters(s.ctx, &slotRepo.GetAssignedLettersInput{TargetID: "target-two"}).
		Return(assigned(), nil)
	s.mockSlotRepo.EXPECT().
		CreateSlot(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *slotRepo.CreateSlotInput) (*models.Slot, error) {
			s.Equal("target-two", input.TargetID)
			s.Equal(models.SlotLetterA, input.Letter)
			return &models.Slot{
				ID:         "overflow-slot-id",
				TargetID:   input.TargetID,
				SessionID:  input.SessionID,
				ArcherID:   input.ArcherID,
				Letter:     input.Letter,
				IsShooting: true,
			}, nil
		})

	output, err := s.service.Join(s.ctx, &JoinInput{
		SessionID: s.testSessionID,
		ArcherID:  s.testArcherID,
		Distance:  18,
	})
	s.Require().NoError(err)
	s.Equal("2A", output.Code)
}

func (s *SlotServiceTestSuite) TestJoinScansTargetsInLaneOrder() {
	s.expectJoinPreamble()

	targetTwo := &models.Target{
		ID:        "target-two",
		SessionID: s.testSessionID,
		Distance:  18,
		Lane:      2,
	}
	s.mockTargetRepo.EXPECT().
		GetTargetsByDistance(s.ctx, gomock.Any()).
		Return(&targetRepo.GetTargetsByDistanceOutput{
			Targets: []*models.Target{s.laneTarget, targetTwo},
		}, nil)

	// Lane 1 is full; lane 2 has room
	s.mockSlotRepo.EXPECT().
		GetAssignedLetters(s.ctx, &slotRepo.GetAssignedLettersInput{TargetID: "target-one"}).
		Return(assigned(models.SlotLetters...), nil)
	s.mockSlotRepo.EXPECT().
		GetAssignedLetters(s.ctx, &slotRepo.GetAssignedLettersInput{TargetID: "target-two"}).
		Return(assigned(models.SlotLetterA), nil)
	s.mockSlotRepo.EXPECT().
		CreateSlot(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *slotRepo.CreateSlotInput) (*models.Slot, error) {
			s.Equal("target-two", input.TargetID)
			s.Equal(models.SlotLetterB, input.Letter)
			return &models.Slot{
				ID:         "new-slot-id",
				TargetID:   input.TargetID,
				SessionID:  input.SessionID,
				ArcherID:   input.ArcherID,
				Letter:     input.Letter,
				IsShooting: true,
			}, nil
		})

	output, err := s.service.Join(s.ctx, &JoinInput{
		SessionID: s.testSessionID,
		ArcherID:  s.testArcherID,
		Distance:  18,
	})
	s.Require().NoError(err)
	s.Equal("2B", output.Code)
}

func (s *SlotServiceTestSuite) TestJoinRetriesAfterLostLetterRace() {
	s.expectJoinPreamble()

	s.mockTargetRepo.EXPECT().
		GetTargetsByDistance(s.ctx, gomock.Any()).
		Return(&targetRepo.GetTargetsByDistanceOutput{
			Targets: []*models.Target{s.laneTarget},
		}, nil)

	// First attempt sees A free but loses the claim to a concurrent
	// join; the retry re-reads and takes B
	first := s.mockSlotRepo.EXPECT().
		GetAssignedLetters(s.ctx, gomock.Any()).
		Return(assigned(), nil)
	firstCreate := s.mockSlotRepo.EXPECT().
		CreateSlot(s.ctx, gomock.Any()).
		Return(nil, slotRepo.ErrLetterTaken).
		After(first)
	second := s.mockSlotRepo.EXPECT().
		GetAssignedLetters(s.ctx, gomock.Any()).
		Return(assigned(models.SlotLetterA), nil).
		After(firstCreate)
	s.mockSlotRepo.EXPECT().
		CreateSlot(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *slotRepo.CreateSlotInput) (*models.Slot, error) {
			s.Equal(models.SlotLetterB, input.Letter)
			return &models.Slot{
				ID:         "retry-slot-id",
				TargetID:   input.TargetID,
				SessionID:  input.SessionID,
				ArcherID:   input.ArcherID,
				Letter:     input.Letter,
				IsShooting: true,
			}, nil
		}).
		After(second)

	output, err := s.service.Join(s.ctx, &JoinInput{
		SessionID: s.testSessionID,
		ArcherID:  s.testArcherID,
		Distance:  18,
	})
	s.Require().NoError(err)
	s.Equal("1B", output.Code)
}

func (s *SlotServiceTestSuite) TestJoinLostParticipationRaceSameSession() {
	s.expectJoinPreamble()

	s.mockTargetRepo.EXPECT().
		GetTargetsByDistance(s.ctx, gomock.Any()).
		Return(&targetRepo.GetTargetsByDistanceOutput{
			Targets: []*models.Target{s.laneTarget},
		}, nil)
	s.mockSlotRepo.EXPECT().
		GetAssignedLetters(s.ctx, gomock.Any()).
		Return(assigned(), nil)

	// A duplicate join by the same archer won the participation guard
	// between the preamble check and the claim
	s.mockSlotRepo.EXPECT().
		CreateSlot(s.ctx, gomock.Any()).
		Return(nil, slotRepo.ErrArcherParticipating)
	s.mockSlotRepo.EXPECT().
		GetParticipation(s.ctx, &slotRepo.GetParticipationInput{ArcherID: s.testArcherID}).
		Return(&slotRepo.Participation{
			ArcherID:  s.testArcherID,
			SessionID: s.testSessionID,
			SlotID:    "winning-slot-id",
		}, nil)

	_, err := s.service.Join(s.ctx, &JoinInput{
		SessionID: s.testSessionID,
		ArcherID:  s.testArcherID,
		Distance:  18,
	})
	s.Require().ErrorIs(err, ErrAlreadyJoined)
}

func (s *SlotServiceTestSuite) TestJoinLostParticipationRaceOtherSession() {
	s.expectJoinPreamble()

	s.mockTargetRepo.EXPECT().
		GetTargetsByDistance(s.ctx, gomock.Any()).
		Return(&targetRepo.GetTargetsByDistanceOutput{
			Targets: []*models.Target{s.laneTarget},
		}, nil)
	s.mockSlotRepo.EXPECT().
		GetAssignedLetters(s.ctx, gomock.Any()).
		Return(assigned(), nil)

	s.mockSlotRepo.EXPECT().
		CreateSlot(s.ctx, gomock.Any()).
		Return(nil, slotRepo.ErrArcherParticipating)
	s.mockSlotRepo.EXPECT().
		GetParticipation(s.ctx, &slotRepo.GetParticipationInput{ArcherID: s.testArcherID}).
		Return(&slotRepo.Participation{
			ArcherID:  s.testArcherID,
			SessionID: "other-session-id",
			SlotID:    "other-slot-id",
		}, nil)

	_, err := s.service.Join(s.ctx, &JoinInput{
		SessionID: s.testSessionID,
		ArcherID:  s.testArcherID,
		Distance:  18,
	})
	s.Require().ErrorIs(err, ErrAlreadyParticipating)
}

func (s *SlotServiceTestSuite) TestJoinClosedSession() {
	closedAt := s.testTime.Add(time.Hour)
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(&models.Session{
			ID:       s.testSessionID,
			IsOpened: false,
			ClosedAt: &closedAt,
		}, nil)

	_, err := s.service.Join(s.ctx, &JoinInput{
		SessionID: s.testSessionID,
		ArcherID:  s.testArcherID,
		Distance:  18,
	})
	s.Require().ErrorIs(err, ErrSessionNotOpen)
}

func (s *SlotServiceTestSuite) TestJoinMissingSession() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.service.Join(s.ctx, &JoinInput{
		SessionID: s.testSessionID,
		ArcherID:  s.testArcherID,
		Distance:  18,
	})
	s.Require().ErrorIs(err, ErrSessionNotOpen)
}

func (s *SlotServiceTestSuite) TestJoinTwiceSameSession() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.openSession, nil)
	s.mockSlotRepo.EXPECT().
		GetParticipation(s.ctx, gomock.Any()).
		Return(&slotRepo.Participation{
			ArcherID:  s.testArcherID,
			SessionID: s.testSessionID,
			SlotID:    "existing-slot-id",
		}, nil)

	_, err := s.service.Join(s.ctx, &JoinInput{
		SessionID: s.testSessionID,
		ArcherID:  s.testArcherID,
		Distance:  18,
	})
	s.Require().ErrorIs(err, ErrAlreadyJoined)
}

func (s *SlotServiceTestSuite) TestJoinWhileParticipatingElsewhere() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.openSession, nil)
	s.mockSlotRepo.EXPECT().
		GetParticipation(s.ctx, gomock.Any()).
		Return(&slotRepo.Participation{
			ArcherID:  s.testArcherID,
			SessionID: "other-session-id",
			SlotID:    "other-slot-id",
		}, nil)

	_, err := s.service.Join(s.ctx, &JoinInput{
		SessionID: s.testSessionID,
		ArcherID:  s.testArcherID,
		Distance:  18,
	})
	s.Require().ErrorIs(err, ErrAlreadyParticipating)
}

func (s *SlotServiceTestSuite) TestJoinInvalidDistance() {
	for _, distance := range []int{0, -5, 101} {
		_, err := s.service.Join(s.ctx, &JoinInput{
			SessionID: s.testSessionID,
			ArcherID:  s.testArcherID,
			Distance:  distance,
		})
		s.Require().ErrorIs(err, ErrInvalidDistance)
	}
}

func (s *SlotServiceTestSuite) TestLeave() {
	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, &slotRepo.GetSlotInput{SlotID: "test-slot-id"}).
		Return(&models.Slot{
			ID:         "test-slot-id",
			ArcherID:   s.testArcherID,
			SessionID:  s.testSessionID,
			IsShooting: true,
		}, nil)
	s.mockSlotRepo.EXPECT().
		DeactivateSlot(s.ctx, &slotRepo.DeactivateSlotInput{SlotID: "test-slot-id"}).
		Return(nil)

	_, err := s.service.Leave(s.ctx, &LeaveInput{
		SlotID:      "test-slot-id",
		RequesterID: s.testArcherID,
	})
	s.Require().NoError(err)
}

func (s *SlotServiceTestSuite) TestLeaveByNonHolder() {
	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, gomock.Any()).
		Return(&models.Slot{
			ID:         "test-slot-id",
			ArcherID:   s.testArcherID,
			IsShooting: true,
		}, nil)

	_, err := s.service.Leave(s.ctx, &LeaveInput{
		SlotID:      "test-slot-id",
		RequesterID: "other-archer-id",
	})
	s.Require().ErrorIs(err, ErrNotAllowed)
}

func (s *SlotServiceTestSuite) TestLeaveInactiveSlot() {
	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, gomock.Any()).
		Return(&models.Slot{
			ID:         "test-slot-id",
			ArcherID:   s.testArcherID,
			IsShooting: false,
		}, nil)

	_, err := s.service.Leave(s.ctx, &LeaveInput{
		SlotID:      "test-slot-id",
		RequesterID: s.testArcherID,
	})
	s.Require().ErrorIs(err, ErrNotParticipating)
}

func (s *SlotServiceTestSuite) TestLeaveMissingSlot() {
	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, gomock.Any()).
		Return(nil, slotRepo.ErrSlotNotFound)

	_, err := s.service.Leave(s.ctx, &LeaveInput{
		SlotID:      "missing-slot-id",
		RequesterID: s.testArcherID,
	})
	s.Require().ErrorIs(err, ErrNotParticipating)
}

func (s *SlotServiceTestSuite) TestRejoinKeepsOriginalAssignment() {
	inactive := &models.Slot{
		ID:         "test-slot-id",
		TargetID:   "target-one",
		SessionID:  s.testSessionID,
		ArcherID:   s.testArcherID,
		Letter:     models.SlotLetterC,
		IsShooting: false,
	}

	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, &slotRepo.GetSlotInput{SlotID: "test-slot-id"}).
		Return(inactive, nil)
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.openSession, nil)
	s.mockSlotRepo.EXPECT().
		ReactivateSlot(s.ctx, &slotRepo.ReactivateSlotInput{SlotID: "test-slot-id"}).
		Return(nil)
	s.mockTargetRepo.EXPECT().
		GetTarget(s.ctx, &targetRepo.GetTargetInput{TargetID: "target-one"}).
		Return(s.laneTarget, nil)

	output, err := s.service.Rejoin(s.ctx, &RejoinInput{
		SlotID:      "test-slot-id",
		RequesterID: s.testArcherID,
	})
	s.Require().NoError(err)
	s.Equal("1C", output.Code)
}

func (s *SlotServiceTestSuite) TestRejoinByNonHolder() {
	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, gomock.Any()).
		Return(&models.Slot{
			ID:       "test-slot-id",
			ArcherID: s.testArcherID,
		}, nil)

	_, err := s.service.Rejoin(s.ctx, &RejoinInput{
		SlotID:      "test-slot-id",
		RequesterID: "other-archer-id",
	})
	s.Require().ErrorIs(err, ErrNotAllowed)
}

func (s *SlotServiceTestSuite) TestRejoinMissingSlot() {
	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, gomock.Any()).
		Return(nil, slotRepo.ErrSlotNotFound)

	// A missing slot reports the same error as a foreign one
	_, err := s.service.Rejoin(s.ctx, &RejoinInput{
		SlotID:      "missing-slot-id",
		RequesterID: s.testArcherID,
	})
	s.Require().ErrorIs(err, ErrNotAllowed)
}

func (s *SlotServiceTestSuite) TestRejoinActiveSlot() {
	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, gomock.Any()).
		Return(&models.Slot{
			ID:         "test-slot-id",
			ArcherID:   s.testArcherID,
			IsShooting: true,
		}, nil)

	_, err := s.service.Rejoin(s.ctx, &RejoinInput{
		SlotID:      "test-slot-id",
		RequesterID: s.testArcherID,
	})
	s.Require().ErrorIs(err, ErrAlreadyActive)
}

func (s *SlotServiceTestSuite) TestRejoinClosedSession() {
	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, gomock.Any()).
		Return(&models.Slot{
			ID:        "test-slot-id",
			ArcherID:  s.testArcherID,
			SessionID: s.testSessionID,
		}, nil)
	closedAt := s.testTime.Add(time.Hour)
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(&models.Session{
			ID:       s.testSessionID,
			IsOpened: false,
			ClosedAt: &closedAt,
		}, nil)

	_, err := s.service.Rejoin(s.ctx, &RejoinInput{
		SlotID:      "test-slot-id",
		RequesterID: s.testArcherID,
	})
	s.Require().ErrorIs(err, ErrSessionClosed)
}

func (s *SlotServiceTestSuite) TestRejoinLetterTakenMeanwhile() {
	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, gomock.Any()).
		Return(&models.Slot{
			ID:        "test-slot-id",
			ArcherID:  s.testArcherID,
			SessionID: s.testSessionID,
			Letter:    models.SlotLetterA,
		}, nil)
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.openSession, nil)
	s.mockSlotRepo.EXPECT().
		ReactivateSlot(s.ctx, gomock.Any()).
		Return(slotRepo.ErrLetterTaken)

	_, err := s.service.Rejoin(s.ctx, &RejoinInput{
		SlotID:      "test-slot-id",
		RequesterID: s.testArcherID,
	})
	s.Require().ErrorIs(err, ErrLetterConflict)
}

func (s *SlotServiceTestSuite) TestActiveSlot() {
	s.mockSlotRepo.EXPECT().
		GetParticipation(s.ctx, &slotRepo.GetParticipationInput{ArcherID: s.testArcherID}).
		Return(&slotRepo.Participation{
			ArcherID:  s.testArcherID,
			SessionID: s.testSessionID,
			SlotID:    "test-slot-id",
		}, nil)
	slot := &models.Slot{
		ID:         "test-slot-id",
		TargetID:   "target-one",
		SessionID:  s.testSessionID,
		ArcherID:   s.testArcherID,
		Letter:     models.SlotLetterD,
		IsShooting: true,
	}
	s.mockSlotRepo.EXPECT().
		GetSlot(s.ctx, &slotRepo.GetSlotInput{SlotID: "test-slot-id"}).
		Return(slot, nil)
	s.mockTargetRepo.EXPECT().
		GetTarget(s.ctx, &targetRepo.GetTargetInput{TargetID: "target-one"}).
		Return(s.laneTarget, nil)

	output, err := s.service.ActiveSlot(s.ctx, &ActiveSlotInput{
		ArcherID: s.testArcherID,
	})
	s.Require().NoError(err)
	s.Equal(slot, output.Slot)
	s.Equal("1D", output.Code)
}

func (s *SlotServiceTestSuite) TestActiveSlotNone() {
	s.mockSlotRepo.EXPECT().
		GetParticipation(s.ctx, gomock.Any()).
		Return(nil, slotRepo.ErrParticipationNotFound)

	_, err := s.service.ActiveSlot(s.ctx, &ActiveSlotInput{
		ArcherID: s.testArcherID,
	})
	s.Require().ErrorIs(err, ErrNotParticipating)
}

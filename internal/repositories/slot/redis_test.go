package slot

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/archylab/archy/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) createSlot(archerID string, letter models.SlotLetter) *models.Slot {
	slot, err := s.repo.CreateSlot(s.ctx, &CreateSlotInput{
		SessionID: "test-session-id",
		TargetID:  "test-target-id",
		ArcherID:  archerID,
		Letter:    letter,
	})
	s.Require().NoError(err)
	s.Require().NotNil(slot)
	return slot
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSlot() {
	slot, err := s.repo.CreateSlot(s.ctx, &CreateSlotInput{
		SessionID:  "test-session-id",
		TargetID:   "test-target-id",
		ArcherID:   "test-archer-id",
		Letter:     models.SlotLetterA,
		FaceType:   "40cm",
		BowStyle:   "recurve",
		DrawWeight: 38.5,
		ClubID:     "test-club-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(slot)
	s.True(slot.IsShooting)

	retrieved, err := s.repo.GetSlot(s.ctx, &GetSlotInput{
		SlotID: slot.ID,
	})
	s.Require().NoError(err)
	s.Equal(slot.ID, retrieved.ID)
	s.Equal("test-target-id", retrieved.TargetID)
	s.Equal("test-session-id", retrieved.SessionID)
	s.Equal("test-archer-id", retrieved.ArcherID)
	s.Equal(models.SlotLetterA, retrieved.Letter)
	s.True(retrieved.IsShooting)
	s.Equal("40cm", retrieved.FaceType)
	s.Equal("recurve", retrieved.BowStyle)
	s.Equal(38.5, retrieved.DrawWeight)
	s.Equal("test-club-id", retrieved.ClubID)
	s.WithinDuration(time.Now(), retrieved.CreatedAt, 5*time.Second)
}

func (s *RedisRepositoryTestSuite) TestGetSlotNotFound() {
	_, err := s.repo.GetSlot(s.ctx, &GetSlotInput{
		SlotID: "missing-slot-id",
	})
	s.Require().ErrorIs(err, ErrSlotNotFound)
}

func (s *RedisRepositoryTestSuite) TestCreateSlotLetterTaken() {
	s.createSlot("archer-one", models.SlotLetterA)

	_, err := s.repo.CreateSlot(s.ctx, &CreateSlotInput{
		SessionID: "test-session-id",
		TargetID:  "test-target-id",
		ArcherID:  "archer-two",
		Letter:    models.SlotLetterA,
	})
	s.Require().ErrorIs(err, ErrLetterTaken)

	// The loser must not have been registered as participating
	_, err = s.repo.GetParticipation(s.ctx, &GetParticipationInput{
		ArcherID: "archer-two",
	})
	s.Require().ErrorIs(err, ErrParticipationNotFound)
}

func (s *RedisRepositoryTestSuite) TestCreateSlotArcherAlreadyParticipating() {
	s.createSlot("test-archer-id", models.SlotLetterA)

	_, err := s.repo.CreateSlot(s.ctx, &CreateSlotInput{
		SessionID: "test-session-id",
		TargetID:  "test-target-id",
		ArcherID:  "test-archer-id",
		Letter:    models.SlotLetterB,
	})
	s.Require().ErrorIs(err, ErrArcherParticipating)

	// The failed join must have released its letter claim
	output, err := s.repo.GetAssignedLetters(s.ctx, &GetAssignedLettersInput{
		TargetID: "test-target-id",
	})
	s.Require().NoError(err)
	s.NotContains(output.Letters, models.SlotLetterB)
}

func (s *RedisRepositoryTestSuite) TestCreateSlotInvalidLetter() {
	_, err := s.repo.CreateSlot(s.ctx, &CreateSlotInput{
		SessionID: "test-session-id",
		TargetID:  "test-target-id",
		ArcherID:  "test-archer-id",
		Letter:    models.SlotLetter("E"),
	})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetAssignedLetters() {
	slotA := s.createSlot("archer-one", models.SlotLetterA)
	slotC := s.createSlot("archer-two", models.SlotLetterC)

	output, err := s.repo.GetAssignedLetters(s.ctx, &GetAssignedLettersInput{
		TargetID: "test-target-id",
	})
	s.Require().NoError(err)
	s.Len(output.Letters, 2)
	s.Equal(slotA.ID, output.Letters[models.SlotLetterA])
	s.Equal(slotC.ID, output.Letters[models.SlotLetterC])
}

func (s *RedisRepositoryTestSuite) TestDeactivateSlotFreesClaims() {
	slot := s.createSlot("test-archer-id", models.SlotLetterA)

	err := s.repo.DeactivateSlot(s.ctx, &DeactivateSlotInput{
		SlotID: slot.ID,
	})
	s.Require().NoError(err)

	// The slot row survives, marked inactive
	retrieved, err := s.repo.GetSlot(s.ctx, &GetSlotInput{
		SlotID: slot.ID,
	})
	s.Require().NoError(err)
	s.False(retrieved.IsShooting)

	// Letter, participation and the active set are all released
	output, err := s.repo.GetAssignedLetters(s.ctx, &GetAssignedLettersInput{
		TargetID: "test-target-id",
	})
	s.Require().NoError(err)
	s.Empty(output.Letters)

	_, err = s.repo.GetParticipation(s.ctx, &GetParticipationInput{
		ArcherID: "test-archer-id",
	})
	s.Require().ErrorIs(err, ErrParticipationNotFound)

	active, err := s.repo.HasActiveParticipants(s.ctx, &HasActiveParticipantsInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.False(active)
}

func (s *RedisRepositoryTestSuite) TestDeactivateInactiveSlot() {
	slot := s.createSlot("test-archer-id", models.SlotLetterA)

	err := s.repo.DeactivateSlot(s.ctx, &DeactivateSlotInput{
		SlotID: slot.ID,
	})
	s.Require().NoError(err)

	err = s.repo.DeactivateSlot(s.ctx, &DeactivateSlotInput{
		SlotID: slot.ID,
	})
	s.Require().ErrorIs(err, ErrSlotNotActive)
}

func (s *RedisRepositoryTestSuite) TestLetterFreedForNextJoiner() {
	slot := s.createSlot("archer-one", models.SlotLetterA)

	err := s.repo.DeactivateSlot(s.ctx, &DeactivateSlotInput{
		SlotID: slot.ID,
	})
	s.Require().NoError(err)

	// A freed letter is claimable by the next joiner
	s.createSlot("archer-two", models.SlotLetterA)
}

func (s *RedisRepositoryTestSuite) TestReactivateSlot() {
	slot := s.createSlot("test-archer-id", models.SlotLetterB)

	err := s.repo.DeactivateSlot(s.ctx, &DeactivateSlotInput{
		SlotID: slot.ID,
	})
	s.Require().NoError(err)

	err = s.repo.ReactivateSlot(s.ctx, &ReactivateSlotInput{
		SlotID: slot.ID,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSlot(s.ctx, &GetSlotInput{
		SlotID: slot.ID,
	})
	s.Require().NoError(err)
	s.True(retrieved.IsShooting)
	s.Equal(models.SlotLetterB, retrieved.Letter)

	participation, err := s.repo.GetParticipation(s.ctx, &GetParticipationInput{
		ArcherID: "test-archer-id",
	})
	s.Require().NoError(err)
	s.Equal(slot.ID, participation.SlotID)
	s.Equal("test-session-id", participation.SessionID)
}

func (s *RedisRepositoryTestSuite) TestReactivateActiveSlot() {
	slot := s.createSlot("test-archer-id", models.SlotLetterA)

	err := s.repo.ReactivateSlot(s.ctx, &ReactivateSlotInput{
		SlotID: slot.ID,
	})
	s.Require().ErrorIs(err, ErrSlotActive)
}

func (s *RedisRepositoryTestSuite) TestReactivateLetterTakenMeanwhile() {
	slot := s.createSlot("archer-one", models.SlotLetterA)

	err := s.repo.DeactivateSlot(s.ctx, &DeactivateSlotInput{
		SlotID: slot.ID,
	})
	s.Require().NoError(err)

	// Someone else takes A while archer-one is away
	s.createSlot("archer-two", models.SlotLetterA)

	err = s.repo.ReactivateSlot(s.ctx, &ReactivateSlotInput{
		SlotID: slot.ID,
	})
	s.Require().ErrorIs(err, ErrLetterTaken)

	// The original slot stays inactive
	retrieved, err := s.repo.GetSlot(s.ctx, &GetSlotInput{
		SlotID: slot.ID,
	})
	s.Require().NoError(err)
	s.False(retrieved.IsShooting)
}

func (s *RedisRepositoryTestSuite) TestGetParticipation() {
	slot := s.createSlot("test-archer-id", models.SlotLetterA)

	participation, err := s.repo.GetParticipation(s.ctx, &GetParticipationInput{
		ArcherID: "test-archer-id",
	})
	s.Require().NoError(err)
	s.Equal("test-archer-id", participation.ArcherID)
	s.Equal("test-session-id", participation.SessionID)
	s.Equal(slot.ID, participation.SlotID)
}

func (s *RedisRepositoryTestSuite) TestHasActiveParticipants() {
	active, err := s.repo.HasActiveParticipants(s.ctx, &HasActiveParticipantsInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.False(active)

	s.createSlot("test-archer-id", models.SlotLetterA)

	active, err = s.repo.HasActiveParticipants(s.ctx, &HasActiveParticipantsInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.True(active)
}

func (s *RedisRepositoryTestSuite) TestDeactivateAllInSession() {
	slotOne := s.createSlot("archer-one", models.SlotLetterA)
	slotTwo := s.createSlot("archer-two", models.SlotLetterB)

	err := s.repo.DeactivateAllInSession(s.ctx, &DeactivateAllInSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	for _, slotID := range []string{slotOne.ID, slotTwo.ID} {
		slot, err := s.repo.GetSlot(s.ctx, &GetSlotInput{SlotID: slotID})
		s.Require().NoError(err)
		s.False(slot.IsShooting)
	}

	active, err := s.repo.HasActiveParticipants(s.ctx, &HasActiveParticipantsInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.False(active)
}

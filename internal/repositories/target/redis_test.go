package target

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
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

func (s *RedisRepositoryTestSuite) TestCreateAndGetTarget() {
	target, err := s.repo.CreateTarget(s.ctx, &CreateTargetInput{
		SessionID: "test-session-id",
		Distance:  18,
		Lane:      1,
	})
	s.Require().NoError(err)
	s.Require().NotNil(target)
	s.NotEmpty(target.ID)

	retrieved, err := s.repo.GetTarget(s.ctx, &GetTargetInput{
		TargetID: target.ID,
	})
	s.Require().NoError(err)
	s.Equal(target.ID, retrieved.ID)
	s.Equal("test-session-id", retrieved.SessionID)
	s.Equal(18, retrieved.Distance)
	s.Equal(1, retrieved.Lane)
	s.WithinDuration(time.Now(), retrieved.CreatedAt, 5*time.Second)
}

func (s *RedisRepositoryTestSuite) TestGetTargetNotFound() {
	_, err := s.repo.GetTarget(s.ctx, &GetTargetInput{
		TargetID: "missing-target-id",
	})
	s.Require().ErrorIs(err, ErrTargetNotFound)
}

func (s *RedisRepositoryTestSuite) TestCreateTargetDistanceBounds() {
	_, err := s.repo.CreateTarget(s.ctx, &CreateTargetInput{
		SessionID: "test-session-id",
		Distance:  0,
		Lane:      1,
	})
	s.Require().Error(err)

	_, err = s.repo.CreateTarget(s.ctx, &CreateTargetInput{
		SessionID: "test-session-id",
		Distance:  101,
		Lane:      1,
	})
	s.Require().Error(err)

	_, err = s.repo.CreateTarget(s.ctx, &CreateTargetInput{
		SessionID: "test-session-id",
		Distance:  100,
		Lane:      1,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetTargetsByDistanceOrderedByLane() {
	// Insert out of lane order to prove ordering comes from the index
	for _, tc := range []struct {
		distance int
		lane     int
	}{
		{18, 3},
		{18, 1},
		{50, 2},
		{18, 4},
	} {
		_, err := s.repo.CreateTarget(s.ctx, &CreateTargetInput{
			SessionID: "test-session-id",
			Distance:  tc.distance,
			Lane:      tc.lane,
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetTargetsByDistance(s.ctx, &GetTargetsByDistanceInput{
		SessionID: "test-session-id",
		Distance:  18,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Targets, 3)
	s.Equal(1, output.Targets[0].Lane)
	s.Equal(3, output.Targets[1].Lane)
	s.Equal(4, output.Targets[2].Lane)
	for _, target := range output.Targets {
		s.Equal(18, target.Distance)
	}
}

func (s *RedisRepositoryTestSuite) TestGetTargetsByDistanceEmpty() {
	output, err := s.repo.GetTargetsByDistance(s.ctx, &GetTargetsByDistanceInput{
		SessionID: "test-session-id",
		Distance:  70,
	})
	s.Require().NoError(err)
	s.Empty(output.Targets)
}

func (s *RedisRepositoryTestSuite) TestNextLaneMonotonePerSession() {
	for want := 1; want <= 3; want++ {
		lane, err := s.repo.NextLane(s.ctx, &NextLaneInput{
			SessionID: "session-one",
		})
		s.Require().NoError(err)
		s.Equal(want, lane)
	}

	// Lane counters are per session
	lane, err := s.repo.NextLane(s.ctx, &NextLaneInput{
		SessionID: "session-two",
	})
	s.Require().NoError(err)
	s.Equal(1, lane)
}

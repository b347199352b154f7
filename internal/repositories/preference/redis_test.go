package preference

import (
	"context"
	"testing"

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

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&RedisConfig{
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

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewRedis(&RedisConfig{})
	s.ErrorIs(err, ErrNilRedisClient)
}

func (s *RedisRepositoryTestSuite) TestLoadEmpty() {
	output, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(output.OptOuts)
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoad() {
	err := s.repo.Save(s.ctx, &SaveInput{
		OptOuts: map[string]bool{
			"76561197960287930": true,
			"76561197970000000": true,
		},
	})
	s.Require().NoError(err)

	s.Equal("true", s.mr.HGet(defaultRedisKey, "76561197960287930"))

	output, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]bool{
		"76561197960287930": true,
		"76561197970000000": true,
	}, output.OptOuts)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwritesWholeSet() {
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{
		OptOuts: map[string]bool{"76561197960287930": true},
	}))
	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{
		OptOuts: map[string]bool{"76561197970000000": true},
	}))

	output, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]bool{"76561197970000000": true}, output.OptOuts)

	s.Require().NoError(s.repo.Save(s.ctx, &SaveInput{}))
	s.False(s.mr.Exists(defaultRedisKey))
}

func (s *RedisRepositoryTestSuite) TestLoadMalformed() {
	s.mr.HSet(defaultRedisKey, "76561197960287930", "maybe")

	_, err := s.repo.Load(s.ctx)
	s.ErrorIs(err, ErrMalformed)
}

func (s *RedisRepositoryTestSuite) TestSaveNilInput() {
	s.ErrorIs(s.repo.Save(s.ctx, nil), ErrNilInput)
}

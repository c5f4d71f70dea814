package storage

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

func (s *RedisRepositoryTestSuite) TestSaveAndLoad() {
	err := s.repo.Save(s.ctx, &SaveInput{
		Key:  "guilds.dev.json",
		Blob: []byte(`{"guilds":{}}`),
	})
	s.Require().NoError(err)

	output, err := s.repo.Load(s.ctx, &LoadInput{Key: "guilds.dev.json"})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Equal([]byte(`{"guilds":{}}`), output.Blob)
}

func (s *RedisRepositoryTestSuite) TestLoadMissingKey() {
	output, err := s.repo.Load(s.ctx, &LoadInput{Key: "guilds.dev.json"})
	s.Require().NoError(err)
	s.False(output.Found)
	s.Nil(output.Blob)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	err := s.repo.Save(s.ctx, &SaveInput{Key: "k", Blob: []byte("one")})
	s.Require().NoError(err)
	err = s.repo.Save(s.ctx, &SaveInput{Key: "k", Blob: []byte("two")})
	s.Require().NoError(err)

	output, err := s.repo.Load(s.ctx, &LoadInput{Key: "k"})
	s.Require().NoError(err)
	s.Equal([]byte("two"), output.Blob)
}

func (s *RedisRepositoryTestSuite) TestNilInput() {
	s.Error(s.repo.Save(s.ctx, nil))
	_, err := s.repo.Load(s.ctx, &LoadInput{})
	s.Error(err)
}

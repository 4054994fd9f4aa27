package pokeapi_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gym-battle/internal/clients/pokeapi"
	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
	"github.com/KirkDiggler/gym-battle/internal/redis"
	"github.com/KirkDiggler/gym-battle/internal/testutils"
)

type RedisRecordCacheTestSuite struct {
	suite.Suite
	ctx     context.Context
	client  redis.Client
	mr      *miniredis.Miniredis
	cleanup func()
	cache   pokeapi.RecordCache
}

func TestRedisRecordCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisRecordCacheTestSuite))
}

func (s *RedisRecordCacheTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr, s.cleanup = testutils.CreateTestRedis(s.T())

	cache, err := pokeapi.NewRedisRecordCache(&pokeapi.RedisRecordCacheConfig{
		Client: s.client,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.cache = cache
}

func (s *RedisRecordCacheTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRecordCacheTestSuite) TestRoundTrip() {
	power := 40
	move := &entities.Move{ID: 84, Name: "thunder-shock", Type: "electric", Power: &power, Accuracy: 100}

	s.Require().NoError(s.cache.Set(s.ctx, pokeapi.KindMove, "thunder-shock", move))
	s.Assert().True(s.mr.Exists("pokeapi:move:thunder-shock"))

	var got entities.Move
	found, err := s.cache.Get(s.ctx, pokeapi.KindMove, "thunder-shock", &got)
	s.Require().NoError(err)
	s.Assert().True(found)
	s.Assert().Equal(*move, got)
}

func (s *RedisRecordCacheTestSuite) TestMissAndExpiry() {
	var got entities.Species
	found, err := s.cache.Get(s.ctx, pokeapi.KindSpecies, "25", &got)
	s.Require().NoError(err)
	s.Assert().False(found)

	s.Require().NoError(s.cache.Set(s.ctx, pokeapi.KindSpecies, "25", &entities.Species{ID: 25, Name: "pikachu"}))
	s.mr.FastForward(2 * time.Hour)

	found, err = s.cache.Get(s.ctx, pokeapi.KindSpecies, "25", &got)
	s.Require().NoError(err)
	s.Assert().False(found)
}

func (s *RedisRecordCacheTestSuite) TestCorruptEntry() {
	s.Require().NoError(s.mr.Set("pokeapi:type:fire", "{not json"))

	var got entities.TypeEffectiveness
	found, err := s.cache.Get(s.ctx, pokeapi.KindType, "fire", &got)
	s.Assert().Error(err)
	s.Assert().False(found)
}

func (s *RedisRecordCacheTestSuite) TestConfigValidation() {
	_, err := pokeapi.NewRedisRecordCache(&pokeapi.RedisRecordCacheConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = pokeapi.NewRedisRecordCache(&pokeapi.RedisRecordCacheConfig{Client: s.client, TTL: -time.Second})
	s.Assert().True(errors.IsInvalidArgument(err))
}

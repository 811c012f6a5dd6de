//go:build integration

package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"landscape/internal/ratelimit"
	"landscape/pkg/testutil/containers"
)

type RedisLimiterSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestRedisLimiterSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisLimiterSuite))
}

func (s *RedisLimiterSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *RedisLimiterSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisLimiterSuite) TestFixedWindow() {
	ctx := context.Background()
	limiter := ratelimit.NewRedisLimiter(s.redis.Client, 2, time.Minute)

	for i := range 2 {
		res, err := limiter.Allow(ctx, "alice")
		s.Require().NoError(err)
		s.True(res.Allowed, "request %d", i+1)
	}

	res, err := limiter.Allow(ctx, "alice")
	s.Require().NoError(err)
	s.False(res.Allowed)
	s.Zero(res.Remaining)

	other, err := limiter.Allow(ctx, "bob")
	s.Require().NoError(err)
	s.True(other.Allowed, "keys are independent")
}

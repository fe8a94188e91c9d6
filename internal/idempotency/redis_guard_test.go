package idempotency_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/idempotency"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/nikolayk812/backoffice/internal/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/goleak"
)

type redisGuardSuite struct {
	suite.Suite

	container testcontainers.Container
	rdb       *redis.Client
	guard     port.IdempotencyGuard
}

func TestRedisGuardSuite(t *testing.T) {
	defer goleak.VerifyNone(t)

	suite.Run(t, new(redisGuardSuite))
}

func (suite *redisGuardSuite) SetupSuite() {
	var (
		addr string
		err  error
	)

	suite.container, addr, err = testutil.StartRedis(suite.T().Context())
	suite.Require().NoError(err)

	suite.rdb = redis.NewClient(&redis.Options{Addr: addr})
	suite.guard = idempotency.NewRedisGuard(suite.rdb, time.Minute)
}

func (suite *redisGuardSuite) TearDownSuite() {
	if suite.rdb != nil {
		suite.NoError(suite.rdb.Close())
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(suite.T().Context()))
	}
}

func (suite *redisGuardSuite) TestClaim() {
	t := suite.T()
	ctx := t.Context()
	key := uuid.NewString()

	ok, err := suite.guard.Claim(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = suite.guard.Claim(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := suite.rdb.TTL(ctx, "idempotency-key:"+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, suite.guard.Release(ctx, key))

	ok, err = suite.guard.Claim(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = suite.guard.Claim(ctx, "")
	require.EqualError(t, err, "key is empty")
}

func (suite *redisGuardSuite) TestClaim_Concurrent() {
	t := suite.T()
	ctx := t.Context()
	key := uuid.NewString()

	var (
		wg  sync.WaitGroup
		won atomic.Int32
	)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ok, err := suite.guard.Claim(ctx, key)
			if assert.NoError(t, err) && ok {
				won.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), won.Load())
}

func TestNoopGuard(t *testing.T) {
	guard := idempotency.NewNoopGuard()

	for i := 0; i < 2; i++ {
		ok, err := guard.Claim(t.Context(), "same")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	require.NoError(t, guard.Release(t.Context(), "same"))
}

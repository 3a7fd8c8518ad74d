package ratelock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupLocker(t *testing.T) (*miniredis.Miniredis, Locker) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	opts := Options{TTL: 10 * time.Second, RetryEvery: 10 * time.Millisecond, MaxRetries: 2}
	return mr, NewRedisLocker(rdb, opts, zap.NewNop())
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	mr, locker := setupLocker(t)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "award:1")
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+"award:1"))

	release()
	assert.False(t, mr.Exists(keyPrefix+"award:1"))
}

func TestRedisLocker_SecondAcquireFails(t *testing.T) {
	_, locker := setupLocker(t)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "award:1")
	require.NoError(t, err)
	defer release()

	_, err = locker.Acquire(ctx, "award:1")
	assert.ErrorIs(t, err, ErrNotObtained)

	// other awards are independent
	releaseOther, err := locker.Acquire(ctx, "award:2")
	require.NoError(t, err)
	releaseOther()
}

func TestRedisLocker_ReacquireAfterRelease(t *testing.T) {
	_, locker := setupLocker(t)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "award:7")
	require.NoError(t, err)
	release()

	release, err = locker.Acquire(ctx, "award:7")
	require.NoError(t, err)
	release()
}

func TestRedisLocker_ExpiredLockCanBeTaken(t *testing.T) {
	mr, locker := setupLocker(t)
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "award:3")
	require.NoError(t, err)

	mr.FastForward(11 * time.Second)

	releaseAgain, err := locker.Acquire(ctx, "award:3")
	require.NoError(t, err)

	// the stale holder's release must leave the new holder's key alone
	release()
	assert.True(t, mr.Exists(keyPrefix+"award:3"))

	releaseAgain()
	assert.False(t, mr.Exists(keyPrefix+"award:3"))
}

func TestNoopLocker(t *testing.T) {
	locker := NewNoopLocker()
	release, err := locker.Acquire(context.Background(), "anything")
	require.NoError(t, err)
	release()
}

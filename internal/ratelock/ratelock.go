// Package ratelock serializes rule table rebuilds per award across service instances.
package ratelock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrNotObtained means another holder currently owns the lock.
var ErrNotObtained = errors.New("ratelock: lock not obtained")

const keyPrefix = "payrates:lock:"

// Release gives the lock back. It is safe to call on an expired lock.
type Release func()

// Locker hands out named locks.
type Locker interface {
	Acquire(ctx context.Context, name string) (Release, error)
}

// Options tune how long a lock lives and how long Acquire keeps retrying.
type Options struct {
	TTL        time.Duration
	RetryEvery time.Duration
	MaxRetries int
}

// DefaultOptions hold a lock for 30s and wait up to ~5s for it.
func DefaultOptions() Options {
	return Options{TTL: 30 * time.Second, RetryEvery: 100 * time.Millisecond, MaxRetries: 50}
}

type redisLocker struct {
	client *redislock.Client
	opts   Options
	logger *zap.Logger
}

// NewRedisLocker builds a Locker on top of an existing redis client.
func NewRedisLocker(rdb *redis.Client, opts Options, logger *zap.Logger) Locker {
	return &redisLocker{client: redislock.New(rdb), opts: opts, logger: logger}
}

func (l *redisLocker) Acquire(ctx context.Context, name string) (Release, error) {
	key := keyPrefix + name
	lock, err := l.client.Obtain(ctx, key, l.opts.TTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(l.opts.RetryEvery), l.opts.MaxRetries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrNotObtained
	}
	if err != nil {
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}

	return func() {
		// fresh context: the request context may already be cancelled
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := lock.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.logger.Warn("failed to release lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

type noopLocker struct{}

// NewNoopLocker returns a Locker that always succeeds; used when redis is not configured.
func NewNoopLocker() Locker {
	return noopLocker{}
}

func (noopLocker) Acquire(context.Context, string) (Release, error) {
	return func() {}, nil
}

package redis

import (
	"context"
	"testing"
	"time"

	"Social_Feed/internal/pkg"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLock(t *testing.T) (*DistLock, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewDistLock(rdb, time.Second), mr
}

func TestDistLock_ExcludesSecondHolder(t *testing.T) {
	lock, _ := newTestLock(t)
	ctx := context.Background()

	unlock, err := lock.Lock(ctx, "like:p1:alice")
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = lock.Lock(waitCtx, "like:p1:alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLockNotAcquired)
	assert.Same(t, ErrLockNotAcquired, pkg.RootCause(err))

	other, err := lock.Lock(ctx, "like:p1:bob")
	require.NoError(t, err)
	other()

	unlock()
	unlock()
	again, err := lock.Lock(ctx, "like:p1:alice")
	require.NoError(t, err)
	again()
}

func TestDistLock_ReleaseKeepsForeignToken(t *testing.T) {
	lock, mr := newTestLock(t)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "post:p1", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, lock.Release(ctx, "post:p1", "intruder"))
	val, err := mr.Get(LockKeyPrefix + "post:p1")
	require.NoError(t, err)
	assert.Equal(t, "owner", val)

	require.NoError(t, lock.Release(ctx, "post:p1", "owner"))
	assert.False(t, mr.Exists(LockKeyPrefix+"post:p1"))
}

func TestDistLock_ExpiresAfterTTL(t *testing.T) {
	lock, mr := newTestLock(t)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "comment:c1", "owner")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)
	ok, err = lock.Acquire(ctx, "comment:c1", "next")
	require.NoError(t, err)
	assert.True(t, ok)
}

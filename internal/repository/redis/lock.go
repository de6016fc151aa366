package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultLockTTL = 5 * time.Second
	LockKeyPrefix  = "lock:social:"
	retryInterval  = 20 * time.Millisecond
)

var ErrLockNotAcquired = errors.New("lock not acquired")

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`)

// DistLock 基于 SET NX PX 的分布式锁，token 防止误删他人的锁
type DistLock struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewDistLock(rdb *redis.Client, ttl time.Duration) *DistLock {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &DistLock{RDB: rdb, TTL: ttl}
}

func (l *DistLock) key(name string) string {
	return LockKeyPrefix + name
}

// Acquire 尝试加锁一次
func (l *DistLock) Acquire(ctx context.Context, name, token string) (bool, error) {
	return l.RDB.SetNX(ctx, l.key(name), token, l.TTL).Result()
}

// Release 用lua保证原子性
func (l *DistLock) Release(ctx context.Context, name, token string) error {
	_, err := releaseScript.Run(ctx, l.RDB, []string{l.key(name)}, token).Result()
	return err
}

// Lock 阻塞直到拿到锁或 ctx 结束；返回的 unlock 可重复调用
func (l *DistLock) Lock(ctx context.Context, name string) (func(), error) {
	token := uuid.NewString()
	t := time.NewTicker(retryInterval)
	defer t.Stop()
	for {
		got, err := l.Acquire(ctx, name, token)
		if err != nil {
			return nil, fmt.Errorf("acquire lock %s: %w", name, err)
		}
		if got {
			released := false
			return func() {
				if released {
					return
				}
				released = true
				// 请求 ctx 可能已取消，释放锁用独立超时
				rctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = l.Release(rctx, name, token)
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s (%v)", ErrLockNotAcquired, name, ctx.Err())
		case <-t.C:
		}
	}
}

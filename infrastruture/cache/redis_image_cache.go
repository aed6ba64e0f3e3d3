package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/mazeraster/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	renderLockSuffix = ":render_lock"
	unlockTimeout    = 2 * time.Second
)

// RedisImageCache stores rendered maze images in Redis with a TTL.
type RedisImageCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisImageCache initializes a RedisImageCache with the provided Redis client and TTL.
func NewRedisImageCache(client *redis.Client, ttlSeconds int) (i.ImageCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}

	cache := &RedisImageCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the image stored under key, or i.ErrCacheMiss.
func (c *RedisImageCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, i.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set stores data under key; it expires after the cache TTL.
func (c *RedisImageCache) Set(ctx context.Context, key string, data []byte) error {
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// WithLock runs fn while holding the render lock for key.
func (c *RedisImageCache) WithLock(ctx context.Context, key string, fn func() error) (err error) {
	mutex := c.locker.NewMutex(key + renderLockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		// the request may be gone by now, the lock still has to be released
		unlockCtx, cancel := unlockContext(ctx)
		defer cancel()

		ok, unlockErr := mutex.UnlockContext(unlockCtx)
		if err == nil && unlockErr != nil {
			err = unlockErr
		} else if err == nil && !ok {
			err = errors.New("redis eval func returned 0 while releasing render lock")
		}
	}()

	return fn()
}

// unlockContext keeps the values of ctx but not its cancellation or deadline.
func unlockContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), unlockTimeout)
}

package i

import (
	"context"
	"errors"
)

var (
	ErrCacheMiss = errors.New("cache miss")
)

// ImageCache stores encoded maze images by key.
type ImageCache interface {
	// Get returns the cached bytes for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores data under key.
	Set(ctx context.Context, key string, data []byte) error

	// WithLock runs fn while holding a distributed lock derived from key, so
	// only one instance renders a given image at a time.
	WithLock(ctx context.Context, key string, fn func() error) error
}

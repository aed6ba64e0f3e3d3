package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"sync"
	"testing"

	"github.com/beka-birhanu/mazeraster/domain"
	"github.com/beka-birhanu/mazeraster/mazegen"
	"github.com/beka-birhanu/mazeraster/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	sync.Mutex
	mazes   map[uuid.UUID]*domain.Maze
	saveErr error
}

func newMemRepo() *memRepo {
	return &memRepo{mazes: make(map[uuid.UUID]*domain.Maze)}
}

func (r *memRepo) Save(_ context.Context, m *domain.Maze) error {
	r.Lock()
	defer r.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mazes[m.ID] = m
	return nil
}

func (r *memRepo) ByID(_ context.Context, id uuid.UUID) (*domain.Maze, error) {
	r.Lock()
	defer r.Unlock()
	m, ok := r.mazes[id]
	if !ok {
		return nil, domain.ErrMazeNotFound
	}
	return m, nil
}

type memCache struct {
	sync.Mutex
	data  map[string][]byte
	sets  int
	locks int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	c.Lock()
	defer c.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, i.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte) error {
	c.Lock()
	defer c.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) WithLock(_ context.Context, _ string, fn func() error) error {
	c.Lock()
	c.locks++
	c.Unlock()
	return fn()
}

func newTestService(t *testing.T, repo *memRepo, cache *memCache) i.MazeService {
	svc, err := NewMazeService(repo, cache, nil, &Options{Prefix: "test", MaxCells: 20})
	require.NoError(t, err)
	return svc
}

func TestNewMazeService(t *testing.T) {
	_, err := NewMazeService(nil, newMemCache(), nil, nil)
	assert.Error(t, err)

	svc, err := NewMazeService(newMemRepo(), newMemCache(), nil, &Options{})
	require.NoError(t, err)
	ms := svc.(*MazeService)
	assert.Equal(t, defaultPrefix, ms.opts.Prefix)
	assert.Equal(t, defaultMaxCells, ms.opts.MaxCells)
}

func TestMazeServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the record and warms the cache", func(t *testing.T) {
		repo, cache := newMemRepo(), newMemCache()
		svc := newTestService(t, repo, cache)

		m, err := svc.Create(ctx, mazegen.Options{CellsX: 6, CellsY: 4, Seed: 11})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, m.ID)
		assert.Equal(t, int64(11), m.Seed)
		assert.Equal(t, 56, m.Width)
		assert.Equal(t, 40, m.Height)

		stored, err := repo.ByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, m, stored)
		assert.Contains(t, cache.data, "test:image:"+m.ID.String()+":png")
	})

	t.Run("Rejects oversized mazes", func(t *testing.T) {
		svc := newTestService(t, newMemRepo(), newMemCache())
		_, err := svc.Create(ctx, mazegen.Options{CellsX: 21, CellsY: 4})
		assert.ErrorIs(t, err, mazegen.ErrInvalidOptions)
	})

	t.Run("Rejects undersized mazes", func(t *testing.T) {
		svc := newTestService(t, newMemRepo(), newMemCache())
		_, err := svc.Create(ctx, mazegen.Options{CellsX: 1, CellsY: 4})
		assert.ErrorIs(t, err, mazegen.ErrInvalidOptions)
	})

	t.Run("Rejects oversized walls and passages", func(t *testing.T) {
		repo := newMemRepo()
		svc := newTestService(t, repo, newMemCache())
		for _, opts := range []mazegen.Options{
			{CellsX: 3, CellsY: 3, PassageWidth: 1 << 24, WallWidth: 2, Seed: 1},
			{CellsX: 3, CellsY: 3, PassageWidth: 6, WallWidth: 1 << 30, Seed: 1},
			{CellsX: 20, CellsY: 20, PassageWidth: mazegen.MaxWidth, WallWidth: mazegen.MaxWidth, Seed: 1},
		} {
			_, err := svc.Create(ctx, opts)
			assert.ErrorIs(t, err, mazegen.ErrInvalidOptions)
		}
		assert.Empty(t, repo.mazes)
	})

	t.Run("Repo failure", func(t *testing.T) {
		repo := newMemRepo()
		repo.saveErr = errors.New("db down")
		svc := newTestService(t, repo, newMemCache())
		_, err := svc.Create(ctx, mazegen.Options{CellsX: 4, CellsY: 4})
		assert.ErrorIs(t, err, repo.saveErr)
	})
}

func TestMazeServiceRender(t *testing.T) {
	ctx := context.Background()
	repo, cache := newMemRepo(), newMemCache()
	svc := newTestService(t, repo, cache)

	m, err := svc.Create(ctx, mazegen.Options{CellsX: 5, CellsY: 5, Seed: 5})
	require.NoError(t, err)

	t.Run("Cache hit skips rendering", func(t *testing.T) {
		data, enc, err := svc.Render(ctx, m.ID, "png")
		require.NoError(t, err)
		assert.Equal(t, "image/png", enc.ContentType())
		assert.Equal(t, 0, cache.locks)

		img, _, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, m.Width, img.Bounds().Dx())
		assert.Equal(t, m.Height, img.Bounds().Dy())
	})

	t.Run("Cache miss renders once and stores", func(t *testing.T) {
		setsBefore := cache.sets
		data, enc, err := svc.Render(ctx, m.ID, "bmp")
		require.NoError(t, err)
		assert.Equal(t, "image/bmp", enc.ContentType())
		assert.Equal(t, 1, cache.locks)
		assert.Equal(t, setsBefore+1, cache.sets)
		assert.Equal(t, data, cache.data["test:image:"+m.ID.String()+":bmp"])

		again, _, err := svc.Render(ctx, m.ID, "bmp")
		require.NoError(t, err)
		assert.Equal(t, data, again)
		assert.Equal(t, 1, cache.locks)
	})

	t.Run("Regenerated image matches the created one", func(t *testing.T) {
		key := "test:image:" + m.ID.String() + ":png"
		created := cache.data[key]
		delete(cache.data, key)

		data, _, err := svc.Render(ctx, m.ID, "png")
		require.NoError(t, err)
		assert.Equal(t, created, data)
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, _, err := svc.Render(ctx, m.ID, "gif")
		assert.Error(t, err)
	})

	t.Run("Unknown maze", func(t *testing.T) {
		_, _, err := svc.Render(ctx, uuid.New(), "png")
		assert.ErrorIs(t, err, domain.ErrMazeNotFound)
	})
}

func TestMazeServiceGrid(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemRepo(), newMemCache())

	m, err := svc.Create(ctx, mazegen.Options{CellsX: 7, CellsY: 3, Seed: 8})
	require.NoError(t, err)

	g, err := svc.Grid(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, g.CellsX)
	assert.Equal(t, 3, g.CellsY)
	assert.True(t, g.IsSpanningTree())

	_, err = svc.Grid(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrMazeNotFound)
}

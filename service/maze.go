package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/beka-birhanu/mazeraster/domain"
	"github.com/beka-birhanu/mazeraster/encoder"
	"github.com/beka-birhanu/mazeraster/maze"
	"github.com/beka-birhanu/mazeraster/mazegen"
	"github.com/beka-birhanu/mazeraster/service/i"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultPrefix   = "mazeraster"
	defaultMaxCells = 500
	imageKeyFmt     = "%s:image:%s:%s"
)

type Options struct {
	Prefix   string // Prefix for cache keys.
	MaxCells int    // Largest accepted maze width or height in cells.
}

type MazeService struct {
	repo   i.MazeRepo
	cache  i.ImageCache
	logger *logrus.Entry
	opts   *Options
}

func NewMazeService(repo i.MazeRepo, cache i.ImageCache, logger *logrus.Entry, opts *Options) (i.MazeService, error) {
	if repo == nil || cache == nil {
		return nil, errors.New("maze service requires a repo and an image cache")
	}

	if opts == nil {
		opts = &Options{
			Prefix:   defaultPrefix,
			MaxCells: defaultMaxCells,
		}
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	if opts.MaxCells <= 0 {
		opts.MaxCells = defaultMaxCells
	}

	if logger == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		logger = logrus.NewEntry(silent)
	}

	return &MazeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// Create generates a maze, stores its record and warms the PNG cache.
func (ms *MazeService) Create(ctx context.Context, opts mazegen.Options) (*domain.Maze, error) {
	if opts.CellsX > ms.opts.MaxCells || opts.CellsY > ms.opts.MaxCells {
		return nil, fmt.Errorf("%dx%d cells, at most %d per side: %w", opts.CellsX, opts.CellsY, ms.opts.MaxCells, mazegen.ErrInvalidOptions)
	}

	res, err := mazegen.Generate(opts)
	if err != nil {
		return nil, err
	}

	record := domain.NewMaze(res)
	if err := ms.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("saving maze %s: %w", record.ID, err)
	}
	ms.logger.WithFields(logrus.Fields{
		"id":    record.ID,
		"seed":  record.Seed,
		"cells": fmt.Sprintf("%dx%d", record.CellsX, record.CellsY),
	}).Info("Maze created")

	if data, err := ms.encode(res, encoder.PNG{}); err != nil {
		ms.logger.Warnf("Encoding maze %s: %v", record.ID, err)
	} else if err := ms.cache.Set(ctx, ms.imageKey(record.ID, encoder.PNG{}), data); err != nil {
		ms.logger.Warnf("Caching maze %s: %v", record.ID, err)
	}

	return record, nil
}

func (ms *MazeService) ByID(ctx context.Context, id uuid.UUID) (*domain.Maze, error) {
	return ms.repo.ByID(ctx, id)
}

func (ms *MazeService) Grid(ctx context.Context, id uuid.UUID) (*maze.Grid, error) {
	res, err := ms.regenerate(ctx, id)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}

// Render serves the image from the cache, regenerating it from the stored
// seed under the cache lock on a miss.
func (ms *MazeService) Render(ctx context.Context, id uuid.UUID, format string) ([]byte, encoder.Encoder, error) {
	enc, err := encoder.ByFormat(format)
	if err != nil {
		return nil, nil, err
	}

	key := ms.imageKey(id, enc)
	data, err := ms.cache.Get(ctx, key)
	if err == nil {
		return data, enc, nil
	}
	if !errors.Is(err, i.ErrCacheMiss) {
		ms.logger.Warnf("Reading image cache %s: %v", key, err)
	}

	err = ms.cache.WithLock(ctx, key, func() error {
		// another instance may have rendered it while we waited for the lock
		if cached, err := ms.cache.Get(ctx, key); err == nil {
			data = cached
			return nil
		}

		res, err := ms.regenerate(ctx, id)
		if err != nil {
			return err
		}
		data, err = ms.encode(res, enc)
		if err != nil {
			return err
		}

		if err := ms.cache.Set(ctx, key, data); err != nil {
			ms.logger.Warnf("Caching maze %s: %v", id, err)
		}
		ms.logger.WithField("id", id).Debugf("Rendered %s image", enc.Extension())
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return data, enc, nil
}

func (ms *MazeService) regenerate(ctx context.Context, id uuid.UUID) (*mazegen.Result, error) {
	record, err := ms.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := mazegen.Generate(record.Options())
	if err != nil {
		return nil, fmt.Errorf("regenerating maze %s: %w", id, err)
	}
	return res, nil
}

func (ms *MazeService) encode(res *mazegen.Result, enc encoder.Encoder) ([]byte, error) {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, res.Canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (ms *MazeService) imageKey(id uuid.UUID, enc encoder.Encoder) string {
	return fmt.Sprintf(imageKeyFmt, ms.opts.Prefix, id, enc.Extension())
}

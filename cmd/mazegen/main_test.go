package main

import (
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/mazeraster/encoder"
	"github.com/beka-birhanu/mazeraster/mazegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingEncoder struct {
	encoder.PNG
}

func (failingEncoder) Encode(io.Writer, image.Image) error {
	return errors.New("encode failed")
}

func TestWriteImage(t *testing.T) {
	res, err := mazegen.Generate(mazegen.Options{CellsX: 4, CellsY: 3, Seed: 2})
	require.NoError(t, err)
	dir := t.TempDir()

	t.Run("Writes a decodable image", func(t *testing.T) {
		path := filepath.Join(dir, "maze.bmp")
		require.NoError(t, writeImage(path, encoder.BMP{}, res.Canvas))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		cfg, format, err := image.DecodeConfig(f)
		require.NoError(t, err)
		assert.Equal(t, "bmp", format)
		assert.Equal(t, res.Size.X, cfg.Width)
		assert.Equal(t, res.Size.Y, cfg.Height)
	})

	t.Run("Missing directory", func(t *testing.T) {
		err := writeImage(filepath.Join(dir, "missing", "maze.png"), encoder.PNG{}, res.Canvas)
		assert.Error(t, err)
	})

	t.Run("Encoder failure", func(t *testing.T) {
		err := writeImage(filepath.Join(dir, "broken.png"), failingEncoder{}, res.Canvas)
		assert.ErrorContains(t, err, "encode failed")
	})
}

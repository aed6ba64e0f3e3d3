/*
Package mazegen runs the full maze pipeline: it sizes the image, places the
entry and exit notches, draws the outline, generates the maze and paints it.

All randomness comes from a single math/rand source seeded from Options.Seed,
so a seed and a set of options always reproduce the same image.
*/
package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/mazeraster/geometry"
	"github.com/beka-birhanu/mazeraster/maze"
	"github.com/beka-birhanu/mazeraster/raster"
)

const (
	DefaultPassageWidth = 6
	DefaultWallWidth    = 2

	// MaxWidth bounds PassageWidth and WallWidth.
	MaxWidth = 256
	// MaxPixels bounds the width times the height of the image.
	MaxPixels = 1 << 26

	minCells = 3
)

var (
	ErrInvalidOptions = errors.New("invalid maze options")
)

// Options describe a maze to generate.
type Options struct {
	CellsX       int   // Number of cell columns.
	CellsY       int   // Number of cell rows.
	PassageWidth int   // Passage width in pixels, DefaultPassageWidth when zero.
	WallWidth    int   // Wall width in pixels, DefaultWallWidth when zero.
	Seed         int64 // Random seed, a time based seed is picked when not positive.
}

// Result is a generated and painted maze.
type Result struct {
	Options Options         // Options with defaults and seed filled in.
	Size    geometry.Point  // Image size in pixels.
	Region  geometry.Region // Area of the image covered by cells.
	Notches raster.Notches  // Entry and exit openings.
	Grid    *maze.Grid      // Finished cell connectivity.
	Canvas  *raster.Canvas  // Painted image.
}

// Normalize fills in defaults and validates o.
func (o Options) Normalize() (Options, error) {
	if o.PassageWidth == 0 {
		o.PassageWidth = DefaultPassageWidth
	}
	if o.WallWidth == 0 {
		o.WallWidth = DefaultWallWidth
	}
	if o.Seed <= 0 {
		o.Seed = time.Now().UnixNano()
	}

	if o.PassageWidth < 0 || o.WallWidth < 0 || o.PassageWidth > MaxWidth || o.WallWidth > MaxWidth {
		return o, fmt.Errorf("passage %d, wall %d, each must be within 1..%d: %w", o.PassageWidth, o.WallWidth, MaxWidth, ErrInvalidOptions)
	}
	if o.CellsX < minCells || o.CellsY < minCells {
		return o, fmt.Errorf("%dx%d cells, at least %dx%d required: %w", o.CellsX, o.CellsY, minCells, minCells, ErrInvalidOptions)
	}

	// checked per side first so the area cannot overflow
	if o.CellsX > MaxPixels/o.Pitch() || o.CellsY > MaxPixels/o.Pitch() {
		return o, fmt.Errorf("%dx%d cells of %d pixels: %w", o.CellsX, o.CellsY, o.Pitch(), ErrInvalidOptions)
	}
	if size := o.ImageSize(); size.X*size.Y > MaxPixels {
		return o, fmt.Errorf("image of %v exceeds %d pixels: %w", size, MaxPixels, ErrInvalidOptions)
	}
	return o, nil
}

// Pitch returns the size of one cell in pixels.
func (o Options) Pitch() int {
	return o.PassageWidth + o.WallWidth
}

// Outline returns the thickness of the image border in pixels.
func (o Options) Outline() int {
	return o.Pitch() / 2
}

// ImageSize returns the size of the image the options produce.
func (o Options) ImageSize() geometry.Point {
	border := 2 * o.Outline()
	return geometry.Point{
		X: o.CellsX*o.Pitch() + border,
		Y: o.CellsY*o.Pitch() + border,
	}
}

// Generate builds and paints a maze.
func Generate(opts Options) (*Result, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	size := opts.ImageSize()

	notches, err := raster.PlaceNotches(rng, size, opts.PassageWidth, opts.WallWidth, opts.Outline())
	if err != nil {
		return nil, fmt.Errorf("placing notches: %w", err)
	}

	canvas := raster.NewCanvas(size.X, size.Y)
	raster.DrawOutline(canvas, opts.Outline())

	region, err := geometry.Region{Size: size}.ShrinkBy(opts.Outline())
	if err != nil {
		return nil, fmt.Errorf("reserving outline: %w", err)
	}

	grid, err := maze.Build(region, opts.PassageWidth, opts.WallWidth)
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}
	if err := maze.Generate(grid, rng); err != nil {
		return nil, fmt.Errorf("generating maze: %w", err)
	}

	if err := raster.Paint(canvas, region, grid, opts.PassageWidth); err != nil {
		return nil, fmt.Errorf("painting maze: %w", err)
	}
	raster.Carve(canvas, notches)

	return &Result{
		Options: opts,
		Size:    size,
		Region:  region,
		Notches: notches,
		Grid:    grid,
		Canvas:  canvas,
	}, nil
}

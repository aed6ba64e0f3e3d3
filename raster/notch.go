package raster

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/mazeraster/geometry"
)

const minBorderCells = 3

var (
	ErrImageTooSmall = errors.New("image border too short for an entry notch")
)

// Rand picks notch positions. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Notches are the entry and exit openings on the image border.
type Notches struct {
	Entry geometry.Region `json:"entry" bson:"entry"`
	Exit  geometry.Region `json:"exit" bson:"exit"`
}

// PlaceNotches puts the entry on the top or the left border of an image of
// the given size, over a cell that is not in a corner, and the exit on the
// opposite border over the diagonally mirrored cell.
//
// A notch is one pitch deep. Along the border its interior spans exactly the
// passage pixels of its cell, so carving it never opens a wall of the cell or
// of its neighbors.
func PlaceNotches(rng Rand, size geometry.Point, passageWidth, wallWidth, outline int) (Notches, error) {
	if passageWidth <= 0 || wallWidth <= 0 {
		return Notches{}, fmt.Errorf("passage %d, wall %d: %w", passageWidth, wallWidth, ErrImageTooSmall)
	}
	pitch := passageWidth + wallWidth
	span := min(pitch, passageWidth+2)
	depth := min(pitch, outline+passageWidth+1)

	if rng.Intn(2) == 0 {
		cells, k, err := borderCell(rng, size.X, pitch, outline)
		if err != nil {
			return Notches{}, err
		}
		notchSize := geometry.Point{X: span, Y: depth}
		return Notches{
			Entry: geometry.Region{TopLeft: geometry.Point{X: cellStart(k, pitch, outline), Y: 0}, Size: notchSize},
			Exit:  geometry.Region{TopLeft: geometry.Point{X: cellStart(cells-1-k, pitch, outline), Y: size.Y - depth}, Size: notchSize},
		}, nil
	}

	cells, k, err := borderCell(rng, size.Y, pitch, outline)
	if err != nil {
		return Notches{}, err
	}
	notchSize := geometry.Point{X: depth, Y: span}
	return Notches{
		Entry: geometry.Region{TopLeft: geometry.Point{X: 0, Y: cellStart(k, pitch, outline)}, Size: notchSize},
		Exit:  geometry.Region{TopLeft: geometry.Point{X: size.X - depth, Y: cellStart(cells-1-k, pitch, outline)}, Size: notchSize},
	}, nil
}

// borderCell returns the number of cells along a border length pixels long
// and a random one of them that is not in a corner.
func borderCell(rng Rand, length, pitch, outline int) (int, int, error) {
	if length < 2*outline {
		return 0, 0, fmt.Errorf("border of %d pixels: %w", length, ErrImageTooSmall)
	}
	cells := (length - 2*outline) / pitch
	if cells < minBorderCells {
		return 0, 0, fmt.Errorf("border of %d cells: %w", cells, ErrImageTooSmall)
	}
	return cells, 1 + rng.Intn(cells-2), nil
}

// cellStart is the notch edge one pixel before cell k, so the notch interior
// starts on the cell's first pixel.
func cellStart(k, pitch, outline int) int {
	return outline - 1 + k*pitch
}

// Carve paints the strict interior of the entry with EntryColor and of the
// exit with ExitColor.
func Carve(c *Canvas, n Notches) {
	fillRegion(c, n.Entry, EntryColor)
	fillRegion(c, n.Exit, ExitColor)
}

func fillRegion(c *Canvas, r geometry.Region, col RGB) {
	bottomRight := r.BottomRight()
	for y := r.TopLeft.Y; y <= bottomRight.Y; y++ {
		for x := r.TopLeft.X; x <= bottomRight.X; x++ {
			if r.Intersect(geometry.Point{X: x, Y: y}) {
				c.Set(x, y, col)
			}
		}
	}
}

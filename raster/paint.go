package raster

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/mazeraster/geometry"
	"github.com/beka-birhanu/mazeraster/maze"
)

var (
	ErrGridMismatch = errors.New("region does not divide into the grid's cells")
)

// Paint draws the walls of g into the part of c strictly inside region.
//
// Every cell covers region.Size/(CellsX, CellsY) pixels. Pixels past
// passageWidth on a cell's right or bottom edge form its wall band; they are
// painted with WallColor when the matching wall is closed and the cell is
// not on the last column or row. All other pixels are left untouched.
func Paint(c *Canvas, region geometry.Region, g *maze.Grid, passageWidth int) error {
	if g.CellsX <= 0 || g.CellsY <= 0 || len(g.Cells) != g.CellsX*g.CellsY {
		return fmt.Errorf("grid %dx%d with %d cells: %w", g.CellsX, g.CellsY, len(g.Cells), ErrGridMismatch)
	}
	if region.Size.X%g.CellsX != 0 || region.Size.Y%g.CellsY != 0 {
		return fmt.Errorf("region %v, grid %dx%d: %w", region, g.CellsX, g.CellsY, ErrGridMismatch)
	}

	pitchX := region.Size.X / g.CellsX
	pitchY := region.Size.Y / g.CellsY
	topLeft, bottomRight := region.TopLeft, region.BottomRight()

	for y := topLeft.Y + 1; y < bottomRight.Y && y < c.Height; y++ {
		row, rowOffset := divmod(y-topLeft.Y, pitchY)
		for x := topLeft.X + 1; x < bottomRight.X && x < c.Width; x++ {
			col, colOffset := divmod(x-topLeft.X, pitchX)
			cell := &g.Cells[col+row*g.CellsX]

			if colOffset > passageWidth && !cell.Right && col < g.CellsX-1 {
				c.Set(x, y, WallColor)
			}
			if rowOffset > passageWidth && !cell.Bot && row < g.CellsY-1 {
				c.Set(x, y, WallColor)
			}
		}
	}

	return nil
}

func divmod(a, b int) (int, int) {
	return a / b, a % b
}

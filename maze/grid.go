/*
Package maze builds rectangular mazes as spanning trees over a grid of cells.

A Grid is created over a pixel Region whose size is an exact multiple of the
cell pitch (passage width + wall width). Generate then opens walls between
cells of different groups until every cell is reachable from every other
through exactly one path.

The package is pure: it performs no I/O and all randomness comes from the Rand
passed to Generate.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/mazeraster/geometry"
)

var (
	ErrInvalidPitch       = errors.New("passage and wall widths must be positive")
	ErrDimensionMismatch  = errors.New("region size is not a multiple of the cell pitch")
	ErrEmptyGrid          = errors.New("grid has no cells")
	ErrInvariantViolation = errors.New("grid index out of bounds")
	ErrGenerationStalled  = errors.New("generation pass merged no groups")
)

// Grid is a row-major array of cells, CellsX wide and CellsY tall.
type Grid struct {
	CellsX int    `json:"cells_x"`
	CellsY int    `json:"cells_y"`
	Cells  []Cell `json:"cells"`
}

// Build divides region into cells of passageWidth+wallWidth pixels.
func Build(region geometry.Region, passageWidth, wallWidth int) (*Grid, error) {
	if passageWidth <= 0 || wallWidth <= 0 {
		return nil, ErrInvalidPitch
	}

	pitch := passageWidth + wallWidth
	if region.Size.X%pitch != 0 || region.Size.Y%pitch != 0 {
		return nil, fmt.Errorf("size %v, pitch %d: %w", region.Size, pitch, ErrDimensionMismatch)
	}

	return NewGrid(region.Size.X/pitch, region.Size.Y/pitch)
}

// NewGrid allocates cellsX*cellsY closed cells, each in its own group.
func NewGrid(cellsX, cellsY int) (*Grid, error) {
	if cellsX <= 0 || cellsY <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", cellsX, cellsY, ErrEmptyGrid)
	}

	cells := make([]Cell, cellsX*cellsY)
	for i := range cells {
		cells[i] = Cell{Index: i, Group: i}
	}

	return &Grid{
		CellsX: cellsX,
		CellsY: cellsY,
		Cells:  cells,
	}, nil
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.Cells)
}

// Cell returns the cell at column x, row y.
func (g *Grid) Cell(x, y int) *Cell {
	return &g.Cells[y*g.CellsX+x]
}

// open breaks the wall between cell from and its neighbor, on both sides.
func (g *Grid) open(from int, n Neighbor) {
	g.Cells[from].setOpen(n.Direction)
	g.Cells[n.Index].setOpen(n.Direction.Opposite())
}

// Edges counts open wall pairs between adjacent cells.
func (g *Grid) Edges() int {
	edges := 0
	for i := range g.Cells {
		x := i % g.CellsX
		if g.Cells[i].Right && x < g.CellsX-1 {
			edges++
		}
		if g.Cells[i].Bot && i+g.CellsX < len(g.Cells) {
			edges++
		}
	}
	return edges
}

// Groups counts distinct group ids.
func (g *Grid) Groups() int {
	seen := make(map[int]struct{})
	for _, c := range g.Cells {
		seen[c.Group] = struct{}{}
	}
	return len(seen)
}

// Mirrored reports whether every open flag is matched by the facing flag of
// the adjacent cell, and no flag opens onto the grid border.
func (g *Grid) Mirrored() bool {
	n := len(g.Cells)
	for i := range g.Cells {
		for _, d := range []Direction{Up, Down, Left, Right} {
			if !g.Cells[i].Open(d) {
				continue
			}
			j, ok := g.step(i, d)
			if !ok || j >= n || !g.Cells[j].Open(d.Opposite()) {
				return false
			}
		}
	}
	return true
}

// Connected reports whether every cell is reachable from cell 0 through open walls.
func (g *Grid) Connected() bool {
	if len(g.Cells) == 0 {
		return true
	}

	visited := make([]bool, len(g.Cells))
	visited[0] = true
	stack := []int{0}
	reached := 1
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range []Direction{Up, Down, Left, Right} {
			if !g.Cells[i].Open(d) {
				continue
			}
			j, ok := g.step(i, d)
			if !ok || visited[j] {
				continue
			}
			visited[j] = true
			reached++
			stack = append(stack, j)
		}
	}
	return reached == len(g.Cells)
}

// IsSpanningTree reports whether the open walls connect all cells with no cycle.
func (g *Grid) IsSpanningTree() bool {
	return g.Mirrored() && g.Connected() && g.Edges() == len(g.Cells)-1
}

// step returns the index of the cell on side d of cell i, if it exists.
func (g *Grid) step(i int, d Direction) (int, bool) {
	for _, n := range Neighbors(i, len(g.Cells), g.CellsX) {
		if n.Direction == d {
			return n.Index, true
		}
	}
	return 0, false
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.CellsX) + "\n")

	for y := 0; y < g.CellsY; y++ {
		output.WriteString("|")
		for x := 0; x < g.CellsX; x++ {
			if g.Cell(x, y).Right {
				output.WriteString("    ")
			} else {
				output.WriteString("   |")
			}
		}
		output.WriteString("\n+")

		for x := 0; x < g.CellsX; x++ {
			if g.Cell(x, y).Bot {
				output.WriteString("   +")
			} else {
				output.WriteString("---+")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}

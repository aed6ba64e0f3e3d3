package maze

// Direction names a side of a cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the side facing d across an edge.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Unknown"
}

// Cell represents a single cell in a maze grid.
// Its flags are true when the wall on that side is open.
type Cell struct {
	Index int  `json:"index"` // Index is the row-major position in the grid.
	Group int  `json:"group"` // Group identifies the connected component the cell belongs to.
	Top   bool `json:"top"`   // Top indicates whether the wall on the top side is open.
	Bot   bool `json:"bot"`   // Bot indicates whether the wall on the bottom side is open.
	Left  bool `json:"left"`  // Left indicates whether the wall on the left side is open.
	Right bool `json:"right"` // Right indicates whether the wall on the right side is open.
}

// Open reports whether the wall on side d is open.
func (c *Cell) Open(d Direction) bool {
	switch d {
	case Up:
		return c.Top
	case Down:
		return c.Bot
	case Left:
		return c.Left
	case Right:
		return c.Right
	}
	return false
}

func (c *Cell) setOpen(d Direction) {
	switch d {
	case Up:
		c.Top = true
	case Down:
		c.Bot = true
	case Left:
		c.Left = true
	case Right:
		c.Right = true
	}
}

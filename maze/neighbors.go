package maze

// Neighbor is an adjacent cell together with the side it lies on.
type Neighbor struct {
	Direction Direction
	Index     int
}

// Neighbors lists the cells adjacent to cell i in a grid of n cells that is
// cellsX wide, in the order Up, Down, Left, Right.
func Neighbors(i, n, cellsX int) []Neighbor {
	result := make([]Neighbor, 0, 4)
	if i >= cellsX {
		result = append(result, Neighbor{Direction: Up, Index: i - cellsX})
	}
	if i+cellsX < n {
		result = append(result, Neighbor{Direction: Down, Index: i + cellsX})
	}
	if i%cellsX > 0 {
		result = append(result, Neighbor{Direction: Left, Index: i - 1})
	}
	if i < n && (i+1)%cellsX > 0 {
		result = append(result, Neighbor{Direction: Right, Index: i + 1})
	}
	return result
}

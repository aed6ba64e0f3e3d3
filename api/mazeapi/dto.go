// Package mazeapi provides the request and response structures of the maze API.
package mazeapi

import (
	"github.com/beka-birhanu/mazeraster/maze"
	"github.com/beka-birhanu/mazeraster/mazegen"
)

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	CellsX       int   `json:"cells_x" binding:"required"`
	CellsY       int   `json:"cells_y" binding:"required"`
	PassageWidth int   `json:"passage_width"`
	WallWidth    int   `json:"wall_width"`
	Seed         int64 `json:"seed"`
}

// Options converts the request into generation options.
func (r CreateMazeRequest) Options() mazegen.Options {
	return mazegen.Options{
		CellsX:       r.CellsX,
		CellsY:       r.CellsY,
		PassageWidth: r.PassageWidth,
		WallWidth:    r.WallWidth,
		Seed:         r.Seed,
	}
}

// GridResponse exposes the cell connectivity of a maze for external solvers.
type GridResponse struct {
	CellsX int         `json:"cells_x"`
	CellsY int         `json:"cells_y"`
	Edges  int         `json:"edges"`
	Cells  []maze.Cell `json:"cells"`
}

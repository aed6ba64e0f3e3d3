// Package domain holds the records persisted by the maze service.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/mazeraster/geometry"
	"github.com/beka-birhanu/mazeraster/mazegen"
	"github.com/google/uuid"
)

var (
	ErrMazeNotFound = errors.New("maze not found")
)

// Maze describes a generated maze. The image itself is not stored: the seed
// and dimensions reproduce it exactly.
type Maze struct {
	ID           uuid.UUID       `json:"id" bson:"_id"`
	Seed         int64           `json:"seed" bson:"seed"`
	CellsX       int             `json:"cells_x" bson:"cellsX"`
	CellsY       int             `json:"cells_y" bson:"cellsY"`
	PassageWidth int             `json:"passage_width" bson:"passageWidth"`
	WallWidth    int             `json:"wall_width" bson:"wallWidth"`
	Width        int             `json:"width" bson:"width"`
	Height       int             `json:"height" bson:"height"`
	Entry        geometry.Region `json:"entry" bson:"entry"`
	Exit         geometry.Region `json:"exit" bson:"exit"`
	CreatedAt    time.Time       `json:"created_at" bson:"createdAt"`
}

// NewMaze records a generated maze under a fresh ID.
func NewMaze(res *mazegen.Result) *Maze {
	return &Maze{
		ID:           uuid.New(),
		Seed:         res.Options.Seed,
		CellsX:       res.Options.CellsX,
		CellsY:       res.Options.CellsY,
		PassageWidth: res.Options.PassageWidth,
		WallWidth:    res.Options.WallWidth,
		Width:        res.Size.X,
		Height:       res.Size.Y,
		Entry:        res.Notches.Entry,
		Exit:         res.Notches.Exit,
		CreatedAt:    time.Now().UTC(),
	}
}

// Options returns the generation options that reproduce m.
func (m *Maze) Options() mazegen.Options {
	return mazegen.Options{
		CellsX:       m.CellsX,
		CellsY:       m.CellsY,
		PassageWidth: m.PassageWidth,
		WallWidth:    m.WallWidth,
		Seed:         m.Seed,
	}
}

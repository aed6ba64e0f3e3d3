package i

import (
	"context"

	"github.com/beka-birhanu/mazeraster/domain"
	"github.com/beka-birhanu/mazeraster/encoder"
	"github.com/beka-birhanu/mazeraster/maze"
	"github.com/beka-birhanu/mazeraster/mazegen"
	"github.com/google/uuid"
)

// MazeService creates mazes and renders them on demand.
type MazeService interface {
	Create(ctx context.Context, opts mazegen.Options) (*domain.Maze, error)
	ByID(ctx context.Context, id uuid.UUID) (*domain.Maze, error)
	// Grid regenerates the cell connectivity of a stored maze.
	Grid(ctx context.Context, id uuid.UUID) (*maze.Grid, error)
	// Render returns the maze image encoded in format, and the encoder used.
	Render(ctx context.Context, id uuid.UUID, format string) ([]byte, encoder.Encoder, error)
}

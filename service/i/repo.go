package i

import (
	"context"

	"github.com/beka-birhanu/mazeraster/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze record persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze record in the repository.
	// If the record already exists, it updates it. Otherwise, it creates a new one.
	Save(ctx context.Context, m *domain.Maze) error

	// ByID retrieves a maze record by its unique ID.
	// Returns domain.ErrMazeNotFound if no record has that ID.
	ByID(ctx context.Context, id uuid.UUID) (*domain.Maze, error)
}

package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/mazeraster/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	saveTimeout  = time.Second
	queryTimeout = 2 * time.Second
)

// MazeRepo handles the persistence of maze records.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze record in the repository.
func (r *MazeRepo) Save(ctx context.Context, m *domain.Maze) error {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	filter := bson.M{"_id": m.ID}
	update := bson.M{
		"$set": bson.M{
			"seed":         m.Seed,
			"cellsX":       m.CellsX,
			"cellsY":       m.CellsY,
			"passageWidth": m.PassageWidth,
			"wallWidth":    m.WallWidth,
			"width":        m.Width,
			"height":       m.Height,
			"entry":        m.Entry,
			"exit":         m.Exit,
			"createdAt":    m.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze record by its ID.
// Returns domain.ErrMazeNotFound if the record does not exist.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*domain.Maze, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	var m domain.Maze
	if err := r.collection.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &m, nil
}

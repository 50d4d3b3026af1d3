package repositories

import (
	"context"
	"fmt"

	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PositionStore interface {
	FindByID(ctx context.Context, id int64) (*entities.PlayerPosition, error)
	FindByName(ctx context.Context, name string) (*entities.PlayerPosition, error)
	ListAll(ctx context.Context) ([]entities.PlayerPosition, error)
	Insert(ctx context.Context, position *entities.PlayerPosition) error
}

type PositionRepository struct {
	coll *mongo.Collection
}

func NewPositionRepository(db *mongo.Database) *PositionRepository {
	return &PositionRepository{coll: db.Collection(constants.CollPositions)}
}

var _ PositionStore = (*PositionRepository)(nil)

func (r *PositionRepository) FindByID(ctx context.Context, id int64) (*entities.PlayerPosition, error) {
	var pos entities.PlayerPosition
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&pos)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch position: %w", err)
	}
	return &pos, nil
}

func (r *PositionRepository) FindByName(ctx context.Context, name string) (*entities.PlayerPosition, error) {
	var pos entities.PlayerPosition
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&pos)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch position by name: %w", err)
	}
	return &pos, nil
}

func (r *PositionRepository) ListAll(ctx context.Context) ([]entities.PlayerPosition, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	var positions []entities.PlayerPosition
	if err := cur.All(ctx, &positions); err != nil {
		return nil, fmt.Errorf("failed to decode positions: %w", err)
	}
	return positions, nil
}

func (r *PositionRepository) Insert(ctx context.Context, position *entities.PlayerPosition) error {
	if _, err := r.coll.InsertOne(ctx, position); err != nil {
		return fmt.Errorf("failed to insert position: %w", err)
	}
	return nil
}

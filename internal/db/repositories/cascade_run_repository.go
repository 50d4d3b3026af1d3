package repositories

import (
	"context"
	"fmt"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CascadeRunStore journals reassignment cascades so a crashed run can be
// resumed instead of re-applied from scratch.
type CascadeRunStore interface {
	FindOpenByUser(ctx context.Context, userID string) (*entities.CascadeRun, error)
	Insert(ctx context.Context, run *entities.CascadeRun) error
	Replace(ctx context.Context, run *entities.CascadeRun) error
}

type CascadeRunRepository struct {
	coll *mongo.Collection
}

func NewCascadeRunRepository(db *mongo.Database) *CascadeRunRepository {
	return &CascadeRunRepository{coll: db.Collection(constants.CollCascadeRuns)}
}

var _ CascadeRunStore = (*CascadeRunRepository)(nil)

// FindOpenByUser returns the user's incomplete run, if any
func (r *CascadeRunRepository) FindOpenByUser(ctx context.Context, userID string) (*entities.CascadeRun, error) {
	var run entities.CascadeRun
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "completed_at": nil}).Decode(&run)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch open cascade run: %w", err)
	}
	return &run, nil
}

func (r *CascadeRunRepository) Insert(ctx context.Context, run *entities.CascadeRun) error {
	if _, err := r.coll.InsertOne(ctx, run); err != nil {
		return fmt.Errorf("failed to insert cascade run: %w", err)
	}
	return nil
}

func (r *CascadeRunRepository) Replace(ctx context.Context, run *entities.CascadeRun) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": run.ID}, run)
	if err != nil {
		return fmt.Errorf("failed to replace cascade run: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("cascade run %s: %w", run.ID, apperrors.ErrNotFound)
	}
	return nil
}

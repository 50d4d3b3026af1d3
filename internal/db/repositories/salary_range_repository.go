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

type SalaryRangeStore interface {
	FindByID(ctx context.Context, id int64) (*entities.SalaryRange, error)
	Insert(ctx context.Context, sr *entities.SalaryRange) error
	Replace(ctx context.Context, sr *entities.SalaryRange) error
	Delete(ctx context.Context, id int64) error
}

type SalaryRangeRepository struct {
	coll *mongo.Collection
}

func NewSalaryRangeRepository(db *mongo.Database) *SalaryRangeRepository {
	return &SalaryRangeRepository{coll: db.Collection(constants.CollSalaryRange)}
}

var _ SalaryRangeStore = (*SalaryRangeRepository)(nil)

func (r *SalaryRangeRepository) FindByID(ctx context.Context, id int64) (*entities.SalaryRange, error) {
	var sr entities.SalaryRange
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sr)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch salary range: %w", err)
	}
	return &sr, nil
}

func (r *SalaryRangeRepository) Insert(ctx context.Context, sr *entities.SalaryRange) error {
	if _, err := r.coll.InsertOne(ctx, sr); err != nil {
		return fmt.Errorf("failed to insert salary range: %w", err)
	}
	return nil
}

func (r *SalaryRangeRepository) Replace(ctx context.Context, sr *entities.SalaryRange) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": sr.ID}, sr)
	if err != nil {
		return fmt.Errorf("failed to replace salary range: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("salary range %d: %w", sr.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete is a no-op when the row is already gone; salary ranges are only
// removed as part of an advertisement cascade, which must be re-runnable.
func (r *SalaryRangeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete salary range: %w", err)
	}
	return nil
}

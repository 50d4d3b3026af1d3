package repositories

import (
	"context"
	"fmt"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProblemStore interface {
	FindByID(ctx context.Context, id int64) (*entities.Problem, error)
	ListAll(ctx context.Context) ([]entities.Problem, error)
	ListUnresolved(ctx context.Context) ([]entities.Problem, error)
	Insert(ctx context.Context, problem *entities.Problem) error
	Replace(ctx context.Context, problem *entities.Problem) error
}

type ProblemRepository struct {
	coll *mongo.Collection
}

func NewProblemRepository(db *mongo.Database) *ProblemRepository {
	return &ProblemRepository{coll: db.Collection(constants.CollProblems)}
}

var _ ProblemStore = (*ProblemRepository)(nil)

func (r *ProblemRepository) FindByID(ctx context.Context, id int64) (*entities.Problem, error) {
	var problem entities.Problem
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&problem)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch problem: %w", err)
	}
	return &problem, nil
}

func (r *ProblemRepository) list(ctx context.Context, filter bson.M) ([]entities.Problem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "creation_date", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	var problems []entities.Problem
	if err := cur.All(ctx, &problems); err != nil {
		return nil, fmt.Errorf("failed to decode problems: %w", err)
	}
	return problems, nil
}

func (r *ProblemRepository) ListAll(ctx context.Context) ([]entities.Problem, error) {
	return r.list(ctx, bson.M{})
}

func (r *ProblemRepository) ListUnresolved(ctx context.Context) ([]entities.Problem, error) {
	return r.list(ctx, bson.M{"is_resolved": false})
}

func (r *ProblemRepository) Insert(ctx context.Context, problem *entities.Problem) error {
	if _, err := r.coll.InsertOne(ctx, problem); err != nil {
		return fmt.Errorf("failed to insert problem: %w", err)
	}
	return nil
}

func (r *ProblemRepository) Replace(ctx context.Context, problem *entities.Problem) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": problem.ID}, problem)
	if err != nil {
		return fmt.Errorf("failed to replace problem: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("problem %d: %w", problem.ID, apperrors.ErrNotFound)
	}
	return nil
}

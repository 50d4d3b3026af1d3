package repositories

import (
	"context"
	"fmt"

	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OfferStatusStore holds the fixed Offered/Accepted/Rejected vocabulary,
// seeded once at startup and never mutated by normal flows.
type OfferStatusStore interface {
	FindByID(ctx context.Context, id int64) (*entities.OfferStatus, error)
	FindByName(ctx context.Context, name string) (*entities.OfferStatus, error)
	ListAll(ctx context.Context) ([]entities.OfferStatus, error)
	Insert(ctx context.Context, status *entities.OfferStatus) error
}

type OfferStatusRepository struct {
	coll *mongo.Collection
}

func NewOfferStatusRepository(db *mongo.Database) *OfferStatusRepository {
	return &OfferStatusRepository{coll: db.Collection(constants.CollOfferStatuses)}
}

var _ OfferStatusStore = (*OfferStatusRepository)(nil)

func (r *OfferStatusRepository) FindByID(ctx context.Context, id int64) (*entities.OfferStatus, error) {
	var status entities.OfferStatus
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&status)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offer status: %w", err)
	}
	return &status, nil
}

func (r *OfferStatusRepository) FindByName(ctx context.Context, name string) (*entities.OfferStatus, error) {
	var status entities.OfferStatus
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&status)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offer status by name: %w", err)
	}
	return &status, nil
}

func (r *OfferStatusRepository) ListAll(ctx context.Context) ([]entities.OfferStatus, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list offer statuses: %w", err)
	}
	var statuses []entities.OfferStatus
	if err := cur.All(ctx, &statuses); err != nil {
		return nil, fmt.Errorf("failed to decode offer statuses: %w", err)
	}
	return statuses, nil
}

func (r *OfferStatusRepository) Insert(ctx context.Context, status *entities.OfferStatus) error {
	if _, err := r.coll.InsertOne(ctx, status); err != nil {
		return fmt.Errorf("failed to insert offer status: %w", err)
	}
	return nil
}

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

// OfferStore is bound to the offering side at construction. The
// advertisement an offer answers always belongs to the opposite side.
type OfferStore interface {
	Side() constants.Side
	FindByID(ctx context.Context, id int64) (*entities.Offer, error)
	ListAll(ctx context.Context) ([]entities.Offer, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Offer, error)
	ListByAdvertisement(ctx context.Context, advertisementID int64) ([]entities.Offer, error)
	FindByAdvertisementAndUser(ctx context.Context, advertisementID int64, userID string) (*entities.Offer, error)
	Insert(ctx context.Context, offer *entities.Offer) error
	Replace(ctx context.Context, offer *entities.Offer) error
	UpdateStatus(ctx context.Context, id int64, statusID int64, statusName string) error
	Delete(ctx context.Context, id int64) error
	DeleteByAdvertisement(ctx context.Context, advertisementID int64) error
}

type OfferRepository struct {
	side constants.Side
	coll *mongo.Collection
}

func NewOfferRepository(db *mongo.Database, side constants.Side) *OfferRepository {
	return &OfferRepository{
		side: side,
		coll: db.Collection(constants.OfferCollection(side)),
	}
}

var _ OfferStore = (*OfferRepository)(nil)

func (r *OfferRepository) Side() constants.Side { return r.side }

func (r *OfferRepository) FindByID(ctx context.Context, id int64) (*entities.Offer, error) {
	var offer entities.Offer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&offer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s offer: %w", r.side, err)
	}
	return &offer, nil
}

func (r *OfferRepository) find(ctx context.Context, filter bson.M) ([]entities.Offer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "creation_date", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s offers: %w", r.side, err)
	}
	var offers []entities.Offer
	if err := cur.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode %s offers: %w", r.side, err)
	}
	return offers, nil
}

// ListAll returns every offer, newest first
func (r *OfferRepository) ListAll(ctx context.Context) ([]entities.Offer, error) {
	return r.find(ctx, bson.M{})
}

func (r *OfferRepository) ListByUser(ctx context.Context, userID string) ([]entities.Offer, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *OfferRepository) ListByAdvertisement(ctx context.Context, advertisementID int64) ([]entities.Offer, error) {
	return r.find(ctx, bson.M{"advertisement_id": advertisementID})
}

func (r *OfferRepository) FindByAdvertisementAndUser(ctx context.Context, advertisementID int64, userID string) (*entities.Offer, error) {
	var offer entities.Offer
	err := r.coll.FindOne(ctx, bson.M{"advertisement_id": advertisementID, "user_id": userID}).Decode(&offer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s offer by advertisement and user: %w", r.side, err)
	}
	return &offer, nil
}

func (r *OfferRepository) Insert(ctx context.Context, offer *entities.Offer) error {
	if _, err := r.coll.InsertOne(ctx, offer); err != nil {
		return fmt.Errorf("failed to insert %s offer: %w", r.side, err)
	}
	return nil
}

func (r *OfferRepository) Replace(ctx context.Context, offer *entities.Offer) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": offer.ID}, offer)
	if err != nil {
		return fmt.Errorf("failed to replace %s offer: %w", r.side, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s offer %d: %w", r.side, offer.ID, apperrors.ErrNotFound)
	}
	return nil
}

// UpdateStatus touches only the status fields of the matching row
func (r *OfferRepository) UpdateStatus(ctx context.Context, id int64, statusID int64, statusName string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status_id": statusID, "status_name": statusName}},
	)
	if err != nil {
		return fmt.Errorf("failed to update %s offer status: %w", r.side, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s offer %d: %w", r.side, id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s offer: %w", r.side, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s offer %d: %w", r.side, id, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteByAdvertisement removes every offer answering an advertisement;
// a no-op when none exist so the delete cascade can be re-run.
func (r *OfferRepository) DeleteByAdvertisement(ctx context.Context, advertisementID int64) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"advertisement_id": advertisementID}); err != nil {
		return fmt.Errorf("failed to delete %s offers for advertisement: %w", r.side, err)
	}
	return nil
}

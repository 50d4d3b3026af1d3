package repositories

import (
	"context"
	"fmt"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdvertisementStore is bound to one side (player or club) at
// construction. Both sides share the same shape and the same contract;
// only the backing collection differs.
type AdvertisementStore interface {
	Side() constants.Side
	FindByID(ctx context.Context, id int64) (*entities.Advertisement, error)
	ListAll(ctx context.Context) ([]entities.Advertisement, error)
	ListActive(ctx context.Context, now time.Time) ([]entities.Advertisement, error)
	ListInactive(ctx context.Context, now time.Time) ([]entities.Advertisement, error)
	CountActive(ctx context.Context, now time.Time) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Advertisement, error)
	ListByIDs(ctx context.Context, ids []int64) ([]entities.Advertisement, error)
	Insert(ctx context.Context, ad *entities.Advertisement) error
	Replace(ctx context.Context, ad *entities.Advertisement) error
	Delete(ctx context.Context, id int64) error
}

type AdvertisementRepository struct {
	side constants.Side
	coll *mongo.Collection
}

func NewAdvertisementRepository(db *mongo.Database, side constants.Side) *AdvertisementRepository {
	return &AdvertisementRepository{
		side: side,
		coll: db.Collection(constants.AdvertisementCollection(side)),
	}
}

var _ AdvertisementStore = (*AdvertisementRepository)(nil)

func (r *AdvertisementRepository) Side() constants.Side { return r.side }

func (r *AdvertisementRepository) FindByID(ctx context.Context, id int64) (*entities.Advertisement, error) {
	var ad entities.Advertisement
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ad)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s advertisement: %w", r.side, err)
	}
	return &ad, nil
}

func (r *AdvertisementRepository) find(ctx context.Context, filter bson.M, sort bson.D) ([]entities.Advertisement, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s advertisements: %w", r.side, err)
	}
	var ads []entities.Advertisement
	if err := cur.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode %s advertisements: %w", r.side, err)
	}
	return ads, nil
}

// ListAll returns every advertisement, latest-expiring first
func (r *AdvertisementRepository) ListAll(ctx context.Context) ([]entities.Advertisement, error) {
	return r.find(ctx, bson.M{}, bson.D{{Key: "end_date", Value: -1}})
}

// ListActive returns open advertisements, soonest to expire first
func (r *AdvertisementRepository) ListActive(ctx context.Context, now time.Time) ([]entities.Advertisement, error) {
	return r.find(ctx, bson.M{"end_date": bson.M{"$gte": now}}, bson.D{{Key: "end_date", Value: 1}})
}

func (r *AdvertisementRepository) ListInactive(ctx context.Context, now time.Time) ([]entities.Advertisement, error) {
	return r.find(ctx, bson.M{"end_date": bson.M{"$lt": now}}, bson.D{{Key: "end_date", Value: -1}})
}

func (r *AdvertisementRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"end_date": bson.M{"$gte": now}})
	if err != nil {
		return 0, fmt.Errorf("failed to count active %s advertisements: %w", r.side, err)
	}
	return n, nil
}

func (r *AdvertisementRepository) ListByUser(ctx context.Context, userID string) ([]entities.Advertisement, error) {
	return r.find(ctx, bson.M{"user_id": userID}, bson.D{{Key: "end_date", Value: -1}})
}

func (r *AdvertisementRepository) ListByIDs(ctx context.Context, ids []int64) ([]entities.Advertisement, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, bson.D{{Key: "end_date", Value: -1}})
}

func (r *AdvertisementRepository) Insert(ctx context.Context, ad *entities.Advertisement) error {
	if _, err := r.coll.InsertOne(ctx, ad); err != nil {
		return fmt.Errorf("failed to insert %s advertisement: %w", r.side, err)
	}
	return nil
}

func (r *AdvertisementRepository) Replace(ctx context.Context, ad *entities.Advertisement) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": ad.ID}, ad)
	if err != nil {
		return fmt.Errorf("failed to replace %s advertisement: %w", r.side, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s advertisement %d: %w", r.side, ad.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *AdvertisementRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s advertisement: %w", r.side, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s advertisement %d: %w", r.side, id, apperrors.ErrNotFound)
	}
	return nil
}

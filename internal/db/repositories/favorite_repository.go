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

// FavoriteStore is bound to the advertisement side it indexes
type FavoriteStore interface {
	Side() constants.Side
	FindByID(ctx context.Context, id int64) (*entities.Favorite, error)
	FindByPair(ctx context.Context, advertisementID int64, userID string) (*entities.Favorite, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Favorite, error)
	Insert(ctx context.Context, fav *entities.Favorite) error
	Delete(ctx context.Context, id int64) error
	DeleteByAdvertisement(ctx context.Context, advertisementID int64) error
	DeleteByUser(ctx context.Context, userID string) error
}

type FavoriteRepository struct {
	side constants.Side
	coll *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database, side constants.Side) *FavoriteRepository {
	return &FavoriteRepository{
		side: side,
		coll: db.Collection(constants.FavoriteCollection(side)),
	}
}

var _ FavoriteStore = (*FavoriteRepository)(nil)

func (r *FavoriteRepository) Side() constants.Side { return r.side }

func (r *FavoriteRepository) FindByID(ctx context.Context, id int64) (*entities.Favorite, error) {
	var fav entities.Favorite
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&fav)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s favorite: %w", r.side, err)
	}
	return &fav, nil
}

func (r *FavoriteRepository) FindByPair(ctx context.Context, advertisementID int64, userID string) (*entities.Favorite, error) {
	var fav entities.Favorite
	err := r.coll.FindOne(ctx, bson.M{"advertisement_id": advertisementID, "user_id": userID}).Decode(&fav)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s favorite by pair: %w", r.side, err)
	}
	return &fav, nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]entities.Favorite, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s favorites: %w", r.side, err)
	}
	var favs []entities.Favorite
	if err := cur.All(ctx, &favs); err != nil {
		return nil, fmt.Errorf("failed to decode %s favorites: %w", r.side, err)
	}
	return favs, nil
}

func (r *FavoriteRepository) Insert(ctx context.Context, fav *entities.Favorite) error {
	if _, err := r.coll.InsertOne(ctx, fav); err != nil {
		return fmt.Errorf("failed to insert %s favorite: %w", r.side, err)
	}
	return nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s favorite: %w", r.side, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s favorite %d: %w", r.side, id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *FavoriteRepository) DeleteByAdvertisement(ctx context.Context, advertisementID int64) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"advertisement_id": advertisementID}); err != nil {
		return fmt.Errorf("failed to delete %s favorites for advertisement: %w", r.side, err)
	}
	return nil
}

func (r *FavoriteRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("failed to delete %s favorites for user: %w", r.side, err)
	}
	return nil
}

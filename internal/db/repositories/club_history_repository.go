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

type ClubHistoryStore interface {
	FindByID(ctx context.Context, id int64) (*entities.ClubHistory, error)
	ListByPlayer(ctx context.Context, playerID string) ([]entities.ClubHistory, error)
	Insert(ctx context.Context, history *entities.ClubHistory) error
	Replace(ctx context.Context, history *entities.ClubHistory) error
	Delete(ctx context.Context, id int64) error
}

type AchievementsStore interface {
	FindByID(ctx context.Context, id int64) (*entities.Achievements, error)
	Insert(ctx context.Context, a *entities.Achievements) error
	Replace(ctx context.Context, a *entities.Achievements) error
	Delete(ctx context.Context, id int64) error
}

type ClubHistoryRepository struct {
	coll *mongo.Collection
}

func NewClubHistoryRepository(db *mongo.Database) *ClubHistoryRepository {
	return &ClubHistoryRepository{coll: db.Collection(constants.CollClubHistories)}
}

var _ ClubHistoryStore = (*ClubHistoryRepository)(nil)

func (r *ClubHistoryRepository) FindByID(ctx context.Context, id int64) (*entities.ClubHistory, error) {
	var history entities.ClubHistory
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&history)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club history: %w", err)
	}
	return &history, nil
}

func (r *ClubHistoryRepository) ListByPlayer(ctx context.Context, playerID string) ([]entities.ClubHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"player_id": playerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list club histories: %w", err)
	}
	var histories []entities.ClubHistory
	if err := cur.All(ctx, &histories); err != nil {
		return nil, fmt.Errorf("failed to decode club histories: %w", err)
	}
	return histories, nil
}

func (r *ClubHistoryRepository) Insert(ctx context.Context, history *entities.ClubHistory) error {
	if _, err := r.coll.InsertOne(ctx, history); err != nil {
		return fmt.Errorf("failed to insert club history: %w", err)
	}
	return nil
}

func (r *ClubHistoryRepository) Replace(ctx context.Context, history *entities.ClubHistory) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": history.ID}, history)
	if err != nil {
		return fmt.Errorf("failed to replace club history: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("club history %d: %w", history.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *ClubHistoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete club history: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("club history %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

type AchievementsRepository struct {
	coll *mongo.Collection
}

func NewAchievementsRepository(db *mongo.Database) *AchievementsRepository {
	return &AchievementsRepository{coll: db.Collection(constants.CollAchievements)}
}

var _ AchievementsStore = (*AchievementsRepository)(nil)

func (r *AchievementsRepository) FindByID(ctx context.Context, id int64) (*entities.Achievements, error) {
	var a entities.Achievements
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch achievements: %w", err)
	}
	return &a, nil
}

func (r *AchievementsRepository) Insert(ctx context.Context, a *entities.Achievements) error {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to insert achievements: %w", err)
	}
	return nil
}

func (r *AchievementsRepository) Replace(ctx context.Context, a *entities.Achievements) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return fmt.Errorf("failed to replace achievements: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("achievements %d: %w", a.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete is a no-op when the row is already gone so the owning cascade
// can be re-run
func (r *AchievementsRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete achievements: %w", err)
	}
	return nil
}

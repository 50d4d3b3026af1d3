package db

import (
	"context"
	"fmt"

	"scoutline/backend/internal/constants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SequenceAllocator hands out the next integer id for a collection. The
// store has no native auto-increment; the original max+1 scan loses under
// concurrent writers, so ids come from an atomically incremented counter
// document instead.
type SequenceAllocator interface {
	NextID(ctx context.Context, collection string) (int64, error)
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// MongoSequenceAllocator backs the allocator with the counters collection
type MongoSequenceAllocator struct {
	db *mongo.Database
}

func NewMongoSequenceAllocator(db *mongo.Database) *MongoSequenceAllocator {
	return &MongoSequenceAllocator{db: db}
}

var _ SequenceAllocator = (*MongoSequenceAllocator)(nil)

// NextID atomically increments the counter for the collection and returns
// the new value. The upsert starts an absent counter at 0, so an empty
// collection yields 1.
func (a *MongoSequenceAllocator) NextID(ctx context.Context, collection string) (int64, error) {
	var doc counterDoc

	err := a.db.Collection(constants.CollCounters).FindOneAndUpdate(ctx,
		bson.M{"_id": collection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate id for %s: %w", collection, err)
	}

	return doc.Seq, nil
}

// RecoverCounter raises the counter for a collection to at least floor.
// Called at startup with max(existing id) so a restored dump can never
// reissue an id that is already in use.
func (a *MongoSequenceAllocator) RecoverCounter(ctx context.Context, collection string, floor int64) error {
	_, err := a.db.Collection(constants.CollCounters).UpdateOne(ctx,
		bson.M{"_id": collection},
		bson.M{"$max": bson.M{"seq": floor}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to recover counter for %s: %w", collection, err)
	}
	return nil
}

// MaxID reads the highest id currently present in an integer-keyed
// collection, 0 when the collection is empty. Used only for counter
// recovery, never for allocation.
func MaxID(ctx context.Context, db *mongo.Database, collection string) (int64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})

	var doc struct {
		ID int64 `bson:"_id"`
	}
	err := db.Collection(collection).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read max id of %s: %w", collection, err)
	}
	return doc.ID, nil
}

package db

import (
	"context"
	"fmt"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/logging"
	"scoutline/backend/internal/models/entities"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// integer-keyed collections whose counters are recovered at startup
var countedCollections = []string{
	constants.CollRoles,
	constants.CollUserRoles,
	constants.CollPositions,
	constants.CollSalaryRange,
	constants.CollPlayerAdvertisements,
	constants.CollClubAdvertisements,
	constants.CollPlayerOffers,
	constants.CollClubOffers,
	constants.CollOfferStatuses,
	constants.CollFavoritePlayerAds,
	constants.CollFavoriteClubAds,
	constants.CollProblems,
	constants.CollClubHistories,
	constants.CollAchievements,
	constants.CollChats,
	constants.CollMessages,
}

// EnsureSeedData brings the vocabulary collections up to the expected
// state: roles, offer statuses, player positions and the sentinel user.
// Existing rows are kept as-is; only missing rows are inserted. It also
// raises every id counter to the max id already present, so a database
// restored from a dump cannot reissue ids.
func EnsureSeedData(ctx context.Context, database *mongo.Database) error {
	alloc := NewMongoSequenceAllocator(database)

	for _, name := range []constants.Role{constants.RoleAdmin, constants.RoleUser} {
		if err := ensureNamed(ctx, database, alloc, constants.CollRoles, name.String()); err != nil {
			return err
		}
	}

	for _, name := range []constants.OfferStatusName{
		constants.StatusOffered,
		constants.StatusAccepted,
		constants.StatusRejected,
	} {
		if err := ensureNamed(ctx, database, alloc, constants.CollOfferStatuses, name.String()); err != nil {
			return err
		}
	}

	for _, name := range constants.PlayerPositions {
		if err := ensureNamed(ctx, database, alloc, constants.CollPositions, name); err != nil {
			return err
		}
	}

	if err := ensureSentinelUser(ctx, database); err != nil {
		return err
	}

	for _, coll := range countedCollections {
		floor, err := MaxID(ctx, database, coll)
		if err != nil {
			return err
		}
		if floor == 0 {
			continue
		}
		if err := alloc.RecoverCounter(ctx, coll, floor); err != nil {
			return err
		}
	}

	logging.Info("Seed data ensured")
	return nil
}

// ensureNamed inserts a {_id, name} row when no row with that name exists
func ensureNamed(ctx context.Context, database *mongo.Database, alloc *MongoSequenceAllocator, coll, name string) error {
	err := database.Collection(coll).FindOne(ctx, bson.M{"name": name}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return fmt.Errorf("failed to check %s seed row %q: %w", coll, name, err)
	}

	id, err := alloc.NextID(ctx, coll)
	if err != nil {
		return err
	}
	_, err = database.Collection(coll).InsertOne(ctx, bson.M{"_id": id, "name": name})
	if err != nil {
		return fmt.Errorf("failed to seed %s row %q: %w", coll, name, err)
	}
	logging.Info("Seeded row", "collection", coll, "name", name)
	return nil
}

// ensureSentinelUser creates the permanent reassignment-target account.
// Its password is a throwaway random value; nobody logs in as it.
func ensureSentinelUser(ctx context.Context, database *mongo.Database) error {
	coll := database.Collection(constants.CollUsers)

	err := coll.FindOne(ctx, bson.M{"email": constants.SentinelEmail}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return fmt.Errorf("failed to check sentinel user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash sentinel password: %w", err)
	}

	sentinel := entities.User{
		ID:           uuid.NewString(),
		Email:        constants.SentinelEmail,
		PasswordHash: string(hash),
		FirstName:    "Unknown",
		LastName:     "Unknown",
		CreationDate: time.Now(),
	}
	if _, err := coll.InsertOne(ctx, sentinel); err != nil {
		return fmt.Errorf("failed to insert sentinel user: %w", err)
	}
	logging.Info("Seeded sentinel user", "user_id", sentinel.ID)
	return nil
}

// ValidateSeedData verifies the rows every flow depends on. A failure
// here is a deployment fault and the process must not serve traffic.
func ValidateSeedData(ctx context.Context, database *mongo.Database) error {
	err := database.Collection(constants.CollUsers).
		FindOne(ctx, bson.M{"email": constants.SentinelEmail}).Err()
	if err == mongo.ErrNoDocuments {
		return fmt.Errorf("%s: %w", constants.MsgSentinelMissing, apperrors.ErrConfigurationMissing)
	}
	if err != nil {
		return fmt.Errorf("failed to validate sentinel user: %w", err)
	}

	for _, name := range []constants.OfferStatusName{
		constants.StatusOffered,
		constants.StatusAccepted,
		constants.StatusRejected,
	} {
		err := database.Collection(constants.CollOfferStatuses).
			FindOne(ctx, bson.M{"name": name.String()}).Err()
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("%s (%s): %w", constants.MsgStatusSeedMissing, name, apperrors.ErrConfigurationMissing)
		}
		if err != nil {
			return fmt.Errorf("failed to validate offer status %s: %w", name, err)
		}
	}

	for _, name := range []constants.Role{constants.RoleAdmin, constants.RoleUser} {
		err := database.Collection(constants.CollRoles).
			FindOne(ctx, bson.M{"name": name.String()}).Err()
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("%s (%s): %w", constants.MsgRoleSeedMissing, name, apperrors.ErrConfigurationMissing)
		}
		if err != nil {
			return fmt.Errorf("failed to validate role %s: %w", name, err)
		}
	}

	return nil
}

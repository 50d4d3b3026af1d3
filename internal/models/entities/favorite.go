package entities

// Favorite marks an advertisement as favorited by a user. One row per
// (advertisement, user) pair; the service keeps Add idempotent.
type Favorite struct {
	ID              int64  `bson:"_id" json:"id"`
	Side            string `bson:"side" json:"side"`
	AdvertisementID int64  `bson:"advertisement_id" json:"advertisementId"`
	UserID          string `bson:"user_id" json:"userId"`
}

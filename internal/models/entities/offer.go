package entities

import "time"

// Offer answers an advertisement of the opposite side. Side names the
// offering party: a player offer is a player answering a club
// advertisement, a club offer is a club member answering a player
// advertisement.
type Offer struct {
	ID              int64     `bson:"_id" json:"id"`
	Side            string    `bson:"side" json:"side"`
	AdvertisementID int64     `bson:"advertisement_id" json:"advertisementId"`
	PositionID      int64     `bson:"position_id" json:"positionId"`
	PositionName    string    `bson:"position_name" json:"positionName"`
	StatusID        int64     `bson:"status_id" json:"statusId"`
	StatusName      string    `bson:"status_name" json:"statusName"`
	UserID          string    `bson:"user_id" json:"userId"`
	CreationDate    time.Time `bson:"creation_date" json:"creationDate"`

	// Resolved at read time
	Advertisement *Advertisement `bson:"-" json:"advertisement,omitempty"`
	Offerer       *User          `bson:"-" json:"offerer,omitempty"`
}

type OfferStatus struct {
	ID   int64  `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

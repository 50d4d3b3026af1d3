package entities

import "time"

// Advertisement covers both player and club advertisements; the two are
// the same shape with the publisher on opposite sides of the market, so
// a single struct with a side discriminant replaces two parallel types.
// The side also selects the collection the document lives in.
type Advertisement struct {
	ID           int64     `bson:"_id" json:"id"`
	Side         string    `bson:"side" json:"side"`
	PositionID   int64     `bson:"position_id" json:"positionId"`
	PositionName string    `bson:"position_name" json:"positionName"`
	League       string    `bson:"league,omitempty" json:"league,omitempty"`
	ClubName     string    `bson:"club_name,omitempty" json:"clubName,omitempty"`
	SalaryRangeID int64    `bson:"salary_range_id" json:"salaryRangeId"`
	UserID       string    `bson:"user_id" json:"userId"`
	CreationDate time.Time `bson:"creation_date" json:"creationDate"`
	EndDate      time.Time `bson:"end_date" json:"endDate"`

	// Resolved at read time, never persisted
	SalaryRange *SalaryRange    `bson:"-" json:"salaryRange,omitempty"`
	Position    *PlayerPosition `bson:"-" json:"position,omitempty"`
	Publisher   *User           `bson:"-" json:"publisher,omitempty"`
}

// IsActive reports whether the advertisement is still open at the given
// instant. Activity is computed, never stored.
func (a *Advertisement) IsActive(now time.Time) bool {
	return !a.EndDate.Before(now)
}

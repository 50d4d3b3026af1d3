package entities

import "time"

// ClubHistory records a spell a player spent at a club. It owns exactly
// one Achievements row; the two are deleted together.
type ClubHistory struct {
	ID             int64     `bson:"_id" json:"id"`
	PlayerID       string    `bson:"player_id" json:"playerId"`
	ClubName       string    `bson:"club_name" json:"clubName"`
	League         string    `bson:"league" json:"league"`
	PositionID     int64     `bson:"position_id" json:"positionId"`
	StartDate      time.Time `bson:"start_date" json:"startDate"`
	EndDate        time.Time `bson:"end_date" json:"endDate"`
	AchievementsID int64     `bson:"achievements_id" json:"achievementsId"`

	Achievements *Achievements `bson:"-" json:"achievements,omitempty"`
}

type Achievements struct {
	ID              int64  `bson:"_id" json:"id"`
	NumberOfMatches int    `bson:"number_of_matches" json:"numberOfMatches"`
	Goals           int    `bson:"goals" json:"goals"`
	Assists         int    `bson:"assists" json:"assists"`
	AdditionalNotes string `bson:"additional_notes,omitempty" json:"additionalNotes,omitempty"`
}

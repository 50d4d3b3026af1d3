package entities

import "time"

type Problem struct {
	ID           int64     `bson:"_id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	ReporterID   string    `bson:"reporter_id" json:"reporterId"`
	CreationDate time.Time `bson:"creation_date" json:"creationDate"`
	IsResolved   bool      `bson:"is_resolved" json:"isResolved"`
}

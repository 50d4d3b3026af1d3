package entities

import "time"

type User struct {
	ID           string    `bson:"_id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FirstName    string    `bson:"first_name" json:"firstName"`
	LastName     string    `bson:"last_name" json:"lastName"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Location     string    `bson:"location,omitempty" json:"location,omitempty"`
	CreationDate time.Time `bson:"creation_date" json:"creationDate"`
}

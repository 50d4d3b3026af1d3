package entities

type Role struct {
	ID   int64  `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// UserRole binds one user to one role. A user has at most one binding
// per role; promotion and demotion delete the old binding before
// inserting the new one.
type UserRole struct {
	ID     int64  `bson:"_id" json:"id"`
	UserID string `bson:"user_id" json:"userId"`
	RoleID int64  `bson:"role_id" json:"roleId"`
}

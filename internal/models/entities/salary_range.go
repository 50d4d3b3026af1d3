package entities

// SalaryRange is owned exclusively by exactly one advertisement and is
// deleted together with it.
type SalaryRange struct {
	ID  int64   `bson:"_id" json:"id"`
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

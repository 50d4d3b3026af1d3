package entities

import "time"

// CascadeMode selects the terminal outcome of a reassignment cascade
type CascadeMode string

const (
	// CascadeDelete removes the user row (and chats) after reassignment
	CascadeDelete CascadeMode = "delete"
	// CascadeRoleSwap keeps the user and swaps their role afterwards
	CascadeRoleSwap CascadeMode = "role_swap"
)

// CascadeRun journals one execution of the reassignment cascade. The
// store has no multi-document transactions, so each completed step is
// recorded here and a crashed run is resumed instead of re-applied.
type CascadeRun struct {
	ID          string      `bson:"_id" json:"id"`
	UserID      string      `bson:"user_id" json:"userId"`
	Mode        CascadeMode `bson:"mode" json:"mode"`
	StepsDone   []string    `bson:"steps_done" json:"stepsDone"`
	StartedAt   time.Time   `bson:"started_at" json:"startedAt"`
	CompletedAt *time.Time  `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
}

// StepDone reports whether the named step already ran in this cascade
func (r *CascadeRun) StepDone(step string) bool {
	for _, s := range r.StepsDone {
		if s == step {
			return true
		}
	}
	return false
}

package constants

// Role mirrors the seeded role documents in the roles collection
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

func (r Role) String() string { return string(r) }

// OfferStatusName mirrors the seeded offer_statuses documents
type OfferStatusName string

const (
	StatusOffered  OfferStatusName = "Offered"
	StatusAccepted OfferStatusName = "Accepted"
	StatusRejected OfferStatusName = "Rejected"
)

func (s OfferStatusName) String() string { return string(s) }

// Side discriminates the player and club variants of advertisements,
// offers and favorites. A player advertisement is published by a player
// and answered with club offers; a club advertisement is the mirror image.
type Side string

const (
	SidePlayer Side = "player"
	SideClub   Side = "club"
)

func (s Side) String() string { return string(s) }

// Opposite returns the counterparty side
func (s Side) Opposite() Side {
	if s == SidePlayer {
		return SideClub
	}
	return SidePlayer
}

// SentinelEmail identifies the permanent reassignment-target account.
// It must exist in a correctly seeded system and is never deleted.
const SentinelEmail = "unknown@unknown.com"

// PlayerPositions seeded at startup
var PlayerPositions = []string{
	"Goalkeeper",
	"RightBack",
	"CenterBack",
	"LeftBack",
	"RightWinger",
	"CentralMidfield",
	"CentralDefensiveMidfield",
	"CentralAttackingMidfield",
	"LeftWinger",
	"Striker",
}

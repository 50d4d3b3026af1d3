package constants

// Collection names. Integer-keyed collections draw their ids from the
// counters collection via the sequence allocator.
const (
	CollUsers       = "users"
	CollRoles       = "roles"
	CollUserRoles   = "user_roles"
	CollPositions   = "player_positions"
	CollSalaryRange = "salary_ranges"

	CollPlayerAdvertisements = "player_advertisements"
	CollClubAdvertisements   = "club_advertisements"
	CollPlayerOffers         = "player_offers"
	CollClubOffers           = "club_offers"
	CollOfferStatuses        = "offer_statuses"

	CollFavoritePlayerAds = "favorite_player_advertisements"
	CollFavoriteClubAds   = "favorite_club_advertisements"

	CollProblems      = "problems"
	CollClubHistories = "club_histories"
	CollAchievements  = "achievements"
	CollChats         = "chats"
	CollMessages      = "messages"

	CollCounters    = "counters"
	CollCascadeRuns = "cascade_runs"
)

// AdvertisementCollection returns the advertisement collection for a side
func AdvertisementCollection(side Side) string {
	if side == SidePlayer {
		return CollPlayerAdvertisements
	}
	return CollClubAdvertisements
}

// OfferCollection returns the offer collection for a side.
// A player offer answers a club advertisement and vice versa.
func OfferCollection(side Side) string {
	if side == SidePlayer {
		return CollPlayerOffers
	}
	return CollClubOffers
}

// FavoriteCollection returns the favorites collection for an advertisement side
func FavoriteCollection(side Side) string {
	if side == SidePlayer {
		return CollFavoritePlayerAds
	}
	return CollFavoriteClubAds
}

package constants

const (
	MsgSentinelMissing    = "Sentinel user is missing! Database seed is incomplete"
	MsgStatusSeedMissing  = "Offer status seed row is missing"
	MsgRoleSeedMissing    = "Role seed row is missing"
	MsgUnknownRole        = "Unknown role name"
	MsgAdvertisementGone  = "Advertisement not found"
	MsgOfferGone          = "Offer not found"
	MsgFavoriteGone       = "Favorite not found"
	MsgDuplicateEmail     = "A user with this email already exists"
	MsgSentinelUndeletable = "The sentinel user cannot be deleted"
)

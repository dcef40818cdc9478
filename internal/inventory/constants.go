package inventory

// Error message formats
const (
	ErrFmtNotOwned       = "%w: '%s'"
	ErrFmtNotUsable      = "%w: '%s'"
	ErrFmtNotEquippable  = "%w: '%s'"
	ErrMsgPurchaseFailed = "purchase of '%s' failed: %w"
)

// Log messages
const (
	LogMsgItemBought    = "Item bought"
	LogMsgItemUsed      = "Item used"
	LogMsgEquipToggled  = "Equip toggled"
	LogMsgPublishFailed = "Failed to publish inventory event"
)

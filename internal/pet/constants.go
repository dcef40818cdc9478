package pet

// DefaultCacheSize bounds how many pets the Manager keeps live
const DefaultCacheSize = 128

// XP sources recorded for care actions
const xpSourceActionPrefix = "action:"

// Log messages
const (
	LogMsgPetLoaded      = "Pet loaded"
	LogMsgPetClosed      = "Pet closed"
	LogMsgPetRefreshed   = "Pet reloaded newer saved state"
	LogMsgRefreshFailed  = "Failed to check saved revision, keeping live state"
	LogMsgPetEvicted     = "Pet evicted from cache"
	LogMsgSaveFailed     = "Failed to save pet state"
	LogMsgDecayApplied   = "Decay tick applied"
	LogMsgDecayStarted   = "Decay registered"
	LogMsgPublishFailed  = "Failed to publish pet event"
	LogMsgManagerStopped = "Pet manager shut down"
)

// Error formats
const (
	ErrFmtSavePet = "save pet %s: %w"
)

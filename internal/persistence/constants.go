package persistence

// KeyPrefix namespaces every persisted key
const KeyPrefix = "brandishpet"

// Log messages
const (
	LogMsgLoadMissing = "No saved state, using defaults"
	LogMsgLoadCorrupt = "Saved state unreadable, using defaults"
	LogMsgLoadInvalid = "Saved state failed validation, using defaults"
	LogMsgLoadFailed  = "Storage read failed, using defaults"
	LogMsgNoRevision  = "Revision unreadable, treating state as unsaved"
	LogMsgSaved       = "Saved state"
	LogMsgDeleted     = "Deleted saved state"
)

// Error formats
const (
	ErrFmtEncode   = "failed to encode %s: %w"
	ErrFmtSave     = "failed to save %s: %w"
	ErrFmtDelete   = "failed to delete %s: %w"
	ErrFmtRevision = "failed to read revision %s: %w"
)

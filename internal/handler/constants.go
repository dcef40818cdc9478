package handler

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgReadyzFailed   = "Readiness check failed"
	LogMsgPetStatusError = "Failed to load pet status"
	LogMsgPetUpdateError = "Pet operation failed"
)

// Log formats taking the request name
const (
	LogFmtDecodeFailed = "Failed to decode %s request"
	LogFmtDecoded      = "%s request decoded"
	LogFmtInvalid      = "%s request failed validation"
)

// ReadyzMessageStorage is reported when the storage backend cannot be reached
const ReadyzMessageStorage = "storage unreachable"

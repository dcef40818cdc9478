package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Entity errors
	ErrMsgEntityIDRequired = "entity id is required"

	// Item errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgItemNotUsable   = "item cannot be used"
	ErrMsgNotEquippable   = "item cannot be equipped"
	ErrMsgNotInInventory  = "item not in inventory"
	ErrMsgDuplicateItemID = "duplicate item id"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"

	// Mood errors
	ErrMsgUnknownAction = "unknown action"

	// Progression errors
	ErrMsgUnknownStage    = "unknown stage"
	ErrMsgFeatureRequired = "feature name is required"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Storage errors
	ErrMsgSnapshotNil = "snapshot cannot be nil"

	// Lifecycle errors
	ErrMsgPetClosed = "pet is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
// None of them are fatal: callers surface them as informational notices.
var (
	ErrEntityIDRequired = errors.New(ErrMsgEntityIDRequired)

	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrItemNotUsable   = errors.New(ErrMsgItemNotUsable)
	ErrNotEquippable   = errors.New(ErrMsgNotEquippable)
	ErrNotInInventory  = errors.New(ErrMsgNotInInventory)
	ErrDuplicateItemID = errors.New(ErrMsgDuplicateItemID)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	ErrUnknownAction = errors.New(ErrMsgUnknownAction)
	ErrUnknownStage  = errors.New(ErrMsgUnknownStage)

	ErrFeatureRequired = errors.New(ErrMsgFeatureRequired)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrSnapshotNil = errors.New(ErrMsgSnapshotNil)

	ErrPetClosed = errors.New(ErrMsgPetClosed)
)

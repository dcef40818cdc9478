package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.bought")
const (
	// EventTypeActionPerformed is published when a care action is accepted
	EventTypeActionPerformed = "action.performed"

	// EventTypeActionRejected is published when a care action is refused by its guard
	EventTypeActionRejected = "action.rejected"

	// EventTypeMoodDecayed is published after a decay tick is applied
	EventTypeMoodDecayed = "mood.decayed"

	// EventTypeCoinsEarned is published when coins are credited to a wallet
	EventTypeCoinsEarned = "coins.earned"

	// EventTypeCoinsSpent is published when coins are debited from a wallet
	EventTypeCoinsSpent = "coins.spent"

	// EventTypeDailyClaimed is published when the daily coin reward is claimed
	EventTypeDailyClaimed = "daily.claimed"

	// EventTypeItemBought is published when a shop item is bought
	EventTypeItemBought = "item.bought"

	// EventTypeItemUsed is published when a consumable item is used
	EventTypeItemUsed = "item.used"

	// EventTypeXPGained is published whenever XP is awarded
	EventTypeXPGained = "xp.gained"

	// EventTypePetEvolved is published when the mascot crosses a stage threshold
	EventTypePetEvolved = "pet.evolved"

	// EventTypePremiumUnlocked is published when a premium feature is unlocked
	EventTypePremiumUnlocked = "premium.unlocked"
)

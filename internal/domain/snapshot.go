package domain

// Component names, used to namespace persisted keys
const (
	ComponentMood        = "mood"
	ComponentWallet      = "wallet"
	ComponentInventory   = "inventory"
	ComponentProgression = "progression"
	ComponentMeta        = "meta"
)

// Snapshot is the persisted aggregate for one entity.
// Each field is stored under its own key so components load independently.
type Snapshot struct {
	EntityID    string            `json:"entityId"`
	Mood        MoodState         `json:"mood"`
	Wallet      Wallet            `json:"wallet"`
	Inventory   Inventory         `json:"inventory"`
	Progression MascotProgression `json:"progression"`

	// Revision identifies the save this snapshot was read from or written as.
	// It is empty for state that has never been saved.
	Revision string `json:"revision,omitempty"`
}

package domain

import "time"

// InventoryItem is one owned item stack.
// Stacks with zero quantity are removed rather than kept.
type InventoryItem struct {
	ItemID      string    `json:"itemId"`
	Quantity    int       `json:"quantity"`
	Equipped    bool      `json:"equipped"`
	PurchasedAt time.Time `json:"purchasedAt"`
}

// Inventory is the ordered list of owned stacks, in first-purchase order
type Inventory []InventoryItem

// Find returns the index of the stack for itemID, or -1
func (inv Inventory) Find(itemID string) int {
	for i, it := range inv {
		if it.ItemID == itemID {
			return i
		}
	}
	return -1
}

// Valid reports whether every stack has a positive quantity and a unique id
func (inv Inventory) Valid() bool {
	seen := make(map[string]bool, len(inv))
	for _, it := range inv {
		if it.ItemID == "" || it.Quantity <= 0 || seen[it.ItemID] {
			return false
		}
		seen[it.ItemID] = true
	}
	return true
}

// Clone returns a copy that does not share the backing array
func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return Inventory{}
	}
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}

// ItemCategory groups shop items
type ItemCategory string

const (
	CategoryFood      ItemCategory = "food"
	CategoryToy       ItemCategory = "toy"
	CategoryMedicine  ItemCategory = "medicine"
	CategoryAccessory ItemCategory = "accessory"
	CategoryFurniture ItemCategory = "furniture"
)

// Item is a shop catalog entry
type Item struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    ItemCategory `json:"category"`
	Price       int          `json:"price"`
	Equippable  bool         `json:"equippable"`
	Effect      StatDeltas   `json:"effect,omitempty"`
}

// Consumable reports whether using the item yields a stat effect
func (i *Item) Consumable() bool {
	return len(i.Effect) > 0
}

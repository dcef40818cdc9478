package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerKind distinguishes credits from debits in the wallet ledger
type LedgerKind string

const (
	LedgerEarn  LedgerKind = "earn"
	LedgerSpend LedgerKind = "spend"
)

// Coin sources recorded on the ledger
const (
	SourceDailyClaim = "daily_claim"
	SourceXPBonus    = "xp_bonus"
	SourceAdReward   = "ad_reward"
	SourcePurchase   = "purchase"
	SourceShop       = "shop"
)

// MaxLedgerEntries caps how many ledger entries are retained per wallet
const MaxLedgerEntries = 50

// LedgerEntry records one credit or debit for observability
type LedgerEntry struct {
	ID     uuid.UUID  `json:"id"`
	Kind   LedgerKind `json:"kind"`
	Amount int        `json:"amount"`
	Source string     `json:"source"`
	At     time.Time  `json:"at"`
}

// Wallet is the coin balance of a single entity
type Wallet struct {
	Balance            int           `json:"balance"`
	TotalEarned        int           `json:"totalEarned"`
	LastClaimTimestamp time.Time     `json:"lastClaimTimestamp"`
	Ledger             []LedgerEntry `json:"ledger,omitempty"`
}

// Valid reports whether the wallet invariants hold
func (w *Wallet) Valid() bool {
	return w.Balance >= 0 && w.TotalEarned >= 0
}

// Clone returns a deep copy of the wallet
func (w Wallet) Clone() Wallet {
	out := w
	if w.Ledger != nil {
		out.Ledger = make([]LedgerEntry, len(w.Ledger))
		copy(out.Ledger, w.Ledger)
	}
	return out
}

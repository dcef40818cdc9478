package economy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishPet_Go/internal/clock"
	"github.com/osse101/BrandishPet_Go/internal/cooldown"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/event"
	"github.com/osse101/BrandishPet_Go/internal/logger"
)

// DefaultWallet is the wallet of a new entity
func DefaultWallet() domain.Wallet {
	return domain.Wallet{}
}

// Wallet owns the coin balance of one entity.
// Every check-then-mutate sequence runs under a single lock hold.
type Wallet struct {
	mu        sync.Mutex
	entityID  string
	state     domain.Wallet
	clock     clock.Clock
	cooldowns cooldown.Service
	bus       event.Bus
}

// NewWallet wraps a loaded wallet record
func NewWallet(entityID string, state domain.Wallet, clk clock.Clock, cooldowns cooldown.Service, bus event.Bus) *Wallet {
	if clk == nil {
		clk = clock.New()
	}
	if cooldowns == nil {
		cooldowns = cooldown.NewService(cooldown.Config{}, clk)
	}
	if bus == nil {
		bus = event.NopBus{}
	}
	return &Wallet{
		entityID:  entityID,
		state:     state.Clone(),
		clock:     clk,
		cooldowns: cooldowns,
		bus:       bus,
	}
}

// AddCoins credits amount and returns the new balance
func (w *Wallet) AddCoins(ctx context.Context, amount int, source string) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf(ErrMsgInvalidAmountFmt, amount, domain.ErrInvalidAmount)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	balance, err := w.creditLocked(amount, source)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info(LogMsgCoinsAdded, "entity_id", w.entityID, "amount", amount, "source", source, "balance", balance)
	w.publish(ctx, domain.EventTypeCoinsEarned, event.CoinsPayloadV1{Amount: amount, Source: source, Balance: balance})
	return balance, nil
}

// SpendCoins debits amount if the balance covers it and reports whether it did
func (w *Wallet) SpendCoins(ctx context.Context, amount int, purpose string) bool {
	return w.TrySpend(ctx, amount, purpose) == nil
}

// TrySpend debits amount or returns domain.ErrInsufficientFunds without mutating anything
func (w *Wallet) TrySpend(ctx context.Context, amount int, purpose string) error {
	if amount < 0 {
		return fmt.Errorf(ErrMsgInvalidAmountFmt, amount, domain.ErrInvalidAmount)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	log := logger.FromContext(ctx)
	if w.state.Balance < amount {
		log.Info(LogMsgSpendRejected, "entity_id", w.entityID, "amount", amount, "balance", w.state.Balance, "purpose", purpose)
		return fmt.Errorf(ErrMsgInsufficientFundsFmt, amount, w.state.Balance, domain.ErrInsufficientFunds)
	}

	w.state.Balance -= amount
	w.appendLedgerLocked(domain.LedgerSpend, amount, purpose)

	log.Info(LogMsgCoinsSpent, "entity_id", w.entityID, "amount", amount, "purpose", purpose, "balance", w.state.Balance)
	w.publish(ctx, domain.EventTypeCoinsSpent, event.CoinsPayloadV1{Amount: amount, Source: purpose, Balance: w.state.Balance})
	return nil
}

// ClaimDailyCoins pays the daily reward once per cooldown window and returns
// the amount paid, or 0 while the cooldown is running.
func (w *Wallet) ClaimDailyCoins(ctx context.Context, levelMultiplier int) (int, error) {
	if levelMultiplier < 0 || levelMultiplier > (math.MaxInt-DailyBaseReward)/DailyLevelBonus {
		return 0, fmt.Errorf(ErrMsgInvalidMultiplierFmt, levelMultiplier, domain.ErrInvalidAmount)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	log := logger.FromContext(ctx)
	reward := DailyBaseReward + levelMultiplier*DailyLevelBonus

	err := w.cooldowns.EnforceCooldown(ctx, cooldown.ActionDailyClaim, w.state.LastClaimTimestamp, func() error {
		if _, err := w.creditLocked(reward, domain.SourceDailyClaim); err != nil {
			return err
		}
		w.state.LastClaimTimestamp = w.clock.Now()
		return nil
	})
	if errors.Is(err, domain.ErrOnCooldown) {
		log.Info(LogMsgDailyOnCooldown, "entity_id", w.entityID, "error", err)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	log.Info(LogMsgDailyClaimed, "entity_id", w.entityID, "reward", reward, "balance", w.state.Balance)
	w.publish(ctx, domain.EventTypeCoinsEarned, event.CoinsPayloadV1{Amount: reward, Source: domain.SourceDailyClaim, Balance: w.state.Balance})
	w.publish(ctx, domain.EventTypeDailyClaimed, event.CoinsPayloadV1{Amount: reward, Source: domain.SourceDailyClaim, Balance: w.state.Balance})
	return reward, nil
}

// CanClaimDailyCoins reports whether ClaimDailyCoins would pay now
func (w *Wallet) CanClaimDailyCoins() bool {
	return w.NextClaimIn() == 0
}

// NextClaimIn returns how long until the next daily claim is possible
func (w *Wallet) NextClaimIn() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	onCooldown, remaining := w.cooldowns.CheckCooldown(cooldown.ActionDailyClaim, w.state.LastClaimTimestamp)
	if !onCooldown {
		return 0
	}
	return remaining
}

// Balance returns the current balance
func (w *Wallet) Balance() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Balance
}

// Snapshot returns a copy of the wallet record
func (w *Wallet) Snapshot() domain.Wallet {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Clone()
}

// creditLocked rejects a credit that would overflow the balance or the lifetime total
func (w *Wallet) creditLocked(amount int, source string) (int, error) {
	if amount > math.MaxInt-w.state.Balance || amount > math.MaxInt-w.state.TotalEarned {
		return w.state.Balance, fmt.Errorf(ErrMsgCreditOverflowFmt, amount, w.state.Balance, domain.ErrInvalidAmount)
	}
	w.state.Balance += amount
	w.state.TotalEarned += amount
	w.appendLedgerLocked(domain.LedgerEarn, amount, source)
	return w.state.Balance, nil
}

func (w *Wallet) appendLedgerLocked(kind domain.LedgerKind, amount int, source string) {
	w.state.Ledger = append(w.state.Ledger, domain.LedgerEntry{
		ID:     uuid.New(),
		Kind:   kind,
		Amount: amount,
		Source: source,
		At:     w.clock.Now(),
	})
	if over := len(w.state.Ledger) - domain.MaxLedgerEntries; over > 0 {
		w.state.Ledger = append([]domain.LedgerEntry(nil), w.state.Ledger[over:]...)
	}
}

func (w *Wallet) publish(ctx context.Context, eventType string, payload interface{}) {
	if err := w.bus.Publish(ctx, event.New(eventType, w.entityID, w.clock.Now(), payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", eventType, "error", err)
	}
}

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/pet"
)

var rewardSource string

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim the daily coin reward",
	Args:  cobra.NoArgs,
	RunE:  runClaim,
}

var rewardCmd = &cobra.Command{
	Use:   "reward <coins>",
	Short: "Credit coins from an ad view or payment",
	Args:  cobra.ExactArgs(1),
	RunE:  runReward,
}

var premiumCmd = &cobra.Command{
	Use:   "premium <feature>",
	Short: "Unlock a premium feature after a successful payment",
	Args:  cobra.ExactArgs(1),
	RunE:  runPremium,
}

func init() {
	rewardCmd.Flags().StringVar(&rewardSource, "source", domain.SourceAdReward, "Ledger source for the credit")
}

func runClaim(cmd *cobra.Command, _ []string) error {
	return withPet(cmd, func(ctx context.Context, p *pet.Pet) error {
		amount, err := p.ClaimDaily(ctx)
		if err != nil {
			return err
		}
		if amount == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "⏳ Already claimed. Next reward in %s\n", p.Status().NextClaimIn.Round(time.Minute))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🎁 Claimed %d coins\n", amount)
		return nil
	})
}

func runReward(cmd *cobra.Command, args []string) error {
	amount, err := strconv.Atoi(args[0])
	if err != nil || amount <= 0 {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, args[0])
	}
	return withPet(cmd, func(ctx context.Context, p *pet.Pet) error {
		balance, err := p.AddCoins(ctx, amount, rewardSource)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "💰 +%d coins. Balance: %d\n", amount, balance)
		return nil
	})
}

func runPremium(cmd *cobra.Command, args []string) error {
	return withPet(cmd, func(ctx context.Context, p *pet.Pet) error {
		added, err := p.UnlockPremium(ctx, args[0])
		if err != nil {
			return err
		}
		if !added {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is already unlocked\n", title(args[0]))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "⭐ Unlocked %s\n", title(args[0]))
		return nil
	})
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/BrandishPet_Go/internal/config"
	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/item"
	"github.com/osse101/BrandishPet_Go/internal/pet"
)

var (
	shopCategory string
	equipOff     bool
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "List the items for sale",
	Args:  cobra.NoArgs,
	RunE:  runShop,
}

var buyCmd = &cobra.Command{
	Use:   "buy <item>",
	Short: "Buy one item from the shop",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuy,
}

var useCmd = &cobra.Command{
	Use:   "use <item>",
	Short: "Use a consumable item from the inventory",
	Args:  cobra.ExactArgs(1),
	RunE:  runUse,
}

var equipCmd = &cobra.Command{
	Use:   "equip <item>",
	Short: "Equip (or with --off, unequip) an owned accessory",
	Args:  cobra.ExactArgs(1),
	RunE:  runEquip,
}

func init() {
	shopCmd.Flags().StringVar(&shopCategory, "category", "", "Only list one category (food, toy, medicine, accessory, furniture)")
	equipCmd.Flags().BoolVar(&equipOff, "off", false, "Unequip instead of equip")
}

// runShop only needs the catalog, so it skips storage entirely
func runShop(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := item.Load(cmd.Context(), cfg.CatalogPath)
	if err != nil {
		return err
	}

	items := catalog.All()
	if shopCategory != "" {
		items = catalog.ByCategory(domain.ItemCategory(shopCategory))
	}
	printShop(cmd.OutOrStdout(), items)
	return nil
}

func runBuy(cmd *cobra.Command, args []string) error {
	return withPet(cmd, func(ctx context.Context, p *pet.Pet) error {
		stack, err := p.Buy(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🛒 Bought %s (now own %d). Coins left: %d\n",
			title(stack.ItemID), stack.Quantity, p.Status().Wallet.Balance)
		return nil
	})
}

func runUse(cmd *cobra.Command, args []string) error {
	return withPet(cmd, func(ctx context.Context, p *pet.Pet) error {
		applied, err := p.Use(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✨ Used %s:", title(args[0]))
		for _, stat := range domain.AllStats {
			if d, ok := applied[stat]; ok && d != 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " %s %+.1f", stat, d)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	})
}

func runEquip(cmd *cobra.Command, args []string) error {
	return withPet(cmd, func(ctx context.Context, p *pet.Pet) error {
		if err := p.Equip(ctx, args[0], !equipOff); err != nil {
			return err
		}
		verb := "Equipped"
		if equipOff {
			verb = "Unequipped"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, title(args[0]))
		return nil
	})
}

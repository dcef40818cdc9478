// Package main is the entry point for the pet core CLI
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/BrandishPet_Go/internal/bootstrap"
	"github.com/osse101/BrandishPet_Go/internal/config"
	"github.com/osse101/BrandishPet_Go/internal/logger"
	"github.com/osse101/BrandishPet_Go/internal/pet"
)

// entityID selects which pet a command operates on
var entityID string

var rootCmd = &cobra.Command{
	Use:   "petcore",
	Short: "BrandishPet simulation core",
	Long: `petcore runs the virtual pet simulation: care actions, mood decay, coins,
the item shop and life-stage progression. Every command loads the pet, applies
the change and saves it before exiting. "run" keeps pets live and decaying.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&entityID, "entity", defaultEntityID(), "Pet entity id (env PET_ENTITY)")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(actCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(rewardCmd)
	rootCmd.AddCommand(premiumCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(runCmd)
}

func defaultEntityID() string {
	if id := os.Getenv("PET_ENTITY"); id != "" {
		return id
	}
	return "default"
}

// openApp loads configuration and assembles a one-shot app that logs to stderr
func openApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.InitLoggerWithWriter(bootstrap.LoggerConfig(cfg), os.Stderr)

	return bootstrap.NewApp(ctx, cfg, bootstrap.AppOptions{})
}

// withPet runs fn against the selected pet and saves it afterwards
func withPet(cmd *cobra.Command, fn func(ctx context.Context, p *pet.Pet) error) (err error) {
	ctx := logger.WithEntityID(cmd.Context(), entityID)

	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(ctx); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	p, err := app.Manager.Get(ctx, entityID)
	if err != nil {
		return err
	}
	return fn(ctx, p)
}

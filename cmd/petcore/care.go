package main

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/pet"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the pet's mood, coins, inventory and stage",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var actCmd = &cobra.Command{
	Use:       "act <feed|play|sleep|bathe|medicine|pet>",
	Short:     "Perform a care action",
	Long:      `Perform a care action. Actions the pet does not want right now are refused without changing anything.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"feed", "play", "sleep", "bathe", "medicine", "pet"},
	RunE:      runAct,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Print status as JSON")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	return withPet(cmd, func(_ context.Context, p *pet.Pet) error {
		st := p.Status()
		if statusJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(st)
		}
		printStatus(cmd.OutOrStdout(), st)
		return nil
	})
}

func runAct(cmd *cobra.Command, args []string) error {
	action := domain.Action(strings.ToLower(args[0]))
	return withPet(cmd, func(ctx context.Context, p *pet.Pet) error {
		out, err := p.Act(ctx, action)
		if err != nil {
			return err
		}
		printOutcome(cmd.OutOrStdout(), out)
		return nil
	})
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/BrandishPet_Go/internal/logger"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the pet's saved state so it starts over as a baby",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, _ []string) error {
	ctx := logger.WithEntityID(cmd.Context(), entityID)

	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	if err := app.Manager.Reset(ctx, entityID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reset %s\n", entityID)
	return nil
}

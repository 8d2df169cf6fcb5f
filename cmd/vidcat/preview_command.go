package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidcat/internal/catalog"
	"vidcat/internal/config"
	"vidcat/internal/media/preview"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <path>",
		Short: "Generate a short preview clip for a catalog record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store, cfg *config.Config) error {
				rec, err := lookupRecord(cmd, store, args[0])
				if err != nil {
					return err
				}
				gen := preview.NewGenerator(cfg)
				if err := gen.RemovePrior(); err != nil {
					return err
				}
				clipPath, err := gen.Generate(cmd.Context(), rec.Path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Preview written to %s\n", clipPath)
				return nil
			})
		},
	}
}

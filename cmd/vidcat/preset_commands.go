package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidcat/internal/presets"
)

func newPresetCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved filter presets",
	}
	cmd.AddCommand(newPresetListCommand(ctx))
	cmd.AddCommand(newPresetSaveCommand(ctx))
	cmd.AddCommand(newPresetDeleteCommand(ctx))
	return cmd
}

func newPresetListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			items, err := presets.NewFile(cfg.PresetsPath()).List()
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, items)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No presets saved.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPresetTable(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newPresetSaveCommand(ctx *commandContext) *cobra.Command {
	var (
		andTerms []string
		orTerms  []string
		notTerms []string
		untagged bool
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save or replace a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			preset := presets.Preset{
				Name:         args[0],
				And:          andTerms,
				Or:           orTerms,
				Not:          notTerms,
				UntaggedOnly: untagged,
			}
			if err := presets.NewFile(cfg.PresetsPath()).Save(preset); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q\n", preset.Name)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&andTerms, "and", nil, "Terms that must all match")
	cmd.Flags().StringSliceVar(&orTerms, "or", nil, "Terms of which at least one must match")
	cmd.Flags().StringSliceVar(&notTerms, "not", nil, "Terms that must not match")
	cmd.Flags().BoolVar(&untagged, "untagged", false, "Only records without tags")
	return cmd
}

func newPresetDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := presets.NewFile(cfg.PresetsPath()).Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q\n", args[0])
			return nil
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"vidcat/internal/catalog"
	"vidcat/internal/config"
)

func newTagCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags on catalog records",
	}
	cmd.AddCommand(newTagAddCommand(ctx))
	cmd.AddCommand(newTagRemoveCommand(ctx))
	return cmd
}

func newTagAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <path> <tag>",
		Short: "Add a tag to a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store, cfg *config.Config) error {
				rec, err := lookupRecord(cmd, store, args[0])
				if err != nil {
					return err
				}
				tags, err := rec.WithTag(args[1])
				if err != nil {
					if errors.Is(err, catalog.ErrTagExists) {
						fmt.Fprintf(cmd.OutOrStdout(), "%s already has tag %q\n", rec.Name, args[1])
						return nil
					}
					return err
				}
				if err := store.UpdateTags(cmd.Context(), rec.Path, tags); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Tagged %s with %q\n", rec.Name, args[1])
				return nil
			})
		},
	}
}

func newTagRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <path> <tag>",
		Short: "Remove a tag from a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store, cfg *config.Config) error {
				rec, err := lookupRecord(cmd, store, args[0])
				if err != nil {
					return err
				}
				if !rec.HasTag(args[1]) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s does not have tag %q\n", rec.Name, args[1])
					return nil
				}
				tags := rec.WithoutTag(args[1])
				if err := store.UpdateTags(cmd.Context(), rec.Path, tags); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from %s\n", args[1], rec.Name)
				return nil
			})
		},
	}
}

// lookupRecord resolves a possibly relative path argument against the store.
func lookupRecord(cmd *cobra.Command, store *catalog.Store, path string) (*catalog.Record, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	rec, err := store.GetByPath(cmd.Context(), abs)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, fmt.Errorf("no catalog record for %s", abs)
		}
		return nil, err
	}
	return rec, nil
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vidcat/internal/catalog"
	"vidcat/internal/config"
	"vidcat/internal/facet"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		andTerms []string
		orTerms  []string
		notTerms []string
		untagged bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog records, optionally filtered by facets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store, cfg *config.Config) error {
				records, err := store.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				spec := facet.NewSpec(andTerms, orTerms, notTerms, untagged)
				matched := facet.Filter(records, spec)

				if asJSON {
					return writeJSON(cmd, matched)
				}
				if len(matched) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No records match.")
					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderRecordTable(matched))
				fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(len(matched))+" record(s)")
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&andTerms, "and", nil, "Terms that must all match")
	cmd.Flags().StringSliceVar(&orTerms, "or", nil, "Terms of which at least one must match")
	cmd.Flags().StringSliceVar(&notTerms, "not", nil, "Terms that must not match")
	cmd.Flags().BoolVar(&untagged, "untagged", false, "Only records without tags")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")

	return cmd
}

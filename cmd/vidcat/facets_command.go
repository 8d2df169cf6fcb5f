package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidcat/internal/catalog"
	"vidcat/internal/config"
	"vidcat/internal/facet"
)

func newFacetsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "Show the filter vocabulary built from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store, cfg *config.Config) error {
				records, err := store.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				vocab := facet.BuildVocabulary(records)

				if asJSON {
					return writeJSON(cmd, vocab)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Codecs:  %s\n", joinOrDash(vocab.Codecs))
				fmt.Fprintf(out, "Classes: %s\n", joinOrDash(vocab.Classes))
				fmt.Fprintf(out, "Tags:    %s\n", joinOrDash(vocab.Tags))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")

	return cmd
}

func joinOrDash(terms []string) string {
	if len(terms) == 0 {
		return "-"
	}
	return strings.Join(terms, ", ")
}

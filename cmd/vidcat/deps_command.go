package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidcat/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Check the external binaries vidcat shells out to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.Requirements(cfg))

			if asJSON {
				return writeJSON(cmd, statuses)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderDepsTable(statuses))

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required dependencies: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

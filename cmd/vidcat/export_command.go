package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidcat/internal/catalog"
	"vidcat/internal/config"
	"vidcat/internal/export"
	"vidcat/internal/facet"
	"vidcat/internal/presets"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		destDir    string
		andTerms   []string
		orTerms    []string
		notTerms   []string
		untagged   bool
		presetName string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the files matching a filter into a destination directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store, cfg *config.Config) error {
				spec := facet.NewSpec(andTerms, orTerms, notTerms, untagged)
				if presetName != "" {
					if !spec.IsEmpty() {
						return fmt.Errorf("--preset cannot be combined with filter flags")
					}
					preset, err := presets.NewFile(cfg.PresetsPath()).Get(presetName)
					if err != nil {
						return err
					}
					spec = preset.Spec()
				}

				dest := strings.TrimSpace(destDir)
				if dest == "" {
					dest = cfg.Paths.ExportDir
				}

				records, err := store.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				matched := facet.Filter(records, spec)
				if len(matched) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No records match; nothing to export.")
					return nil
				}

				paths := make([]string, 0, len(matched))
				for _, rec := range matched {
					paths = append(paths, rec.Path)
				}

				summary, err := export.Copy(cmd.Context(), paths, dest)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Exported %d file(s) (%d bytes) to %s\n", summary.Success, summary.TotalSize, dest)
				for _, failure := range summary.Errors {
					fmt.Fprintf(out, "Failed: %s: %v\n", failure.Path, failure.Err)
				}
				if summary.Failed > 0 {
					return fmt.Errorf("%d file(s) failed to export", summary.Failed)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&destDir, "dest", "d", "", "Destination directory (defaults to the configured export directory)")
	cmd.Flags().StringSliceVar(&andTerms, "and", nil, "Terms that must all match")
	cmd.Flags().StringSliceVar(&orTerms, "or", nil, "Terms of which at least one must match")
	cmd.Flags().StringSliceVar(&notTerms, "not", nil, "Terms that must not match")
	cmd.Flags().BoolVar(&untagged, "untagged", false, "Only records without tags")
	cmd.Flags().StringVar(&presetName, "preset", "", "Use a saved filter preset")

	return cmd
}

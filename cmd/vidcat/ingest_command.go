package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"vidcat/internal/catalog"
	"vidcat/internal/config"
	"vidcat/internal/ingest"
	"vidcat/internal/logging"
	"vidcat/internal/media/extract"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <path>...",
		Short: "Scan paths for video files and add them to the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *catalog.Store, cfg *config.Config) error {
				lock := flock.New(filepath.Join(cfg.Paths.StateDir, "ingest.lock"))
				ok, err := lock.TryLock()
				if err != nil {
					return fmt.Errorf("acquire ingest lock: %w", err)
				}
				if !ok {
					return errors.New("another ingestion is already running")
				}
				defer func() { _ = lock.Unlock() }()

				signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer cancel()

				extractor := extract.New(cfg, logger)
				pipeline := ingest.New(cfg, store, extractor, logger)
				events, err := pipeline.Run(signalCtx, args)
				if err != nil {
					return err
				}

				added, skipped, failed := drainEvents(cmd.OutOrStdout(), events)
				logger.Info("ingestion finished",
					logging.Int("added", added),
					logging.Int("skipped", skipped),
					logging.Int("failed", failed))
				fmt.Fprintf(cmd.OutOrStdout(), "Added %d, skipped %d, failed %d\n", added, skipped, failed)

				if err := signalCtx.Err(); err != nil {
					return err
				}
				return nil
			})
		},
	}
}

// drainEvents consumes the pipeline's progress stream and renders it either
// as an in-place progress bar (interactive terminals) or as plain lines.
func drainEvents(out io.Writer, events <-chan ingest.ProgressEvent) (added, skipped, failed int) {
	var bar *progressbar.ProgressBar
	interactive := isInteractive(out)

	for event := range events {
		if interactive && bar == nil {
			bar = progressbar.NewOptions(event.Total,
				progressbar.OptionSetWriter(out),
				progressbar.OptionSetDescription("Ingesting"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		if bar != nil {
			bar.Describe(event.Label)
			_ = bar.Set(event.Current)
		} else {
			fmt.Fprintf(out, "[%d/%d] %s\n", event.Current, event.Total, event.Label)
		}
		switch {
		case event.Record != nil:
			added++
		case isSkipLabel(event.Label):
			skipped++
		default:
			failed++
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return added, skipped, failed
}

func isSkipLabel(label string) bool {
	return strings.HasPrefix(label, "Skipped:")
}

func isInteractive(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"vidcat/internal/catalog"
	"vidcat/internal/config"
	"vidcat/internal/discovery"
	"vidcat/internal/logging"
)

// ProgressEvent reports one file's outcome and overall batch position.
// Current counts completed items (1-based) and Total is fixed up front;
// Record is nil for skipped and errored items. Current == Total signals
// batch completion to the sink.
type ProgressEvent struct {
	Current int
	Total   int
	Label   string
	Record  *catalog.Record
}

// Extractor is the per-file metadata extraction contract the pipeline drives.
type Extractor interface {
	Extract(ctx context.Context, filePath, thumbnailDir string) (catalog.Record, error)
}

// Store is the record persistence surface the pipeline needs.
type Store interface {
	Exists(ctx context.Context, path string) (bool, error)
	InsertIfAbsent(ctx context.Context, rec catalog.Record) (bool, error)
}

// Pipeline drives discovery, dedup, extraction, persistence, and progress
// emission for one ingestion batch. Per-file failures never abort the batch.
type Pipeline struct {
	cfg       *config.Config
	store     Store
	extractor Extractor
	logger    *slog.Logger
}

// New assembles a pipeline. A nil logger discards output.
func New(cfg *config.Config, store Store, extractor Extractor, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{cfg: cfg, store: store, extractor: extractor, logger: logger}
}

// Run discovers candidates synchronously (the only fatal failure mode), then
// processes them in the background and streams one ProgressEvent per
// candidate. The channel closes after the last candidate or on cancellation.
func (p *Pipeline) Run(ctx context.Context, paths []string) (<-chan ProgressEvent, error) {
	candidates, err := discovery.Discover(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("discover inputs: %w", err)
	}

	events := make(chan ProgressEvent, 16)
	go p.process(ctx, candidates, events)
	return events, nil
}

type outcome struct {
	label  string
	record *catalog.Record
}

func (p *Pipeline) process(ctx context.Context, candidates []string, events chan<- ProgressEvent) {
	defer close(events)

	total := len(candidates)
	if total == 0 {
		return
	}

	workers := p.cfg.Ingest.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	work := make(chan string)
	results := make(chan outcome)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for path := range work {
				if ctx.Err() != nil {
					return
				}
				select {
				case results <- p.processOne(ctx, path):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(work)
		for _, path := range candidates {
			select {
			case work <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	throttleEvery := p.cfg.Ingest.ThrottleEvery
	throttle := time.Duration(p.cfg.Ingest.ThrottleMillis) * time.Millisecond

	completed := 0
	for result := range results {
		completed++
		event := ProgressEvent{
			Current: completed,
			Total:   total,
			Label:   result.label,
			Record:  result.record,
		}
		select {
		case events <- event:
		case <-ctx.Done():
			return
		}

		// Cooperative backpressure valve for the external decoder; not a
		// correctness requirement.
		if throttle > 0 && throttleEvery > 0 && completed%throttleEvery == 0 && completed < total {
			select {
			case <-time.After(throttle):
			case <-ctx.Done():
				return
			}
		}
	}
}

// processOne runs dedup, extraction, and persistence for a single candidate.
// Every failure is converted into an outcome label; nothing propagates.
func (p *Pipeline) processOne(ctx context.Context, path string) outcome {
	base := filepath.Base(path)

	exists, err := p.store.Exists(ctx, path)
	if err != nil {
		p.logger.Error("dedup check failed", logging.String("path", path), logging.Error(err))
		return outcome{label: "Error: " + base}
	}
	if exists {
		p.logger.Debug("already cataloged", logging.String("path", path))
		return outcome{label: "Skipped: " + base}
	}

	rec, err := p.extractor.Extract(ctx, path, p.cfg.Paths.ThumbnailDir)
	if err != nil {
		p.logger.Warn("extraction failed", logging.String("path", path), logging.Error(err))
		return outcome{label: "Error: " + base}
	}

	inserted, err := p.store.InsertIfAbsent(ctx, rec)
	if err != nil {
		p.logger.Error("persist failed", logging.String("path", path), logging.Error(err))
		return outcome{label: "Error: " + base}
	}
	if !inserted {
		// Lost an insert race with a concurrent ingest of the same path; the
		// existing record wins and this pass reports a skip.
		p.logger.Debug("insert race lost", logging.String("path", path))
		return outcome{label: "Skipped: " + base}
	}

	return outcome{label: rec.Name, record: &rec}
}

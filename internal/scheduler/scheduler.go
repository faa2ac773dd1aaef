// Package scheduler runs palette extractions asynchronously with at most
// one extraction in flight per logical source. A newer request for the same
// source supersedes any in-flight extraction: stale results are discarded
// and never overwrite a result computed from newer input.
package scheduler

import (
	"context"
	"image"
	"sync"

	"github.com/hashicorp/go-hclog"

	"pigment/internal/colour"
	"pigment/internal/palette"
)

// ExtractFunc computes a palette from an image. The context is cancelled
// when the request is superseded.
type ExtractFunc func(ctx context.Context, img image.Image) palette.Result

// Notifier carries the per-field change callbacks fired after each
// completed extraction. Nil callbacks are skipped. All five fire after
// every completed extraction, whether or not the field value changed.
type Notifier struct {
	OnPalette           func(source string, entries []palette.Entry)
	OnMostSaturated     func(source string, c colour.RGB)
	OnClosestToBlack    func(source string, c colour.RGB)
	OnClosestToWhite    func(source string, c colour.RGB)
	OnSuggestedContrast func(source string, c colour.RGB)
}

// Scheduler dispatches extractions keyed by source identity.
type Scheduler struct {
	extract  ExtractFunc
	notifier Notifier
	log      hclog.Logger

	mu      sync.Mutex
	tasks   map[string]*task
	gens    map[string]uint64
	results map[string]palette.Result
	wg      sync.WaitGroup
}

type task struct {
	cancel context.CancelFunc
	gen    uint64
}

// New creates a Scheduler. A nil extract falls back to the default
// extractor; a nil logger falls back to the default hclog logger.
func New(extract ExtractFunc, notifier Notifier, log hclog.Logger) *Scheduler {
	if extract == nil {
		ex := palette.New()
		extract = func(_ context.Context, img image.Image) palette.Result {
			return ex.Extract(img)
		}
	}
	if log == nil {
		log = hclog.Default()
	}
	return &Scheduler{
		extract:  extract,
		notifier: notifier,
		log:      log.Named("scheduler"),
		tasks:    make(map[string]*task),
		gens:     make(map[string]uint64),
		results:  make(map[string]palette.Result),
	}
}

// Submit schedules an extraction for the given source, cancelling and
// superseding any extraction already in flight for it. The image snapshot
// is not retained after the extraction completes.
func (s *Scheduler) Submit(ctx context.Context, source string, img image.Image) {
	s.mu.Lock()
	if prev, ok := s.tasks[source]; ok {
		prev.cancel()
	}
	s.gens[source]++
	gen := s.gens[source]

	taskCtx, cancel := context.WithCancel(ctx)
	s.tasks[source] = &task{cancel: cancel, gen: gen}
	s.mu.Unlock()

	s.log.Debug("extraction scheduled", "source", source, "generation", gen)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		result := s.extract(taskCtx, img)
		s.apply(taskCtx, source, gen, result)
	}()
}

// apply publishes a completed result unless it has been superseded.
func (s *Scheduler) apply(ctx context.Context, source string, gen uint64, result palette.Result) {
	s.mu.Lock()
	if s.gens[source] != gen || ctx.Err() != nil {
		s.mu.Unlock()
		s.log.Debug("stale extraction discarded", "source", source, "generation", gen)
		return
	}
	s.results[source] = result
	delete(s.tasks, source)
	s.mu.Unlock()

	s.log.Debug("extraction complete", "source", source, "clusters", len(result.Entries))

	if s.notifier.OnPalette != nil {
		s.notifier.OnPalette(source, result.Entries)
	}
	if s.notifier.OnMostSaturated != nil {
		s.notifier.OnMostSaturated(source, result.MostSaturated)
	}
	if s.notifier.OnClosestToBlack != nil {
		s.notifier.OnClosestToBlack(source, result.ClosestToBlack)
	}
	if s.notifier.OnClosestToWhite != nil {
		s.notifier.OnClosestToWhite(source, result.ClosestToWhite)
	}
	if s.notifier.OnSuggestedContrast != nil {
		s.notifier.OnSuggestedContrast(source, result.SuggestedContrast)
	}
}

// Result returns the last published result for a source, if any.
func (s *Scheduler) Result(source string) (palette.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.results[source]
	return result, ok
}

// Wait blocks until all in-flight extractions have finished or been
// discarded.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

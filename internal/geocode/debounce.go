package geocode

import (
	"context"
	"sync"
	"time"
)

// DefaultQuietPeriod is how long input must pause before a debounced search runs.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer coalesces rapid triggers: a function only runs once no further
// trigger has arrived for a full quiet period. At most one timer is alive at
// a time; every trigger advances a generation counter so late results can be
// recognized as stale.
type Debouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet}
}

// Trigger schedules fn after the quiet period, replacing any pending
// schedule. fn receives the generation it was scheduled under; it should be
// checked with Live before committing results. Returns that generation.
func (d *Debouncer) Trigger(fn func(gen uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen

	if d.stopped {
		return gen
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() { fn(gen) })
	return gen
}

// Live reports whether gen is still the most recent generation, i.e. no newer
// trigger has superseded it.
func (d *Debouncer) Live(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.stopped && gen == d.gen
}

// Stop cancels any pending schedule and disables further triggers. It is the
// teardown counterpart of the component owning the debouncer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Searcher is the forward-geocoding capability the autocompleter consumes.
type Searcher interface {
	Search(ctx context.Context, query string) ([]ResolvedLocation, error)
}

// Suggestions is one committed suggestion-list update.
type Suggestions struct {
	Query     string
	Locations []ResolvedLocation
}

// Autocompleter drives search-as-you-type: inputs are debounced, and a result
// set is only emitted if no newer input has started since its search began
// (last-write-wins on the visible list). In-flight searches are not cancelled
// at the network layer; their results are simply discarded when stale.
type Autocompleter struct {
	searcher Searcher
	debounce *Debouncer
	emit     func(Suggestions)

	mu sync.Mutex
	wg sync.WaitGroup
}

// NewAutocompleter creates an autocompleter that calls emit with each
// committed suggestion list. quiet <= 0 uses DefaultQuietPeriod.
func NewAutocompleter(searcher Searcher, quiet time.Duration, emit func(Suggestions)) *Autocompleter {
	return &Autocompleter{
		searcher: searcher,
		debounce: NewDebouncer(quiet),
		emit:     emit,
	}
}

// Input registers a keystroke's worth of query text.
func (a *Autocompleter) Input(ctx context.Context, query string) {
	a.debounce.Trigger(func(gen uint64) {
		a.wg.Add(1)
		defer a.wg.Done()

		locations, err := a.searcher.Search(ctx, query)
		if err != nil {
			return
		}

		// commit under the lock so a stale response cannot interleave with a
		// newer one between the liveness check and the emit
		a.mu.Lock()
		defer a.mu.Unlock()
		if !a.debounce.Live(gen) {
			return
		}
		a.emit(Suggestions{Query: query, Locations: locations})
	})
}

// Close stops the debouncer and waits for any in-flight search to finish.
func (a *Autocompleter) Close() {
	a.debounce.Stop()
	a.wg.Wait()
}

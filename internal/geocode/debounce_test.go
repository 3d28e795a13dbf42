package geocode

import (
	"context"
	"sync"
	"testing"
	"time"
)

type scriptedSearcher struct {
	mu      sync.Mutex
	delays  map[string]time.Duration
	results map[string][]ResolvedLocation
	calls   []string
}

func (s *scriptedSearcher) Search(ctx context.Context, query string) ([]ResolvedLocation, error) {
	s.mu.Lock()
	s.calls = append(s.calls, query)
	delay := s.delays[query]
	results := s.results[query]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return results, nil
}

func (s *scriptedSearcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func collectEmits() (func(Suggestions), func() []Suggestions) {
	var mu sync.Mutex
	var emitted []Suggestions
	emit := func(s Suggestions) {
		mu.Lock()
		emitted = append(emitted, s)
		mu.Unlock()
	}
	snapshot := func() []Suggestions {
		mu.Lock()
		defer mu.Unlock()
		return append([]Suggestions(nil), emitted...)
	}
	return emit, snapshot
}

func TestAutocompleter_CoalescesRapidInput(t *testing.T) {
	searcher := &scriptedSearcher{
		results: map[string][]ResolvedLocation{
			"managua": {{Address: "Managua, Nicaragua"}},
		},
	}
	emit, emitted := collectEmits()

	auto := NewAutocompleter(searcher, 30*time.Millisecond, emit)
	defer auto.Close()

	ctx := context.Background()
	auto.Input(ctx, "m")
	auto.Input(ctx, "ma")
	auto.Input(ctx, "man")
	auto.Input(ctx, "managua")

	time.Sleep(150 * time.Millisecond)

	if got := searcher.callCount(); got != 1 {
		t.Fatalf("expected 1 search after coalescing, got %d", got)
	}
	got := emitted()
	if len(got) != 1 {
		t.Fatalf("expected 1 emit, got %d", len(got))
	}
	if got[0].Query != "managua" {
		t.Fatalf("expected latest query to win, got %q", got[0].Query)
	}
}

func TestAutocompleter_StaleResultsDiscarded(t *testing.T) {
	searcher := &scriptedSearcher{
		delays: map[string]time.Duration{
			"slow": 120 * time.Millisecond,
		},
		results: map[string][]ResolvedLocation{
			"slow": {{Address: "stale"}},
			"fast": {{Address: "fresh"}},
		},
	}
	emit, emitted := collectEmits()

	auto := NewAutocompleter(searcher, 10*time.Millisecond, emit)
	defer auto.Close()

	ctx := context.Background()
	auto.Input(ctx, "slow")
	time.Sleep(40 * time.Millisecond) // let the slow search start
	auto.Input(ctx, "fast")

	time.Sleep(250 * time.Millisecond)

	got := emitted()
	if len(got) != 1 {
		t.Fatalf("expected exactly the fresh emit, got %d: %+v", len(got), got)
	}
	if got[0].Query != "fast" || got[0].Locations[0].Address != "fresh" {
		t.Fatalf("stale result leaked: %+v", got[0])
	}
}

func TestDebouncer_GenerationAdvancesPerTrigger(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	defer d.Stop()

	first := d.Trigger(func(uint64) {})
	second := d.Trigger(func(uint64) {})

	if second != first+1 {
		t.Fatalf("expected monotonically increasing generations, got %d then %d", first, second)
	}
	if d.Live(first) {
		t.Fatal("superseded generation must not be live")
	}
	if !d.Live(second) {
		t.Fatal("latest generation must be live")
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	ran := make(chan struct{}, 1)
	d.Trigger(func(uint64) { ran <- struct{}{} })
	d.Stop()

	select {
	case <-ran:
		t.Fatal("stopped debouncer must not fire")
	case <-time.After(80 * time.Millisecond):
	}
}

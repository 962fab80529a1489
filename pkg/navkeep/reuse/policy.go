package reuse

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/navkeep/navkeep/pkg/navkeep/internal"
	"github.com/navkeep/navkeep/pkg/navkeep/route"
)

// Policy decides which views are kept alive across navigations and hands
// their detached state back when the same URL is visited again.
//
// A Policy is driven by a single navigation pipeline and does no locking of
// its own. Call every method, Stats included, from that pipeline.
type Policy[H any] struct {
	store  *Store[H]
	logger *slog.Logger

	stored  atomic.Int64
	skipped atomic.Int64
	hits    atomic.Int64
	misses  atomic.Int64
}

// PolicyOption configures a Policy.
type PolicyOption[H any] func(*Policy[H])

// WithStore makes the policy use an existing store instead of a fresh one.
func WithStore[H any](store *Store[H]) PolicyOption[H] {
	return func(p *Policy[H]) {
		if store != nil {
			p.store = store
		}
	}
}

// WithLogger sets the logger decisions are reported to at debug level.
func WithLogger[H any](logger *slog.Logger) PolicyOption[H] {
	return func(p *Policy[H]) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPolicy creates a Policy backed by its own empty store.
func NewPolicy[H any](opts ...PolicyOption[H]) *Policy[H] {
	p := &Policy[H]{}
	for _, opt := range opts {
		opt(p)
	}
	if p.store == nil {
		p.store = NewStore[H]()
	}
	if p.logger == nil {
		p.logger = internal.GetInternalLogger()
	}
	return p
}

// ShouldDetach reports whether the outgoing view should be detached and kept
// rather than destroyed. Only routes whose data sets the reuse flag qualify.
func (p *Policy[H]) ShouldDetach(s *route.Snapshot) bool {
	return s != nil && s.Data.Reuse()
}

// Store keeps handle for later reattachment. Calls for snapshots that are not
// eligible for detaching are ignored.
func (p *Policy[H]) Store(s *route.Snapshot, handle H) {
	if !p.ShouldDetach(s) {
		p.skipped.Inc()
		p.logger.Debug("reuse: ignoring store for ineligible route", "url", s.URL(), "route", s.RouteName())
		return
	}

	key := DeriveKey(s)
	p.store.Set(key, handle)
	p.stored.Inc()
	p.logger.Debug("reuse: stored detached view", "key", key, "route", s.RouteName())
}

// ShouldAttach reports whether a detached view is available for s. Presence
// in the store is authoritative; the reuse flag is not consulted again.
func (p *Policy[H]) ShouldAttach(s *route.Snapshot) bool {
	if s == nil {
		return false
	}
	return p.store.Has(DeriveKey(s))
}

// Retrieve returns the detached view stored for s. The second return value is
// false when there is nothing to reattach and a fresh view must be built.
func (p *Policy[H]) Retrieve(s *route.Snapshot) (H, bool) {
	if s == nil {
		p.misses.Inc()
		var zero H
		return zero, false
	}

	key := DeriveKey(s)
	handle, ok := p.store.Get(key)
	if ok {
		p.hits.Inc()
	} else {
		p.misses.Inc()
	}
	p.logger.Debug("reuse: retrieve", "key", key, "found", ok)
	return handle, ok
}

// Keys returns the identities currently holding a detached view, sorted.
func (p *Policy[H]) Keys() []string {
	return p.store.Keys()
}

// Stats returns a point-in-time copy of the policy's counters. Retained is
// read from the store, so it includes entries written there by others.
func (p *Policy[H]) Stats() Stats {
	return Stats{
		Stored:   p.stored.Load(),
		Skipped:  p.skipped.Load(),
		Hits:     p.hits.Load(),
		Misses:   p.misses.Load(),
		Retained: p.store.Len(),
	}
}

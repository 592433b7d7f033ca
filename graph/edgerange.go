package graph

import "github.com/katalvlaran/dgraph/gconf"

// EdgeRange is a lazy, restartable, finite sequence over the edges
// incident to one vertex, yielding each edge exactly once in the
// backend's natural order (insertion order for the list backend,
// ascending other-endpoint id for the matrix backend).
//
// Its Len behavior is governed by the owning Graph's configured
// gconf.CacheMode: CacheNone recomputes on every call, CacheLazy
// memoizes on first call, CacheEager precomputes at construction time.
type EdgeRange[V any, E any] struct {
	snapshot []*Edge[V, E]
	mode     gconf.CacheMode
	cached   int
	have     bool
}

func newEdgeRange[V any, E any](snapshot []*Edge[V, E], mode gconf.CacheMode) EdgeRange[V, E] {
	r := EdgeRange[V, E]{snapshot: snapshot, mode: mode}
	if mode == gconf.CacheEager {
		r.cached = len(snapshot)
		r.have = true
	}

	return r
}

// Len returns the number of edges in the range.
func (r *EdgeRange[V, E]) Len() int {
	switch r.mode {
	case gconf.CacheNone:
		return len(r.snapshot)
	case gconf.CacheEager:
		return r.cached
	default: // CacheLazy
		if !r.have {
			r.cached = len(r.snapshot)
			r.have = true
		}
		return r.cached
	}
}

// All returns every edge in the range, in order. Calling All does not
// exhaust or mutate the range; it may be called repeatedly (the range is
// restartable by construction, being a plain snapshot).
func (r EdgeRange[V, E]) All() []*Edge[V, E] {
	out := make([]*Edge[V, E], len(r.snapshot))
	copy(out, r.snapshot)

	return out
}

// ForEach calls fn for every edge in the range, in order, stopping early
// if fn returns false.
func (r *EdgeRange[V, E]) ForEach(fn func(*Edge[V, E]) bool) {
	for _, e := range r.snapshot {
		if !fn(e) {
			return
		}
	}
}

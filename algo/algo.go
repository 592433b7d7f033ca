// Package algo provides the graph algorithms built on top of the traverse
// kernels: weighted shortest paths (Dijkstra), minimum spanning trees
// (Prim), topological ordering, bipartite coloring, and thin BFS/DFS
// wrappers that return a traverse.Result directly.
package algo

import (
	"errors"

	"github.com/katalvlaran/dgraph/graph"
	"github.com/katalvlaran/dgraph/traverse"
)

// ErrUnreachable is returned by ReconstructPath/PathTo when the requested
// vertex was never reached, i.e. the walk recorded no depth for it.
var ErrUnreachable = traverse.ErrUnreachable

// Sentinel errors returned by this package's algorithms.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed in.
	ErrGraphNil = errors.New("algo: graph is nil")

	// ErrNegativeWeight is returned by Dijkstra and Prim when the search
	// discovers an edge carrying a negative weight. Edges the search never
	// reaches are not examined.
	ErrNegativeWeight = errors.New("algo: negative edge weight")

	// ErrDisconnected is returned by Prim when the graph (or the
	// component reachable from root) does not span every vertex. Prim
	// stops when its candidate heap empties and reports the partial
	// forest via this sentinel.
	ErrDisconnected = errors.New("algo: graph is not connected")

	// ErrDirectedGraph is returned by Prim, which requires an
	// undirected graph.
	ErrDirectedGraph = errors.New("algo: requires an undirected graph")

	// ErrUndirectedGraph is returned by TopologicalSort, which requires
	// a directed graph.
	ErrUndirectedGraph = errors.New("algo: requires a directed graph")

	// ErrCycleDetected is returned by TopologicalSort when the graph
	// contains a cycle.
	ErrCycleDetected = errors.New("algo: graph contains a cycle")

	// ErrNotBipartite is returned by BipartiteColoring when the graph
	// contains an odd cycle.
	ErrNotBipartite = errors.New("algo: graph is not bipartite")
)

// WeightFunc extracts a numeric edge weight from an edge's attribute
// record. Algorithms that need weights (Dijkstra, Prim) take one of
// these rather than assuming E has a fixed shape.
type WeightFunc[V any, E any] func(e *graph.Edge[V, E]) float64

// UnitWeight is the WeightFunc for attribute records carrying no weight
// field: every edge costs exactly one.
func UnitWeight[V any, E any](*graph.Edge[V, E]) float64 { return 1 }

// negativeWeightGuard returns a traverse.Option that aborts a PFS walk the
// first time it encounters an edge of negative weight, composed with any
// opts already supplied by the caller so a caller-provided enqueue
// predicate still runs. The returned bool pointer is set to true iff that
// abort happened, letting the caller distinguish "negative weight found"
// from any other reason traverse.PFS might abort or fail.
//
// The check runs inside the search's own enqueue predicate as each edge
// is discovered, not as a whole-graph pre-scan: an edge in a component
// never reached from start/root must never fail the search.
func negativeWeightGuard[V any, E any](weight WeightFunc[V, E], opts ...traverse.Option[V, E]) (traverse.Option[V, E], *bool) {
	triggered := new(bool)
	guard := func(o *traverse.Options[V, E]) {
		for _, opt := range opts {
			opt(o)
		}
		prev := o.EnqueuePredicate
		o.EnqueuePredicate = func(from graph.VertexID, e *graph.Edge[V, E], to graph.VertexID) traverse.EnqueueDecision {
			if weight(e) < 0 {
				*triggered = true

				return traverse.EnqueueAbort
			}
			if prev != nil {
				return prev(from, e, to)
			}

			return traverse.EnqueueVisit
		}
	}

	return guard, triggered
}

// PathTo reconstructs the path from a traversal's start vertex to dest,
// thinly wrapping traverse.Result.PathTo so callers of this package don't
// need to import traverse directly for the common case.
func PathTo(res *traverse.Result, dest graph.VertexID) ([]graph.VertexID, error) {
	return res.PathTo(dest)
}

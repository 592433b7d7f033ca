package algo

import (
	"github.com/katalvlaran/dgraph/attr"
	"github.com/katalvlaran/dgraph/graph"
	"github.com/katalvlaran/dgraph/traverse"
)

// BipartiteColoring attempts a proper 2-coloring of g via traverse.BFS,
// coloring each discovered vertex the opposite color of its parent and
// aborting the walk the instant an edge joins two vertices that already
// share a color. All coloring and conflict-detection logic lives in the
// enqueue predicate, which traverse kernels invoke for every adjacent
// edge of a popped vertex regardless of the neighbor's visited status;
// that is what lets a same-color conflict on an edge into an
// already-colored vertex be observed at all.
//
// Every component is seeded and colored independently (coloring is
// otherwise arbitrary across components), in ascending root-id order.
// Returns the discovered coloring and ErrNotBipartite at the first odd
// cycle found.
func BipartiteColoring[V any, E any](g *graph.Graph[V, E]) (map[graph.VertexID]attr.Color, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	colors := make(map[graph.VertexID]attr.Color, g.NVertices())
	for _, root := range g.Vertices() {
		if colors[root.ID()].IsSet() {
			continue
		}
		colors[root.ID()] = attr.A

		enqueuePred := func(from graph.VertexID, e *graph.Edge[V, E], to graph.VertexID) traverse.EnqueueDecision {
			if e.IsLoop() {
				return traverse.EnqueueSkip
			}
			want := colors[from].Next()
			if c := colors[to]; c.IsSet() {
				if c != want {
					return traverse.EnqueueAbort
				}

				return traverse.EnqueueSkip
			}
			colors[to] = want

			return traverse.EnqueueVisit
		}

		_, err := traverse.BFS(g, root, traverse.WithEnqueuePredicate[V, E](enqueuePred))
		if err == traverse.ErrAborted {
			return colors, ErrNotBipartite
		}
		if err != nil {
			return colors, err
		}
	}

	return colors, nil
}

// IsBipartite reports whether g admits a proper 2-coloring.
func IsBipartite[V any, E any](g *graph.Graph[V, E]) (bool, error) {
	_, err := BipartiteColoring(g)
	if err == ErrNotBipartite {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

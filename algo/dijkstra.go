package algo

import (
	"github.com/katalvlaran/dgraph/graph"
	"github.com/katalvlaran/dgraph/traverse"
)

// Dijkstra computes the shortest-path distance from start to every
// reachable vertex in g, using weight to extract each edge's cost. It
// fails with ErrNegativeWeight the moment the search itself discovers a
// negative-weight edge (not via a whole-graph pre-scan), so a negative
// weight in a component unrelated to start never affects the result.
//
// Returns the best-known distance to every reached vertex (start at 0)
// and a traverse.Result whose Parent map is the shortest-path tree; pass
// it to ReconstructPath to recover an actual path.
func Dijkstra[V any, E any](g *graph.Graph[V, E], start *graph.Vertex[V], weight WeightFunc[V, E], opts ...traverse.Option[V, E]) (map[graph.VertexID]float64, *traverse.Result, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	priority := func(fromDist float64, e *graph.Edge[V, E]) float64 {
		return fromDist + weight(e)
	}

	guard, triggered := negativeWeightGuard(weight, opts...)
	res, dist, err := traverse.PFS(g, start, traverse.PriorityFunc[V, E](priority), guard)
	if err == traverse.ErrAborted && *triggered {
		return dist, res, ErrNegativeWeight
	}
	if err != nil {
		return dist, res, err
	}

	return dist, res, nil
}

// ReconstructPath recovers the shortest path from Dijkstra's start vertex
// to dest, reading res.Parent. Returns an error if dest was never
// reached.
func ReconstructPath(res *traverse.Result, dest graph.VertexID) ([]graph.VertexID, error) {
	return res.PathTo(dest)
}

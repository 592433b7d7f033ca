package algo

import (
	"github.com/katalvlaran/dgraph/graph"
	"github.com/katalvlaran/dgraph/traverse"
)

// Prim computes a minimum spanning tree of g's connected component
// containing root (vertex 0 when root is nil), using weight to extract
// each edge's cost. Requires an
// undirected graph. The tree is grown from root over traverse.PFS with a
// priority function that ranks a candidate by its own edge weight alone,
// ignoring cumulative distance (Prim picks the cheapest frontier edge,
// not the cheapest path).
//
// If g's component containing root does not span every vertex, Prim
// returns the spanning forest it could build together with
// ErrDisconnected.
//
// Prim fails with ErrNegativeWeight the moment the search itself
// discovers a negative-weight edge, so a negative weight in a component
// unrelated to root never affects the result.
func Prim[V any, E any](g *graph.Graph[V, E], root *graph.Vertex[V], weight WeightFunc[V, E]) ([]*graph.Edge[V, E], float64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if g.Directed() {
		return nil, 0, ErrDirectedGraph
	}
	if root == nil {
		vs := g.Vertices()
		if len(vs) == 0 {
			return nil, 0, nil
		}
		root = vs[0]
	}

	priority := func(_ float64, e *graph.Edge[V, E]) float64 {
		return weight(e)
	}

	guard, triggered := negativeWeightGuard[V, E](weight)
	res, _, err := traverse.PFS(g, root, traverse.PriorityFunc[V, E](priority), guard)
	if err == traverse.ErrAborted && *triggered {
		return nil, 0, ErrNegativeWeight
	}
	if err != nil {
		return nil, 0, err
	}

	edges := make([]*graph.Edge[V, E], 0, len(res.Order))
	var total float64
	for _, id := range res.Order {
		parentID, ok := res.Parent[id]
		if !ok {
			continue // root has no parent edge
		}
		v, verr := g.VertexByID(id)
		if verr != nil {
			return nil, 0, verr
		}
		p, perr := g.VertexByID(parentID)
		if perr != nil {
			return nil, 0, perr
		}
		// With parallel edges, the search's winning entry is the
		// cheapest one between p and v; pick it, not the first stored.
		var e *graph.Edge[V, E]
		for _, cand := range g.GetEdges(p, v) {
			if e == nil || weight(cand) < weight(e) {
				e = cand
			}
		}
		if e == nil {
			continue
		}
		edges = append(edges, e)
		total += weight(e)
	}

	if len(res.Order) < g.NVertices() {
		return edges, total, ErrDisconnected
	}

	return edges, total, nil
}

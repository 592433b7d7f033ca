package traverse

import (
	"fmt"

	"github.com/katalvlaran/dgraph/graph"
)

// BFS explores g breadth-first from start, visiting each reachable vertex
// exactly once in increasing distance (in edges) from start.
func BFS[V any, E any](g *graph.Graph[V, E], start *graph.Vertex[V], opts ...Option[V, E]) (*Result, error) {
	if start == nil {
		return nil, ErrStartInvalid
	}

	return BFSFrontier(g, []VertexInfo[V]{{Vertex: start}}, opts...)
}

// BFSFrontier is BFS generalized to an arbitrary initial frontier of seed
// vertices, each explored as if discovered at its own Depth/Parent. All
// seeds share one visited set and one output Result, so two seeds whose
// neighborhoods overlap do not duplicate work.
//
// The enqueue predicate is invoked for every adjacent edge of a popped
// vertex, regardless of whether the neighbor has already been visited;
// only the "not yet visited" gate after it dedupes the frontier. This
// lets callers detect conflicts on edges into already-visited vertices
// (e.g. bipartite coloring's same-color check) instead of silently
// dropping those edges before the predicate ever sees them.
func BFSFrontier[V any, E any](g *graph.Graph[V, E], frontier []VertexInfo[V], opts ...Option[V, E]) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(frontier) == 0 {
		return nil, ErrStartInvalid
	}
	for _, seed := range frontier {
		if seed.Vertex == nil {
			return nil, ErrStartInvalid
		}
		if _, err := g.VertexByID(seed.Vertex.ID()); err != nil {
			return nil, ErrStartInvalid
		}
	}

	o := defaultOptions[V, E]()
	for _, opt := range opts {
		opt(&o)
	}

	res := newResult(g.NVertices())
	visited := make(map[graph.VertexID]bool, g.NVertices())
	type item struct {
		v     *graph.Vertex[V]
		depth int
	}
	queue := make([]item, 0, g.NVertices())

	enqueue := func(v *graph.Vertex[V], depth int, parent graph.VertexID, hasParent bool) {
		visited[v.ID()] = true
		res.Depth[v.ID()] = depth
		if hasParent {
			res.Parent[v.ID()] = parent
		}
		if o.OnEnqueue != nil {
			o.OnEnqueue(v.ID(), depth)
		}
		queue = append(queue, item{v: v, depth: depth})
	}
	for _, seed := range frontier {
		if visited[seed.Vertex.ID()] {
			continue
		}
		enqueue(seed.Vertex, seed.Depth, seed.Parent, seed.HasParent)
	}

	for len(queue) > 0 {
		if err := checkCtx(o.Ctx); err != nil {
			return res, err
		}
		cur := queue[0]
		queue = queue[1:]
		if o.VisitPredicate != nil && !o.VisitPredicate(cur.v.ID()) {
			continue
		}

		res.Order = append(res.Order, cur.v.ID())
		if o.OnVisit != nil {
			if err := o.OnVisit(cur.v.ID(), cur.depth); err != nil {
				return res, fmt.Errorf("traverse: BFS OnVisit at vertex %d: %w", cur.v.ID(), err)
			}
		}

		if o.MaxDepth > 0 && cur.depth >= o.MaxDepth {
			continue
		}

		edges := g.AdjacentEdges(cur.v).All()
		for _, e := range edges {
			nbr := e.IncidentVertex(cur.v)
			switch decide(o, cur.v.ID(), e, nbr.ID()) {
			case EnqueueAbort:
				return res, ErrAborted
			case EnqueueSkip:
				continue
			}
			if visited[nbr.ID()] {
				continue
			}
			enqueue(nbr, cur.depth+1, cur.v.ID(), true)
		}
	}

	return res, nil
}

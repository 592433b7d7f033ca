package traverse

import (
	"fmt"

	"github.com/katalvlaran/dgraph/graph"
)

// DFSIterative explores g depth-first from start using an explicit stack.
//
// A vertex is marked visited only when it is actually popped and visited,
// not when it is pushed: a vertex may be pushed more than once (once per
// discovering edge) before its first, winning pop. This is what makes the
// LIFO frontier produce genuine depth-first pre-order; marking visited
// at push time degenerates into a BFS-like order on graphs with more than
// one path to a vertex.
func DFSIterative[V any, E any](g *graph.Graph[V, E], start *graph.Vertex[V], opts ...Option[V, E]) (*Result, error) {
	if start == nil {
		return nil, ErrStartInvalid
	}

	return DFSIterativeFrontier(g, []VertexInfo[V]{{Vertex: start}}, opts...)
}

// DFSIterativeFrontier is DFSIterative generalized to an arbitrary initial
// frontier of seed vertices, pushed onto the stack in frontier order so
// the first seed is explored first.
//
// As in BFSFrontier, the enqueue predicate is invoked for every adjacent
// edge of a popped vertex regardless of the neighbor's visited status;
// only the pop-time "not yet visited" check dedupes the stack.
func DFSIterativeFrontier[V any, E any](g *graph.Graph[V, E], frontier []VertexInfo[V], opts ...Option[V, E]) (*Result, error) {
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
	type frame struct {
		v         *graph.Vertex[V]
		depth     int
		parent    graph.VertexID
		hasParent bool
	}
	stack := make([]frame, 0, len(frontier))
	for i := len(frontier) - 1; i >= 0; i-- {
		seed := frontier[i]
		stack = append(stack, frame{v: seed.Vertex, depth: seed.Depth, parent: seed.Parent, hasParent: seed.HasParent})
	}

	for len(stack) > 0 {
		if err := checkCtx(o.Ctx); err != nil {
			return res, err
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur.v.ID()] {
			continue
		}
		if o.VisitPredicate != nil && !o.VisitPredicate(cur.v.ID()) {
			continue
		}
		visited[cur.v.ID()] = true
		res.Depth[cur.v.ID()] = cur.depth
		if cur.hasParent {
			res.Parent[cur.v.ID()] = cur.parent
		}
		if o.OnEnqueue != nil {
			o.OnEnqueue(cur.v.ID(), cur.depth)
		}

		res.Order = append(res.Order, cur.v.ID())
		if o.OnVisit != nil {
			if err := o.OnVisit(cur.v.ID(), cur.depth); err != nil {
				return res, fmt.Errorf("traverse: DFSIterative OnVisit at vertex %d: %w", cur.v.ID(), err)
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
			stack = append(stack, frame{v: nbr, depth: cur.depth + 1, parent: cur.v.ID(), hasParent: true})
		}
	}

	return res, nil
}

// DFSRecursive explores g depth-first from start using the call stack,
// invoking OnPostVisit as each vertex's recursion returns, so on a tree
// PostOrder comes out as the reverse of Order.
func DFSRecursive[V any, E any](g *graph.Graph[V, E], start *graph.Vertex[V], opts ...Option[V, E]) (*Result, error) {
	if start == nil {
		return nil, ErrStartInvalid
	}

	return DFSRecursiveFrontier(g, []VertexInfo[V]{{Vertex: start}}, opts...)
}

// DFSRecursiveFrontier is DFSRecursive generalized to an arbitrary initial
// frontier of seed vertices, walked in frontier order.
func DFSRecursiveFrontier[V any, E any](g *graph.Graph[V, E], frontier []VertexInfo[V], opts ...Option[V, E]) (*Result, error) {
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

	var walk func(v *graph.Vertex[V], depth int) error
	walk = func(v *graph.Vertex[V], depth int) error {
		if err := checkCtx(o.Ctx); err != nil {
			return err
		}
		if o.VisitPredicate != nil && !o.VisitPredicate(v.ID()) {
			return nil
		}
		visited[v.ID()] = true
		res.Depth[v.ID()] = depth
		if o.OnEnqueue != nil {
			o.OnEnqueue(v.ID(), depth)
		}
		res.Order = append(res.Order, v.ID())
		if o.OnVisit != nil {
			if err := o.OnVisit(v.ID(), depth); err != nil {
				return fmt.Errorf("traverse: DFSRecursive OnVisit at vertex %d: %w", v.ID(), err)
			}
		}

		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			return nil
		}

		for _, e := range g.AdjacentEdges(v).All() {
			nbr := e.IncidentVertex(v)
			switch decide(o, v.ID(), e, nbr.ID()) {
			case EnqueueAbort:
				return ErrAborted
			case EnqueueSkip:
				continue
			}
			if visited[nbr.ID()] {
				continue
			}
			res.Parent[nbr.ID()] = v.ID()
			if err := walk(nbr, depth+1); err != nil {
				return err
			}
		}

		res.PostOrder = append(res.PostOrder, v.ID())
		if o.OnPostVisit != nil {
			o.OnPostVisit(v.ID(), depth)
		}

		return nil
	}

	for _, seed := range frontier {
		if visited[seed.Vertex.ID()] {
			continue
		}
		if seed.HasParent {
			res.Parent[seed.Vertex.ID()] = seed.Parent
		}
		if err := walk(seed.Vertex, seed.Depth); err != nil {
			return res, err
		}
	}

	return res, nil
}

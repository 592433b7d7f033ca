package traverse

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dgraph/graph"
)

// PriorityFunc computes the priority to assign vertex v when it is
// discovered via edge e from a vertex whose own best-known priority was
// fromPriority. Dijkstra uses fromPriority+weight(e); Prim uses weight(e)
// alone (MST edge selection ignores cumulative path cost).
type PriorityFunc[V any, E any] func(fromPriority float64, e *graph.Edge[V, E]) float64

// pqEntry is one (vertex, priority) candidate in the PFS frontier. Stale
// entries (a vertex popped with a priority worse than its current best)
// are discarded lazily rather than updated in place.
type pqEntry struct {
	id        graph.VertexID
	priority  float64
	parent    graph.VertexID
	hasParent bool
}

type priorityQueue []pqEntry

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqEntry)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}

// PFS explores g from start in increasing order of priority, as assigned
// by priorityFn, using a lazy-decrease-key min-heap frontier. Algorithms
// with their own convergence rule (Dijkstra's shortest distance, Prim's
// cheapest frontier edge) pass a priorityFn that encodes that rule; PFS
// itself only guarantees lowest-priority-first visitation and
// predecessor bookkeeping.
//
// Returns the visit Result plus the final best-known priority of every
// visited vertex.
func PFS[V any, E any](g *graph.Graph[V, E], start *graph.Vertex[V], priorityFn PriorityFunc[V, E], opts ...Option[V, E]) (*Result, map[graph.VertexID]float64, error) {
	if start == nil {
		return nil, nil, ErrStartInvalid
	}

	return PFSFrontier(g, []VertexInfo[V]{{Vertex: start}}, priorityFn, opts...)
}

// PFSFrontier is PFS generalized to an arbitrary initial frontier of seed
// vertices, each entering the heap at a priority taken from its Depth
// field (the single-start wrapper seeds start at priority 0).
//
// The enqueue predicate is invoked for every adjacent edge of a popped
// vertex before this kernel consults its own "already finalized" gate. A
// predicate that must inspect every discovered edge (e.g. a
// negative-weight guard) would otherwise silently never see an edge
// whose target has already been finalized by a cheaper path.
func PFSFrontier[V any, E any](g *graph.Graph[V, E], frontier []VertexInfo[V], priorityFn PriorityFunc[V, E], opts ...Option[V, E]) (*Result, map[graph.VertexID]float64, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if len(frontier) == 0 {
		return nil, nil, ErrStartInvalid
	}
	for _, seed := range frontier {
		if seed.Vertex == nil {
			return nil, nil, ErrStartInvalid
		}
		if _, err := g.VertexByID(seed.Vertex.ID()); err != nil {
			return nil, nil, ErrStartInvalid
		}
	}
	if priorityFn == nil {
		return nil, nil, fmt.Errorf("traverse: PFS requires a non-nil PriorityFunc")
	}

	o := defaultOptions[V, E]()
	for _, opt := range opts {
		opt(&o)
	}

	res := newResult(g.NVertices())
	best := make(map[graph.VertexID]float64, g.NVertices())
	finalized := make(map[graph.VertexID]bool, g.NVertices())

	pq := &priorityQueue{}
	for _, seed := range frontier {
		p := float64(seed.Depth)
		if cur, ok := best[seed.Vertex.ID()]; !ok || p < cur {
			best[seed.Vertex.ID()] = p
			*pq = append(*pq, pqEntry{id: seed.Vertex.ID(), priority: p, parent: seed.Parent, hasParent: seed.HasParent})
		}
	}
	heap.Init(pq)

	for pq.Len() > 0 {
		if err := checkCtx(o.Ctx); err != nil {
			return res, best, err
		}
		top := heap.Pop(pq).(pqEntry)
		if finalized[top.id] {
			continue
		}
		if p, ok := best[top.id]; ok && top.priority > p {
			continue // stale entry superseded by a better one already
		}
		if o.VisitPredicate != nil && !o.VisitPredicate(top.id) {
			continue
		}
		finalized[top.id] = true

		v, err := g.VertexByID(top.id)
		if err != nil {
			return res, best, err
		}
		if top.hasParent {
			res.Parent[top.id] = top.parent
		}
		res.Depth[top.id] = len(res.Order)
		if o.OnEnqueue != nil {
			o.OnEnqueue(top.id, res.Depth[top.id])
		}
		res.Order = append(res.Order, top.id)
		if o.OnVisit != nil {
			if err = o.OnVisit(top.id, res.Depth[top.id]); err != nil {
				return res, best, fmt.Errorf("traverse: PFS OnVisit at vertex %d: %w", top.id, err)
			}
		}

		for _, e := range g.AdjacentEdges(v).All() {
			nbr := e.IncidentVertex(v)
			switch decide(o, top.id, e, nbr.ID()) {
			case EnqueueAbort:
				return res, best, ErrAborted
			case EnqueueSkip:
				continue
			}
			if finalized[nbr.ID()] {
				continue
			}
			candidate := priorityFn(top.priority, e)
			if cur, ok := best[nbr.ID()]; !ok || candidate < cur {
				best[nbr.ID()] = candidate
				heap.Push(pq, pqEntry{id: nbr.ID(), priority: candidate, parent: top.id, hasParent: true})
			}
		}
	}

	return res, best, nil
}

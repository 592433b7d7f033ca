package algo

import (
	"github.com/katalvlaran/dgraph/graph"
	"github.com/katalvlaran/dgraph/traverse"
)

// TopologicalSort computes a linear ordering of g's vertices such that for
// every directed edge u->v with u != v, u appears before v. Requires a
// directed graph; returns ErrCycleDetected if no such ordering exists.
//
// Self-loops are ignored for both in-degree and ordering purposes: a
// self-loop is a trivial cycle that would otherwise make every graph
// containing one unsortable.
//
// Kahn's algorithm over a single traverse.BFSFrontier walk: the frontier
// is seeded with every in-degree-zero vertex at once (ascending id
// order), and the enqueue predicate decrements the neighbor's in-degree
// and admits it only once that reaches zero. Vertex enumeration order
// (ascending id) and edge enumeration order (backend-native) together
// make the result deterministic, not merely valid.
func TopologicalSort[V any, E any](g *graph.Graph[V, E]) ([]graph.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	inDegree := make(map[graph.VertexID]int, g.NVertices())
	for _, v := range g.Vertices() {
		inDegree[v.ID()] = 0
	}
	for _, v := range g.Vertices() {
		for _, e := range g.AdjacentEdges(v).All() {
			if e.IsLoop() {
				continue
			}
			inDegree[e.Second().ID()]++
		}
	}

	frontier := make([]traverse.VertexInfo[V], 0, g.NVertices())
	for _, v := range g.Vertices() {
		if inDegree[v.ID()] == 0 {
			frontier = append(frontier, traverse.VertexInfo[V]{Vertex: v})
		}
	}
	if len(frontier) == 0 {
		if g.NVertices() == 0 {
			return nil, nil
		}

		return nil, ErrCycleDetected
	}

	order := make([]graph.VertexID, 0, g.NVertices())
	enqueuePred := func(from graph.VertexID, e *graph.Edge[V, E], to graph.VertexID) traverse.EnqueueDecision {
		if e.IsLoop() {
			return traverse.EnqueueSkip
		}
		inDegree[to]--
		if inDegree[to] == 0 {
			return traverse.EnqueueVisit
		}

		return traverse.EnqueueSkip
	}
	onVisit := func(id graph.VertexID, _ int) error {
		order = append(order, id)

		return nil
	}

	if _, err := traverse.BFSFrontier(g, frontier,
		traverse.WithEnqueuePredicate[V, E](enqueuePred),
		traverse.WithOnVisit[V, E](onVisit),
	); err != nil {
		return nil, err
	}

	if len(order) != g.NVertices() {
		return nil, ErrCycleDetected
	}

	return order, nil
}

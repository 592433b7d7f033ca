package algo

import (
	"github.com/katalvlaran/dgraph/graph"
	"github.com/katalvlaran/dgraph/traverse"
)

// BFS runs a breadth-first traversal of g. With start non-nil, only its
// component is walked. With start nil, every component is walked in
// ascending root-id order and the per-component results are merged into
// one Result: Order is the concatenation of each
// component's order, and Depth/Parent/PostOrder accumulate across all of
// them, so the combined Result still answers PathTo for any vertex.
func BFS[V any, E any](g *graph.Graph[V, E], start *graph.Vertex[V], opts ...traverse.Option[V, E]) (*traverse.Result, error) {
	return walkAll(g, start, opts, traverse.BFS[V, E])
}

// DFS runs an iterative depth-first traversal of g, with the same
// optional-root, all-components semantics as BFS.
func DFS[V any, E any](g *graph.Graph[V, E], start *graph.Vertex[V], opts ...traverse.Option[V, E]) (*traverse.Result, error) {
	return walkAll(g, start, opts, traverse.DFSIterative[V, E])
}

// kernel is the shape shared by traverse.BFS, traverse.DFSIterative and
// traverse.DFSRecursive.
type kernel[V any, E any] func(*graph.Graph[V, E], *graph.Vertex[V], ...traverse.Option[V, E]) (*traverse.Result, error)

// walkAll drives kernel once per connected component, in ascending
// root-id order, skipping any vertex already covered by an earlier
// component's walk, and merges the results.
func walkAll[V any, E any](g *graph.Graph[V, E], start *graph.Vertex[V], opts []traverse.Option[V, E], run kernel[V, E]) (*traverse.Result, error) {
	if g == nil {
		return nil, traverse.ErrGraphNil
	}

	if start != nil {
		return run(g, start, opts...)
	}

	merged := &traverse.Result{
		Order:     make([]graph.VertexID, 0, g.NVertices()),
		Depth:     make(map[graph.VertexID]int, g.NVertices()),
		Parent:    make(map[graph.VertexID]graph.VertexID, g.NVertices()),
		PostOrder: make([]graph.VertexID, 0, g.NVertices()),
	}

	for _, v := range g.Vertices() {
		if _, seen := merged.Depth[v.ID()]; seen {
			continue
		}
		res, err := run(g, v, opts...)
		if err != nil {
			return nil, err
		}
		merged.Order = append(merged.Order, res.Order...)
		merged.PostOrder = append(merged.PostOrder, res.PostOrder...)
		for id, d := range res.Depth {
			merged.Depth[id] = d
		}
		for id, p := range res.Parent {
			merged.Parent[id] = p
		}
	}

	return merged, nil
}

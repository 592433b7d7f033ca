package traverse

import (
	"testing"

	"github.com/katalvlaran/dgraph/attr"
	"github.com/katalvlaran/dgraph/graph"
)

func lineGraph(t *testing.T, n int) (*graph.Graph[attr.Empty, attr.Weight[int]], []*graph.Vertex[attr.Empty]) {
	t.Helper()
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	vs := g.AddVertices(make([]attr.Empty, n)...)
	for i := 0; i < n-1; i++ {
		if _, err := g.AddEdge(vs[i], vs[i+1], attr.NewWeight[int]()); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g, vs
}

func TestBFSVisitsAllInDepthOrder(t *testing.T) {
	g, vs := lineGraph(t, 4)
	res, err := BFS[attr.Empty, attr.Weight[int]](g, vs[0])
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if len(res.Order) != 4 {
		t.Fatalf("want 4 visited, got %d", len(res.Order))
	}
	for i, v := range vs {
		if res.Depth[v.ID()] != i {
			t.Fatalf("vertex %d: want depth %d, got %d", v.ID(), i, res.Depth[v.ID()])
		}
	}
}

func TestDFSIterativeAndRecursiveAgree(t *testing.T) {
	g, vs := lineGraph(t, 5)
	it, err := DFSIterative[attr.Empty, attr.Weight[int]](g, vs[0])
	if err != nil {
		t.Fatalf("DFSIterative: %v", err)
	}
	rec, err := DFSRecursive[attr.Empty, attr.Weight[int]](g, vs[0])
	if err != nil {
		t.Fatalf("DFSRecursive: %v", err)
	}
	if len(it.Order) != len(rec.Order) || len(it.Order) != 5 {
		t.Fatalf("want both to visit all 5 vertices, got %d and %d", len(it.Order), len(rec.Order))
	}
}

func TestEnqueuePredicateSkipsAndAborts(t *testing.T) {
	g, vs := lineGraph(t, 4)
	skip := WithEnqueuePredicate[attr.Empty, attr.Weight[int]](func(from graph.VertexID, _ *graph.Edge[attr.Empty, attr.Weight[int]], to graph.VertexID) EnqueueDecision {
		if to == vs[2].ID() {
			return EnqueueSkip
		}

		return EnqueueVisit
	})
	res, err := BFS[attr.Empty, attr.Weight[int]](g, vs[0], skip)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if _, ok := res.Depth[vs[2].ID()]; ok {
		t.Fatalf("vertex 2 should have been skipped")
	}

	abort := WithEnqueuePredicate[attr.Empty, attr.Weight[int]](func(graph.VertexID, *graph.Edge[attr.Empty, attr.Weight[int]], graph.VertexID) EnqueueDecision {
		return EnqueueAbort
	})
	if _, err = BFS[attr.Empty, attr.Weight[int]](g, vs[0], abort); err != ErrAborted {
		t.Fatalf("want ErrAborted, got %v", err)
	}
}

func TestVisitPredicateGatesDequeuedVertices(t *testing.T) {
	g, vs := lineGraph(t, 4)
	gate := WithVisitPredicate[attr.Empty, attr.Weight[int]](func(id graph.VertexID) bool {
		return id != vs[2].ID()
	})
	res, err := BFS[attr.Empty, attr.Weight[int]](g, vs[0], gate)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	// The gated vertex is never visited, and the walk cannot pass
	// through it to reach vertex 3.
	if len(res.Order) != 2 || res.Order[0] != vs[0].ID() || res.Order[1] != vs[1].ID() {
		t.Fatalf("want order [0 1] with the walk cut off at the gated vertex, got %v", res.Order)
	}
}

func TestPFSOrdersByPriority(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{})
	mustAdd := func(u, v *graph.Vertex[attr.Empty], w int) {
		if _, err := g.AddEdge(u, v, attr.Weight[int]{Value: w}); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	mustAdd(vs[0], vs[1], 5)
	mustAdd(vs[0], vs[2], 1)
	mustAdd(vs[2], vs[1], 1)

	priority := func(from float64, e *graph.Edge[attr.Empty, attr.Weight[int]]) float64 {
		return from + float64(e.Attr.Value)
	}
	res, dist, err := PFS[attr.Empty, attr.Weight[int]](g, vs[0], priority)
	if err != nil {
		t.Fatalf("PFS: %v", err)
	}
	if dist[vs[1].ID()] != 2 {
		t.Fatalf("want shortest path 0->2->1 of cost 2, got %v", dist[vs[1].ID()])
	}
	if res.Order[0] != vs[0].ID() {
		t.Fatalf("want start visited first, got %v", res.Order)
	}
}

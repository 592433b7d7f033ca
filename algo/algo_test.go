package algo

import (
	"testing"

	"github.com/katalvlaran/dgraph/attr"
	"github.com/katalvlaran/dgraph/graph"
)

func weightOf(e *graph.Edge[attr.Empty, attr.Weight[int]]) float64 {
	return float64(e.Attr.Value)
}

func TestDijkstraShortestPath(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{})
	add := func(u, v *graph.Vertex[attr.Empty], w int) {
		if _, err := g.AddEdge(u, v, attr.Weight[int]{Value: w}); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	add(vs[0], vs[1], 5)
	add(vs[0], vs[2], 1)
	add(vs[2], vs[1], 1)

	dist, res, err := Dijkstra[attr.Empty, attr.Weight[int]](g, vs[0], weightOf)
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	if dist[vs[1].ID()] != 2 {
		t.Fatalf("want distance 2 via 0->2->1, got %v", dist[vs[1].ID()])
	}
	path, err := ReconstructPath(res, vs[1].ID())
	if err != nil {
		t.Fatalf("ReconstructPath: %v", err)
	}
	if len(path) != 3 || path[0] != vs[0].ID() || path[2] != vs[1].ID() {
		t.Fatalf("want path [0,2,1], got %v", path)
	}
}

func TestDijkstraRejectsNegativeWeight(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{})
	if _, err := g.AddEdge(vs[0], vs[1], attr.Weight[int]{Value: -1}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, _, err := Dijkstra[attr.Empty, attr.Weight[int]](g, vs[0], weightOf); err != ErrNegativeWeight {
		t.Fatalf("want ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstraIgnoresNegativeWeightInUnreachableComponent(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{}, attr.Empty{})
	if _, err := g.AddEdge(vs[0], vs[1], attr.Weight[int]{Value: 2}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	// vs[2]-vs[3] is a disconnected component carrying a negative-weight
	// edge; it must never be examined while searching from vs[0].
	if _, err := g.AddEdge(vs[2], vs[3], attr.Weight[int]{Value: -5}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	dist, _, err := Dijkstra[attr.Empty, attr.Weight[int]](g, vs[0], weightOf)
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	if dist[vs[1].ID()] != 2 {
		t.Fatalf("want distance 2, got %v", dist[vs[1].ID()])
	}
}

func TestPrimSpansConnectedGraph(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{})
	add := func(u, v *graph.Vertex[attr.Empty], w int) {
		if _, err := g.AddEdge(u, v, attr.Weight[int]{Value: w}); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	add(vs[0], vs[1], 3)
	add(vs[1], vs[2], 1)
	add(vs[0], vs[2], 9)

	edges, total, err := Prim[attr.Empty, attr.Weight[int]](g, vs[0], weightOf)
	if err != nil {
		t.Fatalf("Prim: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("want 2 MST edges for 3 vertices, got %d", len(edges))
	}
	if total != 4 {
		t.Fatalf("want MST weight 4 (3+1), got %v", total)
	}
}

func TestPrimDisconnectedReportsPartialForest(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{})
	if _, err := g.AddEdge(vs[0], vs[1], attr.Weight[int]{Value: 1}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	edges, _, err := Prim[attr.Empty, attr.Weight[int]](g, vs[0], weightOf)
	if err != ErrDisconnected {
		t.Fatalf("want ErrDisconnected, got %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("want the one reachable edge in the partial forest, got %d", len(edges))
	}
}

func TestPrimIgnoresNegativeWeightInUnreachableComponent(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{}, attr.Empty{})
	if _, err := g.AddEdge(vs[0], vs[1], attr.Weight[int]{Value: 3}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	// vs[2]-vs[3] is a disconnected component carrying a negative-weight
	// edge; it must never be examined while growing the tree from vs[0].
	if _, err := g.AddEdge(vs[2], vs[3], attr.Weight[int]{Value: -1}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	edges, total, err := Prim[attr.Empty, attr.Weight[int]](g, vs[0], weightOf)
	if err != ErrDisconnected {
		t.Fatalf("want ErrDisconnected for root's own component, got %v", err)
	}
	if len(edges) != 1 || total != 3 {
		t.Fatalf("want the one reachable edge (weight 3), got %d edges totaling %v", len(edges), total)
	}
}

func TestTopologicalSortOrdersDAG(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](true, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{})
	add := func(u, v *graph.Vertex[attr.Empty]) {
		if _, err := g.AddEdge(u, v, attr.NewWeight[int]()); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	add(vs[0], vs[1])
	add(vs[1], vs[2])

	order, err := TopologicalSort[attr.Empty, attr.Weight[int]](g)
	if err != nil {
		t.Fatalf("TopologicalSort: %v", err)
	}
	pos := make(map[graph.VertexID]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	if pos[vs[0].ID()] >= pos[vs[1].ID()] || pos[vs[1].ID()] >= pos[vs[2].ID()] {
		t.Fatalf("want order 0,1,2; got %v", order)
	}
}

func TestTopologicalSortDetectsCycle(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](true, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{})
	if _, err := g.AddEdge(vs[0], vs[1], attr.NewWeight[int]()); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge(vs[1], vs[0], attr.NewWeight[int]()); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := TopologicalSort[attr.Empty, attr.Weight[int]](g); err != ErrCycleDetected {
		t.Fatalf("want ErrCycleDetected, got %v", err)
	}
}

func TestScenarioTopologicalSortExtraSourcePinnedOrder(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](true, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{}, attr.Empty{}, attr.Empty{})
	add := func(u, v *graph.Vertex[attr.Empty]) {
		if _, err := g.AddEdge(u, v, attr.NewWeight[int]()); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	add(vs[0], vs[1])
	add(vs[1], vs[2])
	add(vs[2], vs[3])
	add(vs[4], vs[1])

	order, err := TopologicalSort[attr.Empty, attr.Weight[int]](g)
	if err != nil {
		t.Fatalf("TopologicalSort: %v", err)
	}
	want := []graph.VertexID{0, 4, 1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("want %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("want %v, got %v", want, order)
		}
	}
}

func TestScenarioTopologicalSortThreeCycleEmpty(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](true, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{})
	add := func(u, v *graph.Vertex[attr.Empty]) {
		if _, err := g.AddEdge(u, v, attr.NewWeight[int]()); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	add(vs[0], vs[1])
	add(vs[1], vs[2])
	add(vs[2], vs[0])

	if _, err := TopologicalSort[attr.Empty, attr.Weight[int]](g); err != ErrCycleDetected {
		t.Fatalf("want ErrCycleDetected, got %v", err)
	}
}

func TestTopologicalSortIgnoresSelfLoop(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](true, graph.ListImpl)
	v := g.AddVertex(attr.Empty{})
	if _, err := g.AddEdge(v, v, attr.NewWeight[int]()); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	order, err := TopologicalSort[attr.Empty, attr.Weight[int]](g)
	if err != nil {
		t.Fatalf("want self-loop to be ignored, got error: %v", err)
	}
	if len(order) != 1 {
		t.Fatalf("want 1 vertex in order, got %d", len(order))
	}
}

func TestBipartiteColoringDetectsOddCycle(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{})
	add := func(u, v *graph.Vertex[attr.Empty]) {
		if _, err := g.AddEdge(u, v, attr.NewWeight[int]()); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	add(vs[0], vs[1])
	add(vs[1], vs[2])
	add(vs[2], vs[0])

	if ok, err := IsBipartite[attr.Empty, attr.Weight[int]](g); err != nil || ok {
		t.Fatalf("triangle should not be bipartite, got ok=%v err=%v", ok, err)
	}
}

func TestBipartiteColoringIgnoresSelfLoop(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	v := g.AddVertex(attr.Empty{})
	if _, err := g.AddEdge(v, v, attr.NewWeight[int]()); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if ok, err := IsBipartite[attr.Empty, attr.Weight[int]](g); err != nil || !ok {
		t.Fatalf("a self-loop alone must not make a graph non-bipartite, got ok=%v err=%v", ok, err)
	}
}

func TestBipartiteColoringSquare(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Weight[int]](false, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{}, attr.Empty{})
	add := func(u, v *graph.Vertex[attr.Empty]) {
		if _, err := g.AddEdge(u, v, attr.NewWeight[int]()); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	add(vs[0], vs[1])
	add(vs[1], vs[2])
	add(vs[2], vs[3])
	add(vs[3], vs[0])

	colors, err := BipartiteColoring[attr.Empty, attr.Weight[int]](g)
	if err != nil {
		t.Fatalf("square should be bipartite: %v", err)
	}
	if colors[vs[0].ID()] == colors[vs[1].ID()] {
		t.Fatalf("adjacent vertices must differ in color")
	}
}

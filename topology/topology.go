// Package topology builds graphs with a fixed, well-known shape: cliques,
// bicliques, cycles, paths and regular binary trees. Each constructor adds
// vertices and edges in a deterministic, documented order so the result is
// reproducible for a given (n, attribute function) input.
package topology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dgraph/graph"
)

// ErrTooFewVertices is returned when a constructor's vertex count does not
// meet the shape's minimum (a clique needs n>=1, a cycle n>=3, etc).
var ErrTooFewVertices = errors.New("topology: too few vertices for this shape")

// VertexAttrFunc produces the attribute record for vertex index i.
type VertexAttrFunc[V any] func(i int) V

// EdgeAttrFunc produces the attribute record for the edge from index i to
// index j.
type EdgeAttrFunc[V any, E any] func(i, j int) E

func newGraph[V any, E any](n int, directed bool, impl graph.Implementation, vattr VertexAttrFunc[V]) (*graph.Graph[V, E], []*graph.Vertex[V]) {
	g := graph.NewGraph[V, E](directed, impl)
	attrs := make([]V, n)
	for i := 0; i < n; i++ {
		attrs[i] = vattr(i)
	}

	return g, g.AddVertices(attrs...)
}

// Clique returns the complete graph K_n: every unordered pair {i, j},
// i<j, is visited in lexicographic (i, j) order and joined by the edge
// i->j; a directed graph also gets j->i right after it.
func Clique[V any, E any](n int, directed bool, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E]) (*graph.Graph[V, E], error) {
	if n < 1 {
		return nil, fmt.Errorf("topology: Clique n=%d: %w", n, ErrTooFewVertices)
	}
	g, vs := newGraph[V, E](n, directed, impl, vattr)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(vs[i], vs[j], eattr(i, j)); err != nil {
				return nil, fmt.Errorf("topology: Clique AddEdge(%d,%d): %w", i, j, err)
			}
			if directed {
				if _, err := g.AddEdge(vs[j], vs[i], eattr(j, i)); err != nil {
					return nil, fmt.Errorf("topology: Clique AddEdge(%d,%d): %w", j, i, err)
				}
			}
		}
	}

	return g, nil
}

// Biclique returns the complete bipartite graph K_{n1,n2}: side A holds
// indices [0, n1), side B holds indices [n1, n1+n2); every A-B pair is
// visited in row-major (a, b) order and joined by the edge a->b; a
// directed graph also gets b->a right after it.
func Biclique[V any, E any](n1, n2 int, directed bool, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E]) (*graph.Graph[V, E], error) {
	if n1 < 1 || n2 < 1 {
		return nil, fmt.Errorf("topology: Biclique n1=%d n2=%d: %w", n1, n2, ErrTooFewVertices)
	}
	g, vs := newGraph[V, E](n1+n2, directed, impl, vattr)
	for a := 0; a < n1; a++ {
		for b := n1; b < n1+n2; b++ {
			if _, err := g.AddEdge(vs[a], vs[b], eattr(a, b)); err != nil {
				return nil, fmt.Errorf("topology: Biclique AddEdge(%d,%d): %w", a, b, err)
			}
			if directed {
				if _, err := g.AddEdge(vs[b], vs[a], eattr(b, a)); err != nil {
					return nil, fmt.Errorf("topology: Biclique AddEdge(%d,%d): %w", b, a, err)
				}
			}
		}
	}

	return g, nil
}

// Cycle returns the n-vertex cycle C_n: edges i -> (i+1)%n for i=0..n-1,
// each added once (the graph's own directed/undirected policy governs
// traversal from either endpoint).
func Cycle[V any, E any](n int, directed bool, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E]) (*graph.Graph[V, E], error) {
	return cycle(n, directed, impl, vattr, eattr, false)
}

// BidirectionalCycle returns C_n built over a directed graph with both
// i->(i+1)%n and (i+1)%n->i added explicitly, so every step is traversable
// in either direction even though the backing graph is directed.
func BidirectionalCycle[V any, E any](n int, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E]) (*graph.Graph[V, E], error) {
	return cycle(n, true, impl, vattr, eattr, true)
}

func cycle[V any, E any](n int, directed bool, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E], bidirectional bool) (*graph.Graph[V, E], error) {
	const minCycleNodes = 3
	if n < minCycleNodes {
		return nil, fmt.Errorf("topology: Cycle n=%d: %w", n, ErrTooFewVertices)
	}
	g, vs := newGraph[V, E](n, directed, impl, vattr)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if _, err := g.AddEdge(vs[i], vs[j], eattr(i, j)); err != nil {
			return nil, fmt.Errorf("topology: Cycle AddEdge(%d,%d): %w", i, j, err)
		}
		if bidirectional {
			if _, err := g.AddEdge(vs[j], vs[i], eattr(j, i)); err != nil {
				return nil, fmt.Errorf("topology: Cycle AddEdge(%d,%d): %w", j, i, err)
			}
		}
	}

	return g, nil
}

// Path returns the n-vertex path P_n: edges (i-1) -> i for i=1..n-1.
func Path[V any, E any](n int, directed bool, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E]) (*graph.Graph[V, E], error) {
	return path(n, directed, impl, vattr, eattr, false)
}

// BidirectionalPath returns P_n built over a directed graph with both
// (i-1)->i and i->(i-1) added explicitly.
func BidirectionalPath[V any, E any](n int, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E]) (*graph.Graph[V, E], error) {
	return path(n, true, impl, vattr, eattr, true)
}

func path[V any, E any](n int, directed bool, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E], bidirectional bool) (*graph.Graph[V, E], error) {
	const minPathNodes = 2
	if n < minPathNodes {
		return nil, fmt.Errorf("topology: Path n=%d: %w", n, ErrTooFewVertices)
	}
	g, vs := newGraph[V, E](n, directed, impl, vattr)
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(vs[i-1], vs[i], eattr(i-1, i)); err != nil {
			return nil, fmt.Errorf("topology: Path AddEdge(%d,%d): %w", i-1, i, err)
		}
		if bidirectional {
			if _, err := g.AddEdge(vs[i], vs[i-1], eattr(i, i-1)); err != nil {
				return nil, fmt.Errorf("topology: Path AddEdge(%d,%d): %w", i, i-1, err)
			}
		}
	}

	return g, nil
}

// BinaryTree returns a complete regular binary tree of the given depth:
// n = 2^depth - 1 vertices, with every internal vertex i (the first
// n - 2^(depth-1) ids) gaining children 2i+1 and 2i+2. For depth < 2
// there are no internal vertices to wire: the result is a graph of
// exactly `depth` isolated vertices (0 for depth=0, 1 for depth=1).
func BinaryTree[V any, E any](depth int, directed bool, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E]) (*graph.Graph[V, E], error) {
	return binaryTree(depth, directed, impl, vattr, eattr, false)
}

// BidirectionalBinaryTree returns BinaryTree built over a directed graph
// with both parent->child and child->parent edges added explicitly.
func BidirectionalBinaryTree[V any, E any](depth int, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E]) (*graph.Graph[V, E], error) {
	return binaryTree(depth, true, impl, vattr, eattr, true)
}

func binaryTree[V any, E any](depth int, directed bool, impl graph.Implementation, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[V, E], bidirectional bool) (*graph.Graph[V, E], error) {
	if depth < 0 {
		return nil, fmt.Errorf("topology: BinaryTree depth=%d: %w", depth, ErrTooFewVertices)
	}
	if depth < 2 {
		g, _ := newGraph[V, E](depth, directed, impl, vattr)

		return g, nil
	}

	n := (1 << uint(depth)) - 1
	internal := n - (1 << uint(depth-1))
	g, vs := newGraph[V, E](n, directed, impl, vattr)
	for i := 0; i < internal; i++ {
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if _, err := g.AddEdge(vs[i], vs[child], eattr(i, child)); err != nil {
				return nil, fmt.Errorf("topology: BinaryTree AddEdge(%d,%d): %w", i, child, err)
			}
			if bidirectional {
				if _, err := g.AddEdge(vs[child], vs[i], eattr(child, i)); err != nil {
					return nil, fmt.Errorf("topology: BinaryTree AddEdge(%d,%d): %w", child, i, err)
				}
			}
		}
	}

	return g, nil
}

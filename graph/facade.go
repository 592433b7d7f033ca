package graph

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/dgraph/gconf"
)

// Implementation selects which backend a Graph stores its edges in.
type Implementation int

const (
	// ListImpl stores edges in a per-vertex adjacency list: O(1)
	// amortized AddEdge, supports parallel edges, O(degree) lookups.
	ListImpl Implementation = iota
	// MatrixImpl stores edges in a dense N×N adjacency matrix: O(1)
	// lookups, at most one edge per ordered endpoint pair, O(n)
	// AddVertex.
	MatrixImpl
)

// Graph is a directed or undirected graph over vertex attribute type V and
// edge attribute type E, backed by either ListImpl or MatrixImpl storage.
// See the package doc comment for the identity and concurrency model.
type Graph[V any, E any] struct {
	policy   directionPolicy
	backend  backend[V, E]
	vertices []*Vertex[V]
	cfg      gconf.Config
}

// NewGraph constructs an empty Graph. directed selects directedPolicy or
// undirectedPolicy; impl selects the storage backend.
func NewGraph[V any, E any](directed bool, impl Implementation, opts ...gconf.Option) *Graph[V, E] {
	cfg := gconf.New(opts...)

	var policy directionPolicy
	if directed {
		policy = directedPolicy{}
	} else {
		policy = undirectedPolicy{}
	}

	var be backend[V, E]
	switch impl {
	case MatrixImpl:
		be = newMatrixBackend[V, E](policy)
	default:
		be = newListBackend[V, E](policy)
	}

	return &Graph[V, E]{policy: policy, backend: be, cfg: cfg}
}

// Directed reports whether g is a directed graph.
func (g *Graph[V, E]) Directed() bool { return g.policy.directed() }

// NVertices returns the current number of vertices.
func (g *Graph[V, E]) NVertices() int { return len(g.vertices) }

// NUniqueEdges returns the number of distinct logical edges stored. A
// reciprocal undirected edge, or a matrix cell and its mirror, count once.
func (g *Graph[V, E]) NUniqueEdges() int { return g.backend.nUniqueEdges() }

// Vertices returns every vertex currently in the graph, in id order. The
// returned slice is a fresh copy; mutating it does not affect the graph.
func (g *Graph[V, E]) Vertices() []*Vertex[V] {
	out := make([]*Vertex[V], len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexByID returns the vertex currently holding id. Returns
// ErrOutOfRange if id is outside [0, NVertices()).
func (g *Graph[V, E]) VertexByID(id VertexID) (*Vertex[V], error) {
	if id < 0 || id >= len(g.vertices) {
		return nil, ErrOutOfRange
	}

	return g.vertices[id], nil
}

// owns reports whether v is a live vertex of g, i.e. not a stale handle
// from another graph or from before a removal.
func (g *Graph[V, E]) owns(v *Vertex[V]) bool {
	return v != nil && v.id >= 0 && v.id < len(g.vertices) && g.vertices[v.id] == v
}

// AddVertex adds one vertex carrying attr and returns it.
func (g *Graph[V, E]) AddVertex(attr V) *Vertex[V] {
	v := &Vertex[V]{id: len(g.vertices), Attr: attr}
	g.vertices = append(g.vertices, v)
	g.backend.addVertex()

	return v
}

// AddVertices adds one vertex per element of attrs, in order, and returns
// the new vertices in the same order.
func (g *Graph[V, E]) AddVertices(attrs ...V) []*Vertex[V] {
	out := make([]*Vertex[V], len(attrs))
	base := len(g.vertices)
	for i, attr := range attrs {
		v := &Vertex[V]{id: base + i, Attr: attr}
		g.vertices = append(g.vertices, v)
		out[i] = v
	}
	g.backend.addVertices(len(attrs))

	return out
}

// RemoveVertex removes v and every edge incident to it. Every surviving
// vertex with a higher id has its id decremented by one; their addresses
// are unaffected. Returns ErrInvalidReference if v is not owned by g.
func (g *Graph[V, E]) RemoveVertex(v *Vertex[V]) error {
	if !g.owns(v) {
		return ErrInvalidReference
	}
	id := v.id
	g.backend.removeVertex(id, v)
	g.vertices = append(g.vertices[:id], g.vertices[id+1:]...)
	for i := id; i < len(g.vertices); i++ {
		g.vertices[i].id = i
	}

	return nil
}

// RemoveVerticesFrom removes every vertex in vs. Vertices are removed
// highest-id first so that each removal's renumbering never invalidates a
// still-pending removal. Duplicate entries are removed once. Returns the
// first ErrInvalidReference encountered, if any vertex is not owned by g;
// the vertices preceding it in removal order are still removed.
func (g *Graph[V, E]) RemoveVerticesFrom(vs ...*Vertex[V]) error {
	seen := make(map[*Vertex[V]]struct{}, len(vs))
	ordered := make([]*Vertex[V], 0, len(vs))
	for _, v := range vs {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		ordered = append(ordered, v)
	}
	slices.SortFunc(ordered, func(a, b *Vertex[V]) int {
		return idOf(b) - idOf(a)
	})
	for _, v := range ordered {
		if err := g.RemoveVertex(v); err != nil {
			return err
		}
	}

	return nil
}

func idOf[V any](v *Vertex[V]) VertexID {
	if v == nil {
		return -1
	}

	return v.id
}

// AddEdge adds an edge from u to v carrying attr and returns it. Returns
// ErrInvalidReference if either endpoint is not owned by g, or
// ErrEdgeConflict if g uses MatrixImpl and a u-to-v edge already exists.
func (g *Graph[V, E]) AddEdge(u, v *Vertex[V], attr E) (*Edge[V, E], error) {
	if !g.owns(u) || !g.owns(v) {
		return nil, ErrInvalidReference
	}
	e := &Edge[V, E]{first: u, second: v, Attr: attr}
	if err := g.backend.addEdge(e); err != nil {
		return nil, err
	}

	return e, nil
}

// EdgeSpec describes one edge to add via AddEdgesFrom.
type EdgeSpec[V any, E any] struct {
	From, To *Vertex[V]
	Attr     E
}

// AddEdgesFrom adds every edge in specs, in order. On the first error it
// stops and returns the edges successfully added so far along with that
// error; the caller may inspect len(result) to see how far it got.
func (g *Graph[V, E]) AddEdgesFrom(specs ...EdgeSpec[V, E]) ([]*Edge[V, E], error) {
	out := make([]*Edge[V, E], 0, len(specs))
	for _, s := range specs {
		e, err := g.AddEdge(s.From, s.To, s.Attr)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}

	return out, nil
}

// RemoveEdge removes e by identity. Returns ErrInvalidReference if e is
// nil or either endpoint is not owned by g, or ErrEdgeNotFound if no
// stored edge has e's identity.
func (g *Graph[V, E]) RemoveEdge(e *Edge[V, E]) error {
	if e == nil || !g.owns(e.first) || !g.owns(e.second) {
		return ErrInvalidReference
	}

	return g.backend.removeEdge(e)
}

// HasEdge reports whether an edge from u to v exists.
func (g *Graph[V, E]) HasEdge(u, v *Vertex[V]) bool {
	if !g.owns(u) || !g.owns(v) {
		return false
	}

	return g.backend.hasEdge(u.id, v.id)
}

// GetEdge returns the first (ListImpl) or only (MatrixImpl) edge from u
// to v, if one exists.
func (g *Graph[V, E]) GetEdge(u, v *Vertex[V]) (*Edge[V, E], bool) {
	if !g.owns(u) || !g.owns(v) {
		return nil, false
	}

	return g.backend.getEdge(u.id, v.id)
}

// GetEdges returns every edge from u to v. Only ListImpl can hold more
// than one.
func (g *Graph[V, E]) GetEdges(u, v *Vertex[V]) []*Edge[V, E] {
	if !g.owns(u) || !g.owns(v) {
		return nil
	}

	return g.backend.getEdges(u.id, v.id)
}

// AdjacentEdges returns a lazy range over the edges incident to v.
func (g *Graph[V, E]) AdjacentEdges(v *Vertex[V]) EdgeRange[V, E] {
	if !g.owns(v) {
		return EdgeRange[V, E]{}
	}

	return g.backend.adjacentEdges(v.id, g.cfg.CacheMode)
}

// InDegree returns the number of edges directed into v (for an undirected
// graph, this equals Degree). Returns ErrInvalidReference if v is not
// owned by g.
func (g *Graph[V, E]) InDegree(v *Vertex[V]) (int, error) {
	if !g.owns(v) {
		return 0, ErrInvalidReference
	}

	return g.backend.inDegree(v.id), nil
}

// OutDegree returns the number of edges directed out of v (for an
// undirected graph, this equals Degree). Returns ErrInvalidReference if v
// is not owned by g.
func (g *Graph[V, E]) OutDegree(v *Vertex[V]) (int, error) {
	if !g.owns(v) {
		return 0, ErrInvalidReference
	}

	return g.backend.outDegree(v.id), nil
}

// Degree returns v's degree: in+out for a directed graph, incident-edge
// count (loops counted twice) for an undirected graph. Returns
// ErrInvalidReference if v is not owned by g.
func (g *Graph[V, E]) Degree(v *Vertex[V]) (int, error) {
	if !g.owns(v) {
		return 0, ErrInvalidReference
	}

	return g.backend.degree(v.id), nil
}

// VerticesIncident reports whether u and v are the same vertex or are
// joined by at least one edge (in either direction, for a directed
// graph).
func (g *Graph[V, E]) VerticesIncident(u, v *Vertex[V]) bool {
	if u == v {
		return g.owns(u)
	}

	return g.HasEdge(u, v) || (g.policy.directed() && g.HasEdge(v, u))
}

// VertexEdgeIncident reports whether v is an endpoint of e.
func (g *Graph[V, E]) VertexEdgeIncident(v *Vertex[V], e *Edge[V, E]) bool {
	return e != nil && (e.first == v || e.second == v)
}

// EdgesIncident reports whether e1 and e2 share at least one endpoint.
func (g *Graph[V, E]) EdgesIncident(e1, e2 *Edge[V, E]) bool {
	if e1 == nil || e2 == nil {
		return false
	}

	return e1.first == e2.first || e1.first == e2.second ||
		e1.second == e2.first || e1.second == e2.second
}

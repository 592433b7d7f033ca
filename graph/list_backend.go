package graph

import "github.com/katalvlaran/dgraph/gconf"

// listBackend stores, per vertex id, the ordered sequence of edges owned
// (or, for undirected non-loop edges, shared) by that vertex. Edge
// enumeration within a vertex follows insertion order.
type listBackend[V any, E any] struct {
	policy directionPolicy
	lists  [][]*Edge[V, E]
	nEdges int
}

func newListBackend[V any, E any](policy directionPolicy) *listBackend[V, E] {
	return &listBackend[V, E]{policy: policy}
}

func (b *listBackend[V, E]) addVertex() {
	b.lists = append(b.lists, nil)
}

func (b *listBackend[V, E]) addVertices(k int) {
	for i := 0; i < k; i++ {
		b.lists = append(b.lists, nil)
	}
}

func (b *listBackend[V, E]) nUniqueEdges() int { return b.nEdges }

// removeVertex: directed scans every other list and drops each edge
// whose second endpoint is the removed vertex; undirected first computes
// the set of vertices incident with v (via v's own list, skipping loops
// since those vanish with v's list anyway), then scans only those lists.
func (b *listBackend[V, E]) removeVertex(id VertexID, vertexRef *Vertex[V]) {
	if b.policy.directed() {
		for i := range b.lists {
			if i == id || len(b.lists[i]) == 0 {
				continue
			}
			before := len(b.lists[i])
			b.lists[i] = filterEdges(b.lists[i], func(e *Edge[V, E]) bool {
				return e.second != vertexRef
			})
			b.nEdges -= before - len(b.lists[i])
		}
	} else {
		incident := make(map[VertexID]struct{})
		for _, e := range b.lists[id] {
			if e.IsLoop() {
				continue
			}
			incident[e.IncidentVertex(vertexRef).id] = struct{}{}
		}
		for otherID := range incident {
			b.lists[otherID] = filterEdges(b.lists[otherID], func(e *Edge[V, E]) bool {
				return e.first != vertexRef && e.second != vertexRef
			})
		}
	}

	b.nEdges -= len(b.lists[id])
	b.lists = append(b.lists[:id], b.lists[id+1:]...)
}

func filterEdges[V any, E any](in []*Edge[V, E], keep func(*Edge[V, E]) bool) []*Edge[V, E] {
	out := in[:0]
	for _, e := range in {
		if keep(e) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

func (b *listBackend[V, E]) addEdge(e *Edge[V, E]) error {
	fid := e.first.id
	b.lists[fid] = append(b.lists[fid], e)
	if b.policy.storeReciprocal() && !e.IsLoop() {
		sid := e.second.id
		b.lists[sid] = append(b.lists[sid], e)
	}
	b.nEdges++

	return nil
}

func (b *listBackend[V, E]) removeEdge(e *Edge[V, E]) error {
	fid := e.first.id
	idx := findEdgeIndex(b.lists[fid], e)
	if idx < 0 {
		return ErrEdgeNotFound
	}
	b.lists[fid] = append(b.lists[fid][:idx], b.lists[fid][idx+1:]...)

	if b.policy.storeReciprocal() && !e.IsLoop() {
		sid := e.second.id
		if idx2 := findEdgeIndex(b.lists[sid], e); idx2 >= 0 {
			b.lists[sid] = append(b.lists[sid][:idx2], b.lists[sid][idx2+1:]...)
		}
	}
	b.nEdges--

	return nil
}

func findEdgeIndex[V any, E any](list []*Edge[V, E], e *Edge[V, E]) int {
	for i, cand := range list {
		if cand == e {
			return i
		}
	}

	return -1
}

// edgeMatches reports whether e connects u to v in the direction the
// caller asked about. Directed edges are stored only under first, so a
// plain second.id == v check would do, but undirected edges are stored
// verbatim (first/second unchanged) under both endpoints' lists, so the
// "other" endpoint seen from u may sit in either field.
func (b *listBackend[V, E]) edgeMatches(e *Edge[V, E], u, v VertexID) bool {
	if b.policy.directed() {
		return e.first.id == u && e.second.id == v
	}

	return (e.first.id == u && e.second.id == v) || (e.first.id == v && e.second.id == u)
}

func (b *listBackend[V, E]) hasEdge(u, v VertexID) bool {
	for _, e := range b.lists[u] {
		if b.edgeMatches(e, u, v) {
			return true
		}
	}

	return false
}

func (b *listBackend[V, E]) getEdge(u, v VertexID) (*Edge[V, E], bool) {
	for _, e := range b.lists[u] {
		if b.edgeMatches(e, u, v) {
			return e, true
		}
	}

	return nil, false
}

func (b *listBackend[V, E]) getEdges(u, v VertexID) []*Edge[V, E] {
	var out []*Edge[V, E]
	for _, e := range b.lists[u] {
		if b.edgeMatches(e, u, v) {
			out = append(out, e)
		}
	}

	return out
}

func (b *listBackend[V, E]) adjacentEdges(v VertexID, mode gconf.CacheMode) EdgeRange[V, E] {
	snapshot := make([]*Edge[V, E], len(b.lists[v]))
	copy(snapshot, b.lists[v])

	return newEdgeRange[V, E](snapshot, mode)
}

func (b *listBackend[V, E]) inDegree(v VertexID) int {
	if !b.policy.directed() {
		return b.degree(v)
	}
	count := 0
	for id := range b.lists {
		for _, e := range b.lists[id] {
			if e.second.id == v {
				count++
			}
		}
	}

	return count
}

func (b *listBackend[V, E]) outDegree(v VertexID) int {
	if !b.policy.directed() {
		return b.degree(v)
	}

	return len(b.lists[v])
}

func (b *listBackend[V, E]) degree(v VertexID) int {
	if b.policy.directed() {
		return b.policy.degree(b.inDegree(v), b.outDegree(v))
	}
	d := 0
	for _, e := range b.lists[v] {
		d++
		if e.IsLoop() {
			d++
		}
	}

	return d
}

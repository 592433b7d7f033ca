package graph

import "github.com/katalvlaran/dgraph/gconf"

// matrixBackend stores at most one edge per ordered endpoint pair in a
// dense N×N grid of optional owning cells.
type matrixBackend[V any, E any] struct {
	policy directionPolicy
	cells  [][]*Edge[V, E]
	nEdges int
}

func newMatrixBackend[V any, E any](policy directionPolicy) *matrixBackend[V, E] {
	return &matrixBackend[V, E]{policy: policy}
}

func (b *matrixBackend[V, E]) addVertex() {
	n := len(b.cells)
	for i := range b.cells {
		b.cells[i] = append(b.cells[i], nil)
	}
	b.cells = append(b.cells, make([]*Edge[V, E], n+1))
}

func (b *matrixBackend[V, E]) addVertices(k int) {
	for i := 0; i < k; i++ {
		b.addVertex()
	}
}

func (b *matrixBackend[V, E]) nUniqueEdges() int { return b.nEdges }

// removeVertex: directed subtracts the row's out-edge count, erases the
// row, then subtracts each remaining row's column entry (distinct
// in-edges); undirected subtracts the row's incident-edge count once and
// erases the mirrored column cells with no second decrement, since those
// are the same logical edges.
func (b *matrixBackend[V, E]) removeVertex(id VertexID, _ *Vertex[V]) {
	rowCount := 0
	for _, e := range b.cells[id] {
		if e != nil {
			rowCount++
		}
	}
	b.nEdges -= rowCount
	b.cells = append(b.cells[:id], b.cells[id+1:]...)

	if b.policy.directed() {
		for i := range b.cells {
			if b.cells[i][id] != nil {
				b.nEdges--
			}
			b.cells[i] = append(b.cells[i][:id], b.cells[i][id+1:]...)
		}
	} else {
		for i := range b.cells {
			b.cells[i] = append(b.cells[i][:id], b.cells[i][id+1:]...)
		}
	}
}

func (b *matrixBackend[V, E]) addEdge(e *Edge[V, E]) error {
	fid, sid := e.first.id, e.second.id
	if b.cells[fid][sid] != nil {
		return ErrEdgeConflict
	}
	b.cells[fid][sid] = e
	if !b.policy.directed() && !e.IsLoop() {
		b.cells[sid][fid] = e
	}
	b.nEdges++

	return nil
}

func (b *matrixBackend[V, E]) removeEdge(e *Edge[V, E]) error {
	fid, sid := e.first.id, e.second.id
	if b.cells[fid][sid] != e {
		return ErrEdgeNotFound
	}
	b.cells[fid][sid] = nil
	if !b.policy.directed() && !e.IsLoop() {
		b.cells[sid][fid] = nil
	}
	b.nEdges--

	return nil
}

func (b *matrixBackend[V, E]) hasEdge(u, v VertexID) bool {
	return b.cells[u][v] != nil
}

func (b *matrixBackend[V, E]) getEdge(u, v VertexID) (*Edge[V, E], bool) {
	e := b.cells[u][v]

	return e, e != nil
}

// getEdges returns 0 or 1 edges: multi-edges are structurally impossible
// in the matrix backend.
func (b *matrixBackend[V, E]) getEdges(u, v VertexID) []*Edge[V, E] {
	if e := b.cells[u][v]; e != nil {
		return []*Edge[V, E]{e}
	}

	return nil
}

func (b *matrixBackend[V, E]) adjacentEdges(v VertexID, mode gconf.CacheMode) EdgeRange[V, E] {
	var snapshot []*Edge[V, E]
	for _, e := range b.cells[v] {
		if e != nil {
			snapshot = append(snapshot, e)
		}
	}

	return newEdgeRange[V, E](snapshot, mode)
}

func (b *matrixBackend[V, E]) inDegree(v VertexID) int {
	if !b.policy.directed() {
		return b.degree(v)
	}
	count := 0
	for i := range b.cells {
		if b.cells[i][v] != nil {
			count++
		}
	}

	return count
}

func (b *matrixBackend[V, E]) outDegree(v VertexID) int {
	if !b.policy.directed() {
		return b.degree(v)
	}
	count := 0
	for _, e := range b.cells[v] {
		if e != nil {
			count++
		}
	}

	return count
}

func (b *matrixBackend[V, E]) degree(v VertexID) int {
	if b.policy.directed() {
		return b.policy.degree(b.inDegree(v), b.outDegree(v))
	}
	d := 0
	for _, e := range b.cells[v] {
		if e != nil {
			d++
			if e.IsLoop() {
				d++
			}
		}
	}

	return d
}

package graph

import "github.com/katalvlaran/dgraph/gconf"

// backend is the storage capability the graph facade composes with a
// directionPolicy: an adjacency list or an adjacency matrix. Both
// implementations are driven entirely by the facade; algorithms never
// call a backend directly.
type backend[V any, E any] interface {
	// addVertex grows the backend by one empty vertex slot.
	addVertex()

	// addVertices grows the backend by k empty vertex slots.
	addVertices(k int)

	// removeVertex drops vertex id and every edge incident to it,
	// maintaining nUniqueEdges. vertexRef is the *Vertex[V] being
	// removed, needed by the list backend's is_incident_with checks.
	removeVertex(id VertexID, vertexRef *Vertex[V])

	// nUniqueEdges returns the number of distinct logical edges stored.
	nUniqueEdges() int

	// addEdge stores e, failing with ErrEdgeConflict if the matrix
	// backend already holds an edge for e's ordered endpoint pair.
	addEdge(e *Edge[V, E]) error

	// removeEdge removes e by object identity, failing with
	// ErrEdgeNotFound if no stored edge has that identity.
	removeEdge(e *Edge[V, E]) error

	// hasEdge reports whether any edge from u to v is stored.
	hasEdge(u, v VertexID) bool

	// getEdge returns the first (list backend) or the only (matrix
	// backend) edge from u to v.
	getEdge(u, v VertexID) (*Edge[V, E], bool)

	// getEdges returns every edge from u to v (multiple only possible
	// in the list backend).
	getEdges(u, v VertexID) []*Edge[V, E]

	// adjacentEdges returns a lazy range over the edges incident to v.
	adjacentEdges(v VertexID, mode gconf.CacheMode) EdgeRange[V, E]

	// inDegree, outDegree, degree report the requested degree of v.
	inDegree(v VertexID) int
	outDegree(v VertexID) int
	degree(v VertexID) int
}

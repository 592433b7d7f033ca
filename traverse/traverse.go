// Package traverse provides the shared breadth-first, depth-first and
// priority-first search kernels every higher-level graph algorithm builds
// on. Every kernel shares the same callback contract: an enqueue predicate
// decides whether a discovered vertex is explored at all, and pre/post
// visit hooks observe (and may abort) the walk.
package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dgraph/graph"
)

// Sentinel errors returned by the kernels in this package.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed in.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartInvalid is returned when the frontier is empty, or a start
	// vertex is nil or has an id outside [0, NVertices()). The kernels do
	// not check that the start vertex is the graph's own vertex object.
	ErrStartInvalid = errors.New("traverse: start vertex is not owned by this graph")

	// ErrUnreachable is returned by Result.PathTo when dest was never
	// reached during the walk, i.e. it has no recorded depth.
	ErrUnreachable = errors.New("traverse: vertex has no predecessor")
)

// EnqueueDecision is the tri-state result of an EnqueuePredicate: a
// discovered vertex is explored, silently skipped, or the whole walk is
// aborted.
type EnqueueDecision int

const (
	// EnqueueVisit explores the discovered vertex normally.
	EnqueueVisit EnqueueDecision = iota
	// EnqueueSkip silently drops the discovered vertex for this edge
	// only; it is not queued via this edge, but may still be queued and
	// visited via another edge.
	EnqueueSkip
	// EnqueueAbort stops the walk immediately with ErrAborted.
	EnqueueAbort
)

// ErrAborted is returned when an EnqueuePredicate returns EnqueueAbort.
var ErrAborted = errors.New("traverse: walk aborted by enqueue predicate")

// VertexInfo is one seed entry in a kernel's initial frontier: the vertex
// to begin exploring from, its starting depth (or, for PFS, its starting
// priority), and the predecessor to record for it, if any. Passing more
// than one VertexInfo to a *Frontier kernel seeds a single walk from
// multiple roots at once, e.g. topological sort seeding every
// in-degree-zero vertex simultaneously.
type VertexInfo[V any] struct {
	Vertex    *graph.Vertex[V]
	Depth     int
	Parent    graph.VertexID
	HasParent bool
}

// Result is the outcome of a BFS, DFS or PFS walk: the visit order, each
// visited vertex's depth (BFS/DFS) or visit rank (PFS; the best-known
// priorities are returned separately), and the predecessor tree edge
// used to first reach it.
type Result struct {
	Order  []graph.VertexID
	Depth  map[graph.VertexID]int
	Parent map[graph.VertexID]graph.VertexID

	// PostOrder is populated only by DFSRecursive: each vertex id,
	// appended as the recursive call over it returns. On a tree this is
	// the reverse of Order.
	PostOrder []graph.VertexID
}

// newResult allocates a Result sized for n vertices.
func newResult(n int) *Result {
	return &Result{
		Order:  make([]graph.VertexID, 0, n),
		Depth:  make(map[graph.VertexID]int, n),
		Parent: make(map[graph.VertexID]graph.VertexID, n),
	}
}

// PathTo reconstructs the path from the walk's start vertex to dest,
// following Parent links. Returns an error if dest was never visited.
func (r *Result) PathTo(dest graph.VertexID) ([]graph.VertexID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: vertex %d", ErrUnreachable, dest)
	}
	path := []graph.VertexID{dest}
	cur := dest
	for {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Options configures a BFS, DFS or PFS walk over a Graph[V, E].
type Options[V any, E any] struct {
	// Ctx allows cancellation of a long-running walk.
	Ctx context.Context

	// VisitPredicate gates whether a dequeued vertex is visited at all:
	// returning false skips the vertex for this dequeue without visiting
	// it or exploring its neighbors. A nil predicate visits every
	// dequeued vertex; the "not yet visited" dedup gate applies either
	// way.
	VisitPredicate func(id graph.VertexID) bool

	// EnqueuePredicate decides, for the edge from -e-> to, whether to is
	// explored. A nil predicate explores every undiscovered vertex.
	EnqueuePredicate func(from graph.VertexID, e *graph.Edge[V, E], to graph.VertexID) EnqueueDecision

	// OnEnqueue, if set, is called once per visited vertex, before
	// OnVisit. BFS calls it when the vertex is first discovered and
	// queued; DFSIterative, DFSRecursive and PFS call it when the vertex
	// is taken off the frontier to be visited.
	OnEnqueue func(id graph.VertexID, depth int)

	// OnVisit, if set, is called when a vertex is popped off the
	// frontier. Returning an error aborts the walk with that error.
	OnVisit func(id graph.VertexID, depth int) error

	// OnPostVisit, if set, is called by DFSRecursive after a vertex's
	// subtree has been fully explored. BFS and DFSIterative never call
	// it: they have no notion of "after the subtree returns".
	OnPostVisit func(id graph.VertexID, depth int)

	// MaxDepth, if > 0, stops discovery beyond this depth (BFS/DFS only).
	MaxDepth int
}

// Option configures an Options[V, E] via functional options.
type Option[V any, E any] func(*Options[V, E])

func defaultOptions[V any, E any]() Options[V, E] {
	return Options[V, E]{Ctx: context.Background()}
}

// WithContext sets a cancellation context for the walk.
func WithContext[V any, E any](ctx context.Context) Option[V, E] {
	return func(o *Options[V, E]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisitPredicate sets the visit-gating predicate.
func WithVisitPredicate[V any, E any](fn func(id graph.VertexID) bool) Option[V, E] {
	return func(o *Options[V, E]) { o.VisitPredicate = fn }
}

// WithEnqueuePredicate sets the tri-state enqueue predicate.
func WithEnqueuePredicate[V any, E any](fn func(from graph.VertexID, e *graph.Edge[V, E], to graph.VertexID) EnqueueDecision) Option[V, E] {
	return func(o *Options[V, E]) { o.EnqueuePredicate = fn }
}

// WithOnEnqueue registers the OnEnqueue callback (see Options.OnEnqueue
// for when each kernel fires it).
func WithOnEnqueue[V any, E any](fn func(id graph.VertexID, depth int)) Option[V, E] {
	return func(o *Options[V, E]) { o.OnEnqueue = fn }
}

// WithOnVisit registers a callback fired when a vertex is visited.
func WithOnVisit[V any, E any](fn func(id graph.VertexID, depth int) error) Option[V, E] {
	return func(o *Options[V, E]) { o.OnVisit = fn }
}

// WithMaxDepth bounds discovery to depth d (BFS/DFS only). d <= 0 means
// unbounded.
func WithMaxDepth[V any, E any](d int) Option[V, E] {
	return func(o *Options[V, E]) { o.MaxDepth = d }
}

// WithOnPostVisit registers DFSRecursive's post-visit hook.
func WithOnPostVisit[V any, E any](fn func(id graph.VertexID, depth int)) Option[V, E] {
	return func(o *Options[V, E]) { o.OnPostVisit = fn }
}

// decide applies the configured enqueue predicate, defaulting to
// EnqueueVisit when none is set.
func decide[V any, E any](o Options[V, E], from graph.VertexID, e *graph.Edge[V, E], to graph.VertexID) EnqueueDecision {
	if o.EnqueuePredicate == nil {
		return EnqueueVisit
	}

	return o.EnqueuePredicate(from, e, to)
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

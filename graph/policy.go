package graph

// directionPolicy captures everything that differs between directed and
// undirected graphs: incident-from/incident-to semantics, whether the
// list backend stores an edge reciprocally under both endpoints, and how
// degree is composed from in/out degree. It is implemented twice
// (directedPolicy, undirectedPolicy); the graph facade and both backends
// hold one and dispatch through it rather than branching on a bool
// scattered through the codebase.
type directionPolicy interface {
	// directed reports whether this is the directed policy.
	directed() bool

	// storeReciprocal reports whether the list backend must also append
	// a non-loop edge under its second endpoint's adjacency list.
	storeReciprocal() bool

	// degree composes a vertex's degree from its in- and out-degree.
	degree(in, out int) int
}

type directedPolicy struct{}

func (directedPolicy) directed() bool         { return true }
func (directedPolicy) storeReciprocal() bool  { return false }
func (directedPolicy) degree(in, out int) int { return in + out }

type undirectedPolicy struct{}

func (undirectedPolicy) directed() bool        { return false }
func (undirectedPolicy) storeReciprocal() bool { return true }
func (undirectedPolicy) degree(in, _ int) int  { return in }

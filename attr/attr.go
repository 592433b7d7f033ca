// Package attr provides the built-in vertex/edge attribute record presets:
// Empty (a zero-sized marker), Weight[T] (a single numeric field with a
// meaningful default of one), and Color (a three-valued binary coloring
// slot used by bipartite coloring).
//
// All three presets are default-constructible, copyable, and safe to embed
// by value in a graph.Vertex or graph.Edge. User-defined attribute records
// need only satisfy the same properties; nothing in this package is
// required to use graph.Graph with a custom record type.
package attr

import "golang.org/x/exp/constraints"

// Empty is the zero-sized attribute record used when a vertex or edge
// carries no user data.
type Empty struct{}

// Number is the constraint satisfied by every type usable as a Weight
// field: any signed/unsigned integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Weight is the attribute record preset for weighted edges (or vertices).
// The zero value carries a zero weight; use NewWeight for the documented
// default of one.
type Weight[T Number] struct {
	Value T
}

// NewWeight returns a Weight initialized to the preset's documented
// default of one, rather than Go's ordinary zero value.
func NewWeight[T Number]() Weight[T] {
	return Weight[T]{Value: T(1)}
}

// Color is a three-valued binary coloring slot: A, B, or Unset. Unset is
// the zero value and acts as an absorbing sentinel for Next.
type Color int8

const (
	// Unset is the zero value: no color has been assigned yet.
	Unset Color = iota
	// A is the first of the two bipartition colors.
	A
	// B is the second of the two bipartition colors.
	B
)

// NewColor constructs a Color from an integer, clamping any value outside
// {A, B} (as encoded by their constant values) to Unset rather than
// producing an invalid Color.
func NewColor(v int) Color {
	switch Color(v) {
	case A:
		return A
	case B:
		return B
	default:
		return Unset
	}
}

// IsSet reports whether the color has been assigned (A or B).
func (c Color) IsSet() bool {
	return c == A || c == B
}

// Next flips A to B and B to A. Unset is an absorbing sentinel: calling
// Next on Unset returns Unset unchanged.
func (c Color) Next() Color {
	switch c {
	case A:
		return B
	case B:
		return A
	default:
		return Unset
	}
}

// String renders the color for diagnostics and gsf attribute round-trips.
func (c Color) String() string {
	switch c {
	case A:
		return "A"
	case B:
		return "B"
	default:
		return "unset"
	}
}

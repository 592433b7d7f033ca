// Package gsf implements the generic serialization format (gsf): a
// whitespace/line-oriented text encoding for a graph.Graph, read from and
// written to any io.Reader/io.Writer rather than bound to a filesystem
// path. The wire format is a header line
// "directed n_vertices n_unique_edges with_vertex_props with_edge_props",
// followed by one property line per vertex (if with_vertex_props), then
// one "first second [properties]" line per unique edge in source-vertex
// order. A directed edge is printed by its first endpoint; an undirected
// edge is printed once, by its lower-id endpoint, with that id leading the
// record, so a mirror is never printed twice.
package gsf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/dgraph/graph"
)

// Sentinel errors returned by Load and Save.
var (
	// ErrDirectedMismatch indicates the stream's directed flag does not
	// match the directedness requested by the caller.
	ErrDirectedMismatch = errors.New("gsf: stream's directed flag does not match requested graph type")

	// ErrMalformedHeader indicates the header line could not be parsed.
	ErrMalformedHeader = errors.New("gsf: malformed header line")

	// ErrMalformedRecord indicates a vertex or edge record line could
	// not be parsed.
	ErrMalformedRecord = errors.New("gsf: malformed record line")

	// ErrCodecRequired indicates a stream claims to carry vertex or edge
	// properties but no matching encode/decode codec was supplied.
	ErrCodecRequired = errors.New("gsf: property flag set without a codec")
)

// Codec encodes and decodes a single attribute record to and from one
// text line (no embedded newlines). A nil Codec disables that side's
// properties in Save, and rejects a stream that claims to carry them in
// Load.
type Codec[T any] struct {
	Encode func(T) (string, error)
	Decode func(string) (T, error)
}

// Options configures Save and Load.
type Options[V any, E any] struct {
	VertexCodec *Codec[V]
	EdgeCodec   *Codec[E]
}

// Option configures an Options[V, E] via functional options.
type Option[V any, E any] func(*Options[V, E])

// WithVertexCodec supplies the (de)serializer for vertex attributes.
// Without one, vertex properties are never written, and a stream
// claiming to carry them fails to load with ErrCodecRequired.
func WithVertexCodec[V any, E any](c Codec[V]) Option[V, E] {
	return func(o *Options[V, E]) { o.VertexCodec = &c }
}

// WithEdgeCodec supplies the (de)serializer for edge attributes.
func WithEdgeCodec[V any, E any](c Codec[E]) Option[V, E] {
	return func(o *Options[V, E]) { o.EdgeCodec = &c }
}

// Save writes g to w in gsf format.
func Save[V any, E any](w io.Writer, g *graph.Graph[V, E], opts ...Option[V, E]) error {
	o := Options[V, E]{}
	for _, opt := range opts {
		opt(&o)
	}

	withVP := o.VertexCodec != nil
	withEP := o.EdgeCodec != nil

	directedInt := 0
	if g.Directed() {
		directedInt = 1
	}
	vpInt, epInt := 0, 0
	if withVP {
		vpInt = 1
	}
	if withEP {
		epInt = 1
	}
	if _, err := fmt.Fprintf(w, "%d %d %d %d %d\n", directedInt, g.NVertices(), g.NUniqueEdges(), vpInt, epInt); err != nil {
		return err
	}

	vertices := g.Vertices()

	if withVP {
		for _, v := range vertices {
			line, err := o.VertexCodec.Encode(v.Attr)
			if err != nil {
				return fmt.Errorf("gsf: encoding vertex %d properties: %w", v.ID(), err)
			}
			if _, err = fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	for _, v := range vertices {
		for _, e := range g.AdjacentEdges(v).All() {
			u, s := e.FirstID(), e.SecondID()
			if !g.Directed() && u > s {
				u, s = s, u // undirected records lead with the lower id
			}
			if u != v.ID() {
				continue // only the owning endpoint prints the edge
			}
			if withEP {
				line, err := o.EdgeCodec.Encode(e.Attr)
				if err != nil {
					return fmt.Errorf("gsf: encoding edge (%d,%d) properties: %w", u, s, err)
				}
				if _, err = fmt.Fprintf(w, "%d %d %s\n", u, s, line); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintf(w, "%d %d\n", u, s); err != nil {
				return err
			}
		}
	}

	return nil
}

// Load reads a gsf stream from r and builds a new graph.Graph with the
// given directedness and storage implementation. directed must match the
// stream's own directed flag, or ErrDirectedMismatch is returned.
func Load[V any, E any](r io.Reader, directed bool, impl graph.Implementation, opts ...Option[V, E]) (*graph.Graph[V, E], error) {
	o := Options[V, E]{}
	for _, opt := range opts {
		opt(&o)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty stream", ErrMalformedHeader)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 5 {
		return nil, fmt.Errorf("%w: want 5 fields, got %d", ErrMalformedHeader, len(fields))
	}
	header := make([]int, 5)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %v", ErrMalformedHeader, i, err)
		}
		header[i] = n
	}
	streamDirected, nVertices, nEdges, withVP, withEP := header[0] != 0, header[1], header[2], header[3] != 0, header[4] != 0

	if streamDirected != directed {
		return nil, ErrDirectedMismatch
	}
	if withVP && o.VertexCodec == nil {
		return nil, fmt.Errorf("%w: stream carries vertex properties", ErrCodecRequired)
	}
	if withEP && o.EdgeCodec == nil {
		return nil, fmt.Errorf("%w: stream carries edge properties", ErrCodecRequired)
	}

	g := graph.NewGraph[V, E](directed, impl)

	if withVP {
		attrs := make([]V, nVertices)
		for i := 0; i < nVertices; i++ {
			if !scanner.Scan() {
				return nil, fmt.Errorf("%w: expected %d vertex records, got %d", ErrMalformedRecord, nVertices, i)
			}
			v, err := o.VertexCodec.Decode(scanner.Text())
			if err != nil {
				return nil, fmt.Errorf("gsf: decoding vertex %d properties: %w", i, err)
			}
			attrs[i] = v
		}
		g.AddVertices(attrs...)
	} else {
		g.AddVertices(make([]V, nVertices)...)
	}

	for i := 0; i < nEdges; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("%w: expected %d edge records, got %d", ErrMalformedRecord, nEdges, i)
		}
		line := scanner.Text()
		parts := strings.SplitN(strings.TrimSpace(line), " ", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: edge record %q", ErrMalformedRecord, line)
		}
		firstID, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: edge record %q: %v", ErrMalformedRecord, line, err)
		}
		secondID, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: edge record %q: %v", ErrMalformedRecord, line, err)
		}
		u, err := g.VertexByID(firstID)
		if err != nil {
			return nil, fmt.Errorf("gsf: edge record references unknown vertex %d: %w", firstID, err)
		}
		v, err := g.VertexByID(secondID)
		if err != nil {
			return nil, fmt.Errorf("gsf: edge record references unknown vertex %d: %w", secondID, err)
		}

		var attr E
		if withEP {
			if len(parts) < 3 {
				return nil, fmt.Errorf("%w: edge record %q missing properties", ErrMalformedRecord, line)
			}
			attr, err = o.EdgeCodec.Decode(parts[2])
			if err != nil {
				return nil, fmt.Errorf("gsf: decoding edge (%d,%d) properties: %w", firstID, secondID, err)
			}
		}
		if _, err = g.AddEdge(u, v, attr); err != nil {
			return nil, fmt.Errorf("gsf: adding edge (%d,%d): %w", firstID, secondID, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

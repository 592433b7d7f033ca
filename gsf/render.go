package gsf

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dgraph/graph"
)

func edgeArrow(directed bool) string {
	if directed {
		return "->"
	}

	return "--"
}

// WriteConcise renders g as one header line ("directed|undirected
// n_vertices n_unique_edges") followed by one line per vertex listing its
// adjacent edges.
func WriteConcise[V any, E any](w io.Writer, g *graph.Graph[V, E]) error {
	kind := "undirected"
	if g.Directed() {
		kind = "directed"
	}
	if _, err := fmt.Fprintf(w, "%s %d %d\n", kind, g.NVertices(), g.NUniqueEdges()); err != nil {
		return err
	}

	arrow := edgeArrow(g.Directed())
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, "- %d :", v.ID()); err != nil {
			return err
		}
		for _, e := range g.AdjacentEdges(v).All() {
			nbr := e.IncidentVertex(v)
			if _, err := fmt.Fprintf(w, " %d%s%d", v.ID(), arrow, nbr.ID()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// WriteVerbose renders g in a more explicit, multi-line form: a header
// paragraph followed by a nested listing of vertices and their adjacent
// edges.
func WriteVerbose[V any, E any](w io.Writer, g *graph.Graph[V, E]) error {
	kind := "undirected"
	if g.Directed() {
		kind = "directed"
	}
	if _, err := fmt.Fprintf(w, "type: %s\nnumber of vertices: %d\nnumber of edges: %d\nvertices:\n", kind, g.NVertices(), g.NUniqueEdges()); err != nil {
		return err
	}

	arrow := edgeArrow(g.Directed())
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, "- %d\n  adjacent edges:\n", v.ID()); err != nil {
			return err
		}
		for _, e := range g.AdjacentEdges(v).All() {
			nbr := e.IncidentVertex(v)
			if _, err := fmt.Fprintf(w, "\t- %d%s%d\n", v.ID(), arrow, nbr.ID()); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteConciseWithAttrs is WriteConcise's attribute-carrying variant: each
// vertex id is followed by its encoded attribute record in brackets on the
// same line, and each edge token is suffixed with its own.
func WriteConciseWithAttrs[V any, E any](w io.Writer, g *graph.Graph[V, E], vc Codec[V], ec Codec[E]) error {
	kind := "undirected"
	if g.Directed() {
		kind = "directed"
	}
	if _, err := fmt.Fprintf(w, "%s %d %d\n", kind, g.NVertices(), g.NUniqueEdges()); err != nil {
		return err
	}

	arrow := edgeArrow(g.Directed())
	for _, v := range g.Vertices() {
		vline, err := vc.Encode(v.Attr)
		if err != nil {
			return fmt.Errorf("gsf: encoding vertex %d properties: %w", v.ID(), err)
		}
		if _, err = fmt.Fprintf(w, "- %d [%s] :", v.ID(), vline); err != nil {
			return err
		}
		for _, e := range g.AdjacentEdges(v).All() {
			nbr := e.IncidentVertex(v)
			eline, err := ec.Encode(e.Attr)
			if err != nil {
				return fmt.Errorf("gsf: encoding edge (%d,%d) properties: %w", e.FirstID(), e.SecondID(), err)
			}
			if _, err = fmt.Fprintf(w, " %d%s%d[%s]", v.ID(), arrow, nbr.ID(), eline); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// WriteVerboseWithAttrs is WriteVerbose's attribute-carrying variant.
func WriteVerboseWithAttrs[V any, E any](w io.Writer, g *graph.Graph[V, E], vc Codec[V], ec Codec[E]) error {
	kind := "undirected"
	if g.Directed() {
		kind = "directed"
	}
	if _, err := fmt.Fprintf(w, "type: %s\nnumber of vertices: %d\nnumber of edges: %d\nvertices:\n", kind, g.NVertices(), g.NUniqueEdges()); err != nil {
		return err
	}

	arrow := edgeArrow(g.Directed())
	for _, v := range g.Vertices() {
		vline, err := vc.Encode(v.Attr)
		if err != nil {
			return fmt.Errorf("gsf: encoding vertex %d properties: %w", v.ID(), err)
		}
		if _, err = fmt.Fprintf(w, "- %d (%s)\n  adjacent edges:\n", v.ID(), vline); err != nil {
			return err
		}
		for _, e := range g.AdjacentEdges(v).All() {
			nbr := e.IncidentVertex(v)
			eline, err := ec.Encode(e.Attr)
			if err != nil {
				return fmt.Errorf("gsf: encoding edge (%d,%d) properties: %w", e.FirstID(), e.SecondID(), err)
			}
			if _, err = fmt.Fprintf(w, "\t- %d%s%d (%s)\n", v.ID(), arrow, nbr.ID(), eline); err != nil {
				return err
			}
		}
	}

	return nil
}

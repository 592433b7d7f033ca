package gsf

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/dgraph/attr"
	"github.com/katalvlaran/dgraph/graph"
)

func TestSaveLoadRoundTripNoProperties(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Empty](false, graph.ListImpl)
	vs := g.AddVertices(attr.Empty{}, attr.Empty{}, attr.Empty{})
	if _, err := g.AddEdge(vs[0], vs[1], attr.Empty{}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge(vs[1], vs[2], attr.Empty{}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	var buf bytes.Buffer
	if err := Save[attr.Empty, attr.Empty](&buf, g); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load[attr.Empty, attr.Empty](&buf, false, graph.ListImpl)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.NVertices() != 3 || got.NUniqueEdges() != 2 {
		t.Fatalf("want 3 vertices, 2 edges; got %d, %d", got.NVertices(), got.NUniqueEdges())
	}
}

func TestSaveLoadRoundTripWithProperties(t *testing.T) {
	intCodec := Codec[attr.Weight[int]]{
		Encode: func(w attr.Weight[int]) (string, error) { return strconv.Itoa(w.Value), nil },
		Decode: func(s string) (attr.Weight[int], error) {
			n, err := strconv.Atoi(s)
			return attr.Weight[int]{Value: n}, err
		},
	}

	g := graph.NewGraph[attr.Weight[int], attr.Weight[int]](true, graph.ListImpl)
	vs := g.AddVertices(attr.Weight[int]{Value: 10}, attr.Weight[int]{Value: 20})
	if _, err := g.AddEdge(vs[0], vs[1], attr.Weight[int]{Value: 7}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	var buf bytes.Buffer
	err := Save[attr.Weight[int], attr.Weight[int]](&buf, g,
		WithVertexCodec[attr.Weight[int], attr.Weight[int]](intCodec),
		WithEdgeCodec[attr.Weight[int], attr.Weight[int]](intCodec),
	)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load[attr.Weight[int], attr.Weight[int]](&buf, true, graph.ListImpl,
		WithVertexCodec[attr.Weight[int], attr.Weight[int]](intCodec),
		WithEdgeCodec[attr.Weight[int], attr.Weight[int]](intCodec),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	gv, err := got.VertexByID(0)
	if err != nil {
		t.Fatalf("VertexByID: %v", err)
	}
	if gv.Attr.Value != 10 {
		t.Fatalf("want vertex 0 weight 10, got %d", gv.Attr.Value)
	}
	e, ok := got.GetEdge(gv, mustVertex(t, got, 1))
	if !ok {
		t.Fatalf("want edge 0->1 to round-trip")
	}
	if e.Attr.Value != 7 {
		t.Fatalf("want edge weight 7, got %d", e.Attr.Value)
	}
}

func mustVertex(t *testing.T, g *graph.Graph[attr.Weight[int], attr.Weight[int]], id graph.VertexID) *graph.Vertex[attr.Weight[int]] {
	t.Helper()
	v, err := g.VertexByID(id)
	if err != nil {
		t.Fatalf("VertexByID(%d): %v", id, err)
	}
	return v
}

func TestLoadRejectsDirectedMismatch(t *testing.T) {
	g := graph.NewGraph[attr.Empty, attr.Empty](true, graph.ListImpl)
	g.AddVertex(attr.Empty{})

	var buf bytes.Buffer
	if err := Save[attr.Empty, attr.Empty](&buf, g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := Load[attr.Empty, attr.Empty](&buf, false, graph.ListImpl); err != ErrDirectedMismatch {
		t.Fatalf("want ErrDirectedMismatch, got %v", err)
	}
}

func TestLoadRejectsMalformedHeader(t *testing.T) {
	r := strings.NewReader("not a header\n")
	if _, err := Load[attr.Empty, attr.Empty](r, false, graph.ListImpl); err == nil {
		t.Fatal("want an error for a malformed header")
	}
}

func TestLoadRequiresCodecWhenStreamCarriesProperties(t *testing.T) {
	r := strings.NewReader("0 1 0 1 0\nsome-property\n")
	if _, err := Load[attr.Empty, attr.Empty](r, false, graph.ListImpl); !errors.Is(err, ErrCodecRequired) {
		t.Fatalf("want ErrCodecRequired, got %v", err)
	}
}

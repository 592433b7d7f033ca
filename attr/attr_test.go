package attr_test

import (
	"testing"

	"github.com/katalvlaran/dgraph/attr"
)

func TestWeightDefault(t *testing.T) {
	w := attr.NewWeight[int64]()
	if w.Value != 1 {
		t.Fatalf("NewWeight default = %d, want 1", w.Value)
	}
	var zero attr.Weight[int64]
	if zero.Value != 0 {
		t.Fatalf("zero value Weight = %d, want 0", zero.Value)
	}
}

func TestColorNext(t *testing.T) {
	if got := attr.A.Next(); got != attr.B {
		t.Fatalf("A.Next() = %v, want B", got)
	}
	if got := attr.B.Next(); got != attr.A {
		t.Fatalf("B.Next() = %v, want A", got)
	}
	if got := attr.Unset.Next(); got != attr.Unset {
		t.Fatalf("Unset.Next() = %v, want Unset", got)
	}
}

func TestColorClamp(t *testing.T) {
	if got := attr.NewColor(99); got != attr.Unset {
		t.Fatalf("NewColor(99) = %v, want Unset", got)
	}
	if got := attr.NewColor(int(attr.A)); got != attr.A {
		t.Fatalf("NewColor(A) = %v, want A", got)
	}
}

func TestColorIsSet(t *testing.T) {
	if attr.Unset.IsSet() {
		t.Fatal("Unset.IsSet() = true, want false")
	}
	if !attr.A.IsSet() {
		t.Fatal("A.IsSet() = false, want true")
	}
}

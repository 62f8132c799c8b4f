package localsearch_test

import (
	"testing"

	"github.com/bmorlo/PyVRP-BM-standard/internal/fixture"
	"github.com/bmorlo/PyVRP-BM-standard/localsearch"
	"github.com/bmorlo/PyVRP-BM-standard/penalty"
)

func TestNewStandardExchanges_BuildsOneOperatorPerTableEntry(t *testing.T) {
	pd := fixture.OkSmall()
	pm := penalty.New(5, 5)

	ops, err := localsearch.NewStandardExchanges(pd, pm)
	if err != nil {
		t.Fatalf("NewStandardExchanges: %v", err)
	}

	if len(ops) != len(localsearch.StandardOperators) {
		t.Fatalf("got %d operators, want %d", len(ops), len(localsearch.StandardOperators))
	}

	for i, nm := range localsearch.StandardOperators {
		if ops[i].N != nm[0] || ops[i].M != nm[1] {
			t.Fatalf("operator %d: got (%d,%d), want (%d,%d)", i, ops[i].N, ops[i].M, nm[0], nm[1])
		}
	}
}

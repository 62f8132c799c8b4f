package localsearch_test

import (
	"testing"

	"github.com/bmorlo/PyVRP-BM-standard/internal/fixture"
	"github.com/bmorlo/PyVRP-BM-standard/localsearch"
	"github.com/bmorlo/PyVRP-BM-standard/penalty"
	"github.com/bmorlo/PyVRP-BM-standard/solution"
)

func TestNewLocalSearch_RejectsInvalidOptions(t *testing.T) {
	pd := fixture.OkSmall()
	pm := penalty.New(5, 5)

	cases := []localsearch.Options{
		{K: -1},
		{Eps: -1},
		{MaxPasses: -1},
	}
	for _, opts := range cases {
		if _, err := localsearch.NewLocalSearch(pd, pm, opts); err == nil {
			t.Fatalf("options %+v: expected an error, got nil", opts)
		}
	}
}

func TestLocalSearch_Run_RespectsMaxPasses(t *testing.T) {
	pd := fixture.OkSmall()
	pm := penalty.New(5, 5)

	ind, err := solution.New(pd, [][]int{{4, 3, 2, 1}, {}, {}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ls, err := localsearch.NewLocalSearch(pd, pm, localsearch.Options{K: 3, MaxPasses: 1})
	if err != nil {
		t.Fatalf("NewLocalSearch: %v", err)
	}

	before := ind.Cost(pm)
	applied := ls.Run(ind)
	after := ind.Cost(pm)

	// One pass applies at most one move per client.
	if applied > pd.NumClients()-1 {
		t.Fatalf("a single capped pass applied %d moves, want at most %d", applied, pd.NumClients()-1)
	}
	if after > before {
		t.Fatalf("a single capped pass increased cost: %d -> %d", before, after)
	}
}

func TestLocalSearch_Run_NeverIncreasesCost(t *testing.T) {
	pd := fixture.OkSmall()
	pm := penalty.New(5, 5)

	ind, err := solution.New(pd, [][]int{{1, 2, 3, 4}, {}, {}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	before := ind.Cost(pm)

	ls, err := localsearch.NewLocalSearch(pd, pm, localsearch.Options{K: 3})
	if err != nil {
		t.Fatalf("NewLocalSearch: %v", err)
	}

	ls.Run(ind)

	after := ind.Cost(pm)
	if after > before {
		t.Fatalf("local search increased cost: %d -> %d", before, after)
	}
}

func TestLocalSearch_Run_ConvergesToAFixedPoint(t *testing.T) {
	pd := fixture.OkSmall()
	pm := penalty.New(5, 5)

	ind, err := solution.New(pd, [][]int{{4, 3, 2, 1}, {}, {}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ls, err := localsearch.NewLocalSearch(pd, pm, localsearch.Options{K: 3})
	if err != nil {
		t.Fatalf("NewLocalSearch: %v", err)
	}

	ls.Run(ind)
	costAfterFirstRun := ind.Cost(pm)

	if applied := ls.Run(ind); applied != 0 {
		t.Fatalf("second run on a converged individual applied %d moves, want 0", applied)
	}

	if got := ind.Cost(pm); got != costAfterFirstRun {
		t.Fatalf("cost changed on a converged individual: %d -> %d", costAfterFirstRun, got)
	}
}

func TestLocalSearch_Run_PreservesClientCoverage(t *testing.T) {
	pd := fixture.OkSmall()
	pm := penalty.New(5, 5)

	ind, err := solution.New(pd, [][]int{{1, 2}, {3, 4}, {}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ls, err := localsearch.NewLocalSearch(pd, pm, localsearch.Options{K: 3})
	if err != nil {
		t.Fatalf("NewLocalSearch: %v", err)
	}

	ls.Run(ind)

	for c := 1; c < pd.NumClients(); c++ {
		if ind.NodeOf(c) == nil {
			t.Fatalf("client %d is missing from the individual after local search", c)
		}
	}
}

package localsearch_test

import (
	"testing"

	"github.com/bmorlo/PyVRP-BM-standard/internal/fixture"
	"github.com/bmorlo/PyVRP-BM-standard/localsearch"
)

func TestBuildNeighborList_KeepsKNearestExcludingSelfAndDepot(t *testing.T) {
	pd := fixture.OkSmall()

	nl := localsearch.BuildNeighborList(pd, 2)

	for c := 1; c < pd.NumClients(); c++ {
		neighbors := nl.Of(c)
		if len(neighbors) > 2 {
			t.Fatalf("client %d: got %d neighbors, want at most 2", c, len(neighbors))
		}
		for _, n := range neighbors {
			if n == c {
				t.Fatalf("client %d lists itself as a neighbor", c)
			}
			if n == 0 {
				t.Fatalf("client %d lists the depot as a neighbor", c)
			}
		}
	}
}

func TestBuildNeighborList_NearestFirst(t *testing.T) {
	pd := fixture.OkSmall()

	nl := localsearch.BuildNeighborList(pd, 3)

	for c := 1; c < pd.NumClients(); c++ {
		neighbors := nl.Of(c)
		for i := 1; i < len(neighbors); i++ {
			if pd.Dist(c, neighbors[i-1]) > pd.Dist(c, neighbors[i]) {
				t.Fatalf("client %d: neighbor list not sorted nearest-first: %v", c, neighbors)
			}
		}
	}
}

func TestBuildNeighborList_ClampsKToAvailableClients(t *testing.T) {
	pd := fixture.OkSmall()

	nl := localsearch.BuildNeighborList(pd, 1000)

	for c := 1; c < pd.NumClients(); c++ {
		if got, want := len(nl.Of(c)), pd.NumClients()-2; got != want {
			t.Fatalf("client %d: got %d neighbors, want %d (all other non-depot clients)", c, got, want)
		}
	}
}

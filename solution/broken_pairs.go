package solution

// BrokenPairsDistance counts the route-adjacency pairs that appear in ind
// but not in other: every route of every Individual induces a set of
// unordered client-id adjacencies (including the depot at each route's
// open and closed end); the distance is the size of the adjacency set
// belonging to ind minus the adjacencies it shares with other.
//
// This is symmetric for any two Individuals that route the same clients
// (their adjacency sets are always equal in size), non-negative, and zero
// iff ind and other induce the same adjacency set.
func (ind *Individual) BrokenPairsDistance(other *Individual) int {
	mine := ind.adjacencySet()
	theirs := other.adjacencySet()

	var broken int
	for pair := range mine {
		if _, ok := theirs[pair]; !ok {
			broken++
		}
	}

	return broken
}

type adjacency struct {
	a, b int
}

// adjacencySet returns the set of unordered client-id adjacencies induced
// by ind's routes. A single-client route's two arcs to/from the depot
// collapse into one adjacency, since both name the same unordered pair.
func (ind *Individual) adjacencySet() map[adjacency]struct{} {
	edges := make(map[adjacency]struct{})

	for _, r := range ind.routes {
		if r.Size() == 0 {
			continue
		}
		for n := r.Start(); n.Next() != nil; n = n.Next() {
			a, b := n.Client(), n.Next().Client()
			if a > b {
				a, b = b, a
			}
			edges[adjacency{a, b}] = struct{}{}
		}
	}

	return edges
}

package solution

import (
	"errors"

	"github.com/bmorlo/PyVRP-BM-standard/problem"
	"github.com/bmorlo/PyVRP-BM-standard/route"
)

// ErrInvalidRoutes is returned by New whenever the supplied routing does
// not define a valid partition of the clients: more non-empty route
// entries than the fleet allows, a client missing from every route, a
// client repeated across routes, or a client id out of range.
var ErrInvalidRoutes = errors.New("solution: invalid routes")

// Individual is a complete candidate solution: exactly ProblemData's
// vehicle count worth of routes (some possibly empty), plus the scalar
// cost components and neighbour map derived from them at construction
// time. These derived fields are not updated automatically when the
// underlying Routes are mutated in place: they stay stale until the caller
// invokes Recompute (the local-search driver does so after every applied
// move).
type Individual struct {
	pd     *problem.ProblemData
	routes []*route.Route

	// neighbours[c] is the (predecessor, successor) client-id pair of
	// client c in its route; neighbours[0] is always (0, 0).
	neighbours [][2]int

	distance   int64
	excessLoad int64
	timeWarp   int64
}

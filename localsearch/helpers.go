package localsearch

import (
	"github.com/bmorlo/PyVRP-BM-standard/route"
	"github.com/bmorlo/PyVRP-BM-standard/tws"
)

// The pre-filters in evaluate (containsDepot, overlap, adjacent) guarantee
// every position passed to these helpers is in range, so the wrapped
// Route methods' range errors are not programmer-reachable here and are
// discarded rather than threaded through every call site.

func at(r *route.Route, pos int) *route.Node {
	n, _ := r.At(pos)

	return n
}

func distBetween(r *route.Route, i, j int) int64 {
	d, _ := r.DistBetween(i, j)

	return d
}

func loadBetween(r *route.Route, i, j int) int64 {
	l, _ := r.LoadBetween(i, j)

	return l
}

func twBetween(r *route.Route, i, j int) tws.Segment {
	s, _ := r.TWBetween(i, j)

	return s
}

package localsearch

import (
	"github.com/bmorlo/PyVRP-BM-standard/route"
	"github.com/bmorlo/PyVRP-BM-standard/tws"
)

// Evaluate returns the cost delta of exchanging U's N-node segment with
// V's M-node segment, after the pre-filters that make a move infeasible or
// degenerate (delta 0, never evaluated further). A strictly negative
// result means apply(U, V) would improve the solution.
func (ex *Exchange) Evaluate(u, v *route.Node) int64 {
	if ex.containsDepot(u, ex.N) || ex.overlap(u, v) {
		return 0
	}
	if ex.M > 0 && ex.containsDepot(v, ex.M) {
		return 0
	}

	if ex.M == 0 {
		if u == v.Next() {
			return 0
		}

		return ex.evalRelocateMove(u, v)
	}

	if ex.N == ex.M && u.Client() >= v.Client() {
		return 0
	}
	if ex.adjacent(u, v) {
		return 0
	}

	return ex.evalSwapMove(u, v)
}

// containsDepot reports whether the N-node segment starting at node would
// include a depot sentinel.
func (ex *Exchange) containsDepot(node *route.Node, segLength int) bool {
	if node.IsDepot() {
		return true
	}

	return node.Position()+segLength-1 > node.Route().Size()
}

// overlap reports whether U's and V's segments share a position in the
// same route.
func (ex *Exchange) overlap(u, v *route.Node) bool {
	return u.Route() == v.Route() &&
		u.Position() <= v.Position()+ex.M-1 &&
		v.Position() <= u.Position()+ex.N-1
}

// adjacent reports whether U's and V's segments are directly next to each
// other in the same route, which degenerates to a relocate already
// covered by the M=0 case.
func (ex *Exchange) adjacent(u, v *route.Node) bool {
	if u.Route() != v.Route() {
		return false
	}

	return u.Position()+ex.N == v.Position() || v.Position()+ex.M == u.Position()
}

func (ex *Exchange) endOf(node *route.Node, segLength int) *route.Node {
	if segLength == 1 {
		return node
	}

	return at(node.Route(), node.Position()+segLength-1)
}

func (ex *Exchange) evalRelocateMove(u, v *route.Node) int64 {
	endU := ex.endOf(u, ex.N)
	posU, posV := u.Position(), v.Position()
	uRoute, vRoute := u.Route(), v.Route()

	current := distBetween(uRoute, posU-1, posU+ex.N) + ex.pd.Dist(v.Client(), v.Next().Client())
	proposed := ex.pd.Dist(v.Client(), u.Client()) +
		distBetween(uRoute, posU, posU+ex.N-1) +
		ex.pd.Dist(endU.Client(), v.Next().Client()) +
		ex.pd.Dist(u.Prev().Client(), endU.Next().Client())

	deltaCost := proposed - current
	capacity := int64(ex.pd.VehicleCapacity())

	if uRoute != vRoute {
		uTWS := tws.Merge(ex.pd, u.Prev().TWBefore(), endU.Next().TWAfter())
		deltaCost += ex.pm.TimeWarpPenalty(uTWS.TotalTimeWarp())
		deltaCost -= ex.pm.TimeWarpPenalty(uRoute.TimeWarp())

		loadDiff := loadBetween(uRoute, posU, posU+ex.N-1)
		deltaCost += ex.pm.LoadPenalty(uRoute.Load()-loadDiff, capacity)
		deltaCost -= ex.pm.LoadPenalty(uRoute.Load(), capacity)

		deltaCost += ex.pm.LoadPenalty(vRoute.Load()+loadDiff, capacity)
		deltaCost -= ex.pm.LoadPenalty(vRoute.Load(), capacity)

		vTWS := tws.MergeAll(ex.pd, v.TWBefore(), twBetween(uRoute, posU, posU+ex.N-1), v.Next().TWAfter())
		deltaCost += ex.pm.TimeWarpPenalty(vTWS.TotalTimeWarp())
		deltaCost -= ex.pm.TimeWarpPenalty(vRoute.TimeWarp())

		return deltaCost
	}

	rte := uRoute

	var seg tws.Segment
	if posU < posV {
		seg = tws.MergeAll(ex.pd,
			u.Prev().TWBefore(),
			twBetween(rte, posU+ex.N, posV),
			twBetween(rte, posU, posU+ex.N-1),
			v.Next().TWAfter())
	} else {
		seg = tws.MergeAll(ex.pd,
			v.TWBefore(),
			twBetween(rte, posU, posU+ex.N-1),
			twBetween(rte, posV+1, posU-1),
			endU.Next().TWAfter())
	}
	deltaCost += ex.pm.TimeWarpPenalty(seg.TotalTimeWarp())
	deltaCost -= ex.pm.TimeWarpPenalty(rte.TimeWarp())

	return deltaCost
}

func (ex *Exchange) evalSwapMove(u, v *route.Node) int64 {
	endU := ex.endOf(u, ex.N)
	endV := ex.endOf(v, ex.M)
	posU, posV := u.Position(), v.Position()
	uRoute, vRoute := u.Route(), v.Route()

	current := distBetween(uRoute, posU-1, posU+ex.N) + distBetween(vRoute, posV-1, posV+ex.M)

	proposed := ex.pd.Dist(u.Prev().Client(), v.Client()) +
		distBetween(vRoute, posV, posV+ex.M-1) +
		ex.pd.Dist(endV.Client(), endU.Next().Client()) +
		ex.pd.Dist(v.Prev().Client(), u.Client()) +
		distBetween(uRoute, posU, posU+ex.N-1) +
		ex.pd.Dist(endU.Client(), endV.Next().Client())

	deltaCost := proposed - current
	capacity := int64(ex.pd.VehicleCapacity())

	if uRoute != vRoute {
		uTWS := tws.MergeAll(ex.pd, u.Prev().TWBefore(), twBetween(vRoute, posV, posV+ex.M-1), endU.Next().TWAfter())
		deltaCost += ex.pm.TimeWarpPenalty(uTWS.TotalTimeWarp())
		deltaCost -= ex.pm.TimeWarpPenalty(uRoute.TimeWarp())

		vTWS := tws.MergeAll(ex.pd, v.Prev().TWBefore(), twBetween(uRoute, posU, posU+ex.N-1), endV.Next().TWAfter())
		deltaCost += ex.pm.TimeWarpPenalty(vTWS.TotalTimeWarp())
		deltaCost -= ex.pm.TimeWarpPenalty(vRoute.TimeWarp())

		loadU := loadBetween(uRoute, posU, posU+ex.N-1)
		loadV := loadBetween(vRoute, posV, posV+ex.M-1)
		loadDiff := loadU - loadV

		deltaCost += ex.pm.LoadPenalty(uRoute.Load()-loadDiff, capacity)
		deltaCost -= ex.pm.LoadPenalty(uRoute.Load(), capacity)

		deltaCost += ex.pm.LoadPenalty(vRoute.Load()+loadDiff, capacity)
		deltaCost -= ex.pm.LoadPenalty(vRoute.Load(), capacity)

		return deltaCost
	}

	rte := uRoute

	var seg tws.Segment
	if posU < posV {
		seg = tws.MergeAll(ex.pd,
			u.Prev().TWBefore(),
			twBetween(rte, posV, posV+ex.M-1),
			twBetween(rte, posU+ex.N, posV-1),
			twBetween(rte, posU, posU+ex.N-1),
			endV.Next().TWAfter())
	} else {
		seg = tws.MergeAll(ex.pd,
			v.Prev().TWBefore(),
			twBetween(rte, posU, posU+ex.N-1),
			twBetween(rte, posV+ex.M, posU-1),
			twBetween(rte, posV, posV+ex.M-1),
			endU.Next().TWAfter())
	}
	deltaCost += ex.pm.TimeWarpPenalty(seg.TotalTimeWarp())
	deltaCost -= ex.pm.TimeWarpPenalty(uRoute.TimeWarp())

	return deltaCost
}

// Apply executes the exchange in place: the N-M "extra" nodes of U's
// segment are spliced in after the end of V's segment (last node first, so
// that removing from the tail of the remaining segment and always
// inserting right after the same anchor restores the original relative
// order), then the remaining min(N, M) positions are pairwise swapped.
func (ex *Exchange) Apply(u, v *route.Node) error {
	uToInsert := ex.endOf(u, ex.N)

	var insertAfter *route.Node
	if ex.M == 0 {
		insertAfter = v
	} else {
		insertAfter = ex.endOf(v, ex.M)
	}

	for count := 0; count < ex.N-ex.M; count++ {
		prev := uToInsert.Prev()
		if err := uToInsert.Remove(); err != nil {
			return err
		}
		if err := uToInsert.InsertAfter(insertAfter); err != nil {
			return err
		}
		uToInsert = prev
	}

	a, b := u, v
	for count := 0; count < min(ex.N, ex.M); count++ {
		if err := a.SwapWith(b); err != nil {
			return err
		}
		a, b = a.Next(), b.Next()
	}

	return nil
}

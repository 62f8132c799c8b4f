package solution

import (
	"fmt"

	"github.com/bmorlo/PyVRP-BM-standard/penalty"
	"github.com/bmorlo/PyVRP-BM-standard/problem"
	"github.com/bmorlo/PyVRP-BM-standard/route"
)

// New builds an Individual from an explicit list of routes, each a
// sequence of non-depot client ids (depot boundaries implicit). The result
// always holds exactly pd.NbVehicles() routes: empty routes are moved to
// the end, with the relative order of non-empty routes preserved.
//
// Validation, per the two rules a valid routing must satisfy:
//
//  1. routeLists may not contain more than pd.NbVehicles() entries unless
//     every entry beyond the first NbVehicles() is empty.
//  2. every non-depot client 1..pd.NumClients()-1 must appear in exactly
//     one routeLists entry, exactly once.
//
// Either violation fails with ErrInvalidRoutes.
func New(pd *problem.ProblemData, routeLists [][]int) (*Individual, error) {
	if len(routeLists) > pd.NbVehicles() {
		for _, extra := range routeLists[pd.NbVehicles():] {
			if len(extra) > 0 {
				return nil, fmt.Errorf("solution: %d routes for a %d-vehicle fleet: %w", len(routeLists), pd.NbVehicles(), ErrInvalidRoutes)
			}
		}
	}

	seen := make([]bool, pd.NumClients())
	for _, clients := range routeLists {
		for _, c := range clients {
			if c <= 0 || c >= pd.NumClients() {
				return nil, fmt.Errorf("solution: client %d out of range: %w", c, ErrInvalidRoutes)
			}
			if seen[c] {
				return nil, fmt.Errorf("solution: client %d appears more than once: %w", c, ErrInvalidRoutes)
			}
			seen[c] = true
		}
	}
	for c := 1; c < pd.NumClients(); c++ {
		if !seen[c] {
			return nil, fmt.Errorf("solution: client %d is not routed: %w", c, ErrInvalidRoutes)
		}
	}

	routes := make([]*route.Route, 0, pd.NbVehicles())
	var empties int
	for _, clients := range routeLists {
		if len(clients) == 0 {
			empties++
			continue
		}
		r, err := route.NewRoute(pd, len(routes), clients)
		if err != nil {
			return nil, fmt.Errorf("solution: %w", err)
		}
		routes = append(routes, r)
	}
	for len(routes) < pd.NbVehicles() {
		r, _ := route.NewRoute(pd, len(routes), nil)
		routes = append(routes, r)
	}

	ind := &Individual{pd: pd, routes: routes}
	ind.deriveNeighbours()
	ind.deriveCostComponents()

	return ind, nil
}

// NbVehicles returns the fixed number of route slots this Individual owns.
func (ind *Individual) NbVehicles() int { return len(ind.routes) }

// GetRoutes returns the Individual's routes, non-empty routes first.
func (ind *Individual) GetRoutes() []*route.Route { return ind.routes }

// NumRoutes returns the number of non-empty routes.
func (ind *Individual) NumRoutes() int {
	var n int
	for _, r := range ind.routes {
		if r.Size() > 0 {
			n++
		}
	}

	return n
}

// GetNeighbours returns the client-indexed (predecessor, successor) map.
func (ind *Individual) GetNeighbours() [][2]int { return ind.neighbours }

// Distance returns the total distance across all routes.
func (ind *Individual) Distance() int64 { return ind.distance }

// ExcessLoad returns the total load in excess of vehicle capacity, summed
// over all routes.
func (ind *Individual) ExcessLoad() int64 { return ind.excessLoad }

// TimeWarp returns the total time warp, summed over all routes.
func (ind *Individual) TimeWarp() int64 { return ind.timeWarp }

// HasExcessCapacity reports whether any route exceeds vehicle capacity.
func (ind *Individual) HasExcessCapacity() bool { return ind.excessLoad > 0 }

// HasTimeWarp reports whether any route has time warp.
func (ind *Individual) HasTimeWarp() bool { return ind.timeWarp > 0 }

// IsFeasible reports whether this Individual violates neither capacity nor
// time windows.
func (ind *Individual) IsFeasible() bool { return !ind.HasExcessCapacity() && !ind.HasTimeWarp() }

// Cost returns the penalized cost under the given PenaltyManager:
// distance + capacityMultiplier*excessLoad + timeWarpMultiplier*timeWarp.
// For a feasible Individual this reduces to Distance().
func (ind *Individual) Cost(pm *penalty.Manager) int64 {
	return ind.distance + pm.CapacityMultiplier()*ind.excessLoad + pm.TimeWarpMultiplier()*ind.timeWarp
}

// Recompute re-derives the neighbour map and cost components from the
// current state of this Individual's routes. Call it after a local-search
// operator has mutated one or more routes in place, to bring the
// Individual's cached fields back in sync before reading Cost, Distance,
// GetNeighbours, or the feasibility projections.
func (ind *Individual) Recompute() {
	ind.deriveNeighbours()
	ind.deriveCostComponents()
}

// NodeOf returns the Node currently visiting client c, scanning this
// Individual's routes. Client 0 (the depot) has no single Node and is
// never returned; callers look it up by route boundary instead.
func (ind *Individual) NodeOf(c int) *route.Node {
	for _, r := range ind.routes {
		for pos := 1; pos <= r.Size(); pos++ {
			n, _ := r.At(pos)
			if n.Client() == c {
				return n
			}
		}
	}

	return nil
}

func (ind *Individual) deriveNeighbours() {
	ind.neighbours = make([][2]int, ind.pd.NumClients())

	for _, r := range ind.routes {
		for pos := 1; pos <= r.Size(); pos++ {
			n, _ := r.At(pos)
			prev, _ := r.At(pos - 1)
			next, _ := r.At(pos + 1)
			ind.neighbours[n.Client()] = [2]int{prev.Client(), next.Client()}
		}
	}
}

func (ind *Individual) deriveCostComponents() {
	var dist, excess, warp int64
	capacity := int64(ind.pd.VehicleCapacity())

	for _, r := range ind.routes {
		dist += r.Distance()
		warp += r.TimeWarp()
		if load := r.Load(); load > capacity {
			excess += load - capacity
		}
	}

	ind.distance = dist
	ind.excessLoad = excess
	ind.timeWarp = warp
}

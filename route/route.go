package route

import (
	"fmt"

	"github.com/bmorlo/PyVRP-BM-standard/problem"
	"github.com/bmorlo/PyVRP-BM-standard/tws"
)

// NewRoute builds a route visiting the given clients in order, bounded by a
// depot sentinel at each end. clientIDs must all be non-depot, in-range
// client ids for pd; NewRoute does not check for duplicates across routes,
// since a single route has no visibility into its siblings — that
// invariant is the caller's (solution.Individual's) responsibility.
func NewRoute(pd *problem.ProblemData, idx int, clientIDs []int) (*Route, error) {
	for _, c := range clientIDs {
		if c <= 0 || c >= pd.NumClients() {
			return nil, fmt.Errorf("route: client %d: %w", c, ErrInvalidClient)
		}
	}

	r := &Route{pd: pd, idx: idx}
	r.start = &Node{client: 0, rte: r}
	r.end = &Node{client: 0, rte: r}
	r.start.next = r.end
	r.end.prev = r.start

	prev := r.start
	for _, c := range clientIDs {
		n := &Node{client: c, rte: r}
		prev.next = n
		n.prev = prev
		n.next = r.end
		r.end.prev = n
		prev = n
	}

	r.recompute()

	return r, nil
}

// Index returns this route's position within its owning solution, as
// assigned at construction time. Purely informational; not used by any
// invariant in this package.
func (r *Route) Index() int { return r.idx }

// Size returns the number of client visits, excluding both depot
// sentinels.
func (r *Route) Size() int { return len(r.seq) - 2 }

// Start returns the opening depot sentinel, at position 0.
func (r *Route) Start() *Node { return r.start }

// End returns the closing depot sentinel, at position size()+1.
func (r *Route) End() *Node { return r.end }

// At returns the node at the given position, 0..size()+1 inclusive (0 and
// size()+1 are the depot sentinels).
func (r *Route) At(pos int) (*Node, error) {
	if pos < 0 || pos >= len(r.seq) {
		return nil, fmt.Errorf("route: position %d: %w", pos, ErrIndexOutOfRange)
	}

	return r.seq[pos], nil
}

// Load returns the total demand carried by this route.
func (r *Route) Load() int64 { return r.load }

// Distance returns the total travel distance of this route, depot to
// depot.
func (r *Route) Distance() int64 { return r.distance }

// TimeWarp returns the total time warp accumulated over the whole route.
func (r *Route) TimeWarp() int64 { return r.timeWarp }

// HasExcessCapacity reports whether Load() exceeds the vehicle capacity.
func (r *Route) HasExcessCapacity() bool { return r.load > int64(r.pd.VehicleCapacity()) }

// HasTimeWarp reports whether this route has any time warp.
func (r *Route) HasTimeWarp() bool { return r.timeWarp > 0 }

// IsFeasible reports whether the route violates neither capacity nor time
// windows.
func (r *Route) IsFeasible() bool { return !r.HasExcessCapacity() && !r.HasTimeWarp() }

// DistBetween returns the travel distance from position i to position j,
// 0 <= i <= j <= size()+1, in O(1) via a cached prefix sum.
func (r *Route) DistBetween(i, j int) (int64, error) {
	if err := r.checkRange(i, j); err != nil {
		return 0, err
	}

	return r.cumDist[j] - r.cumDist[i], nil
}

// LoadBetween returns the demand of the closed range of visits [i, j],
// 0 <= i <= j <= size()+1, in O(1) via a cached prefix sum.
func (r *Route) LoadBetween(i, j int) (int64, error) {
	if err := r.checkRange(i, j); err != nil {
		return 0, err
	}
	if i == 0 {
		return r.cumLoad[j], nil
	}

	return r.cumLoad[j] - r.cumLoad[i-1], nil
}

// TWBetween returns the time-window segment of the closed range of
// visits [i, j], 0 <= i <= j <= size()+1. When the range is anchored at
// either depot (i == 0 or j == size()+1) this is an O(1) lookup of a
// cached Node field; otherwise it folds the singleton segments of the
// range, which costs O(j-i).
func (r *Route) TWBetween(i, j int) (tws.Segment, error) {
	if err := r.checkRange(i, j); err != nil {
		return tws.Segment{}, err
	}
	if i == 0 {
		return r.seq[j].twBefore, nil
	}
	if j == len(r.seq)-1 {
		return r.seq[i].twAfter, nil
	}

	seg := tws.Singleton(r.pd, r.seq[i].client)
	for p := i + 1; p <= j; p++ {
		seg = tws.Merge(r.pd, seg, tws.Singleton(r.pd, r.seq[p].client))
	}

	return seg, nil
}

func (r *Route) checkRange(i, j int) error {
	if i < 0 || j >= len(r.seq) || i > j {
		return fmt.Errorf("route: range [%d,%d]: %w", i, j, ErrIndexOutOfRange)
	}

	return nil
}

// recompute walks the linked list from the start depot, reassigning dense
// positions and rebuilding every cached attribute: the position-indexed
// slice, the prefix sums for distance and load, and each node's
// twBefore/twAfter segment. Called by every mutator before it returns, so
// that a Route is always internally consistent once control leaves this
// package.
func (r *Route) recompute() {
	r.seq = r.seq[:0]
	for n := r.start; n != nil; n = n.next {
		n.pos = len(r.seq)
		r.seq = append(r.seq, n)
	}

	size := len(r.seq)
	r.cumDist = make([]int64, size)
	r.cumLoad = make([]int64, size)

	for p := 1; p < size; p++ {
		prevClient := r.seq[p-1].client
		client := r.seq[p].client
		r.cumDist[p] = r.cumDist[p-1] + r.pd.Dist(prevClient, client)
		r.cumLoad[p] = r.cumLoad[p-1] + int64(r.pd.Client(client).Demand)
	}
	r.distance = r.cumDist[size-1]
	r.load = r.cumLoad[size-1]

	r.seq[0].twBefore = tws.Singleton(r.pd, r.seq[0].client)
	for p := 1; p < size; p++ {
		r.seq[p].twBefore = tws.Merge(r.pd, r.seq[p-1].twBefore, tws.Singleton(r.pd, r.seq[p].client))
	}

	r.seq[size-1].twAfter = tws.Singleton(r.pd, r.seq[size-1].client)
	for p := size - 2; p >= 0; p-- {
		r.seq[p].twAfter = tws.Merge(r.pd, tws.Singleton(r.pd, r.seq[p].client), r.seq[p+1].twAfter)
	}

	r.timeWarp = r.seq[size-1].twBefore.TotalTimeWarp()
}

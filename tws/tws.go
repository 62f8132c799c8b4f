package tws

import "github.com/bmorlo/PyVRP-BM-standard/problem"

// Singleton builds the Segment for a single client in isolation: duration
// equals its service duration, time warp is zero, and the start-time window
// is exactly the client's own time window.
//
// Complexity: O(1).
func Singleton(pd *problem.ProblemData, client int) Segment {
	c := pd.Client(client)

	return Segment{
		IdxFirst:      client,
		IdxLast:       client,
		Duration:      int64(c.ServiceDuration),
		TimeWarp:      0,
		EarliestStart: int64(c.Earliest),
		LatestStart:   int64(c.Latest),
	}
}

// Merge combines two segments under travel between a's last client and b's
// first client, producing the segment for their concatenation a then b.
// Merge is associative: Merge(Merge(a,b),c) == Merge(a,Merge(b,c)) for any
// a, b, c built over the same ProblemData (TestMerge_Associative checks
// this).
//
// The recurrence (Vidal et al.'s standard formulation): let
//
//	Δ = a.Duration - a.TimeWarp + dist(a.IdxLast, b.IdxFirst)
//
// be the time elapsed from a's feasible start to the moment travel to b's
// first client completes. The gap between that moment and b's own feasible
// window is absorbed as either additional waiting (if we arrive early) or
// additional time warp (if we arrive late), never both:
//
//	waitTime = max(b.EarliestStart - Δ - a.LatestStart, 0)
//	warpTime = max(a.EarliestStart + Δ - b.LatestStart, 0)
//
// Complexity: O(1).
func Merge(pd *problem.ProblemData, a, b Segment) Segment {
	dist := pd.Dist(a.IdxLast, b.IdxFirst)
	delta := a.Duration - a.TimeWarp + dist

	waitTime := max64(b.EarliestStart-delta-a.LatestStart, 0)
	warpTime := max64(a.EarliestStart+delta-b.LatestStart, 0)

	return Segment{
		IdxFirst:      a.IdxFirst,
		IdxLast:       b.IdxLast,
		Duration:      a.Duration + b.Duration + dist + waitTime,
		TimeWarp:      a.TimeWarp + b.TimeWarp + warpTime,
		EarliestStart: max64(b.EarliestStart-delta, a.EarliestStart) - waitTime,
		LatestStart:   min64(b.LatestStart-delta, a.LatestStart) + warpTime,
	}
}

// MergeAll left-folds Merge over segs: MergeAll(pd, a, b, c) ==
// Merge(pd, Merge(pd, a, b), c). Panics if segs is empty (a programmer
// error — there is no meaningful "empty segment").
//
// Complexity: O(k) merges for k segments, each O(1).
func MergeAll(pd *problem.ProblemData, segs ...Segment) Segment {
	acc := segs[0]
	var i int
	for i = 1; i < len(segs); i++ {
		acc = Merge(pd, acc, segs[i])
	}

	return acc
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

package tws

// Segment is the algebraic summary of a contiguous client sub-sequence
// [IdxFirst ... IdxLast] under a fixed traversal direction.
//
// Duration is the total service + travel time spent inside the segment.
// TimeWarp is the total mandatory backwards time-shift already absorbed
// while merging the segment together; it is zero for a segment that is
// feasible in isolation. EarliestStart/LatestStart bound the window of
// start times at IdxFirst under which the segment completes without
// incurring any *additional* warp beyond what TimeWarp already counts.
type Segment struct {
	IdxFirst int
	IdxLast  int

	Duration int64
	TimeWarp int64

	EarliestStart int64
	LatestStart   int64
}

// TotalTimeWarp returns the segment's accumulated time warp.
func (s Segment) TotalTimeWarp() int64 { return s.TimeWarp }

// Package tws implements the TimeWindowSegment algebra: the constant-size
// summary of a contiguous client sub-sequence that lets route-level local
// search evaluate arbitrary re-arrangements of a route in O(1) merges
// instead of re-simulating the whole visit sequence.
//
// A TimeWindowSegment never stands for a single point in time; it stands
// for everything a route segment needs to know about itself to be
// concatenated with another segment without re-walking its clients:
// how long it takes, how much of that is unavoidable lateness (time warp),
// and the window of start times at its first client under which it
// completes without incurring more warp than it already has.
//
// Merge is associative (TestMerge_Associative checks it): build a singleton
// per client with Singleton, then fold
// segments together with Merge in any order — prefix arrays, suffix arrays,
// and ad-hoc candidate concatenations all agree.
package tws

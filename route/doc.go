// Package route implements the mutable, doubly-linked representation of a
// single vehicle's visit sequence: Node (one client's presence in the
// route) and Route (the depot-bounded sequence of Nodes, with load,
// distance, and time-window-segment caches kept consistent on every
// structural change).
//
// Route chooses eager recomputation over lazy invalidation: every public mutator — Node.InsertAfter, Node.Remove,
// Node.SwapWith — walks the full affected route(s) once to reassign dense
// positions and rebuild the prefix/suffix caches before returning. This
// trades the theoretical O(1) amortized mutation of a fully incremental
// scheme for a simpler, obviously-correct O(size) rebuild; CVRPTW routes
// are short enough in practice that this is not a bottleneck, and it keeps
// the invariant "every public mutator leaves both affected routes fully
// consistent" trivially true by construction rather than by careful
// incremental bookkeeping.
package route

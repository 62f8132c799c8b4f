package route

import (
	"errors"

	"github.com/bmorlo/PyVRP-BM-standard/problem"
	"github.com/bmorlo/PyVRP-BM-standard/tws"
)

var (
	// ErrNilNode is returned by mutators given a nil Node where a live one
	// was required.
	ErrNilNode = errors.New("route: nil node")
	// ErrNodeAttached is returned by InsertAfter when the node being
	// inserted is already part of a route.
	ErrNodeAttached = errors.New("route: node is already attached to a route")
	// ErrNodeDetached is returned by Remove and SwapWith when the node is
	// not currently part of any route.
	ErrNodeDetached = errors.New("route: node is not attached to a route")
	// ErrRefIsSentinel is returned by InsertAfter when asked to insert
	// after the closing depot sentinel, which has no successor slot.
	ErrRefIsSentinel = errors.New("route: cannot insert after the closing depot")
	// ErrRemoveSentinel is returned when Remove or SwapWith targets a depot
	// sentinel, which is never a movable node.
	ErrRemoveSentinel = errors.New("route: depot sentinel cannot be removed or swapped")
	// ErrInvalidClient is returned by NewRoute when a client id refers to
	// the depot or is out of range for the owning ProblemData.
	ErrInvalidClient = errors.New("route: invalid client id")
	// ErrIndexOutOfRange is returned by position-addressed queries given an
	// index outside [0, size()+1].
	ErrIndexOutOfRange = errors.New("route: index out of range")
)

// Node is one visit in a Route: either a client or, at the two ends of
// every route, a depot sentinel (Client() == 0). Nodes are linked into a
// doubly-linked list by their owning Route and carry a dense 1-based
// Position() plus cached time-window segments for the prefix and suffix of
// the route ending/starting at this node.
//
// A Node not currently owned by any Route (Route() == nil) is "detached"
// and may be attached to exactly one route via InsertAfter.
type Node struct {
	client int
	rte    *Route
	pos    int
	prev   *Node
	next   *Node

	// twBefore is the time-window segment of [start depot .. this node].
	// twAfter is the time-window segment of [this node .. end depot].
	twBefore tws.Segment
	twAfter  tws.Segment
}

// NewNode creates a detached node for the given client. Passing client 0
// creates a depot visit; callers building routes should use NewRoute with
// plain client ids, which creates its own depot sentinels.
func NewNode(client int) *Node {
	return &Node{client: client}
}

// Client returns the client id this node visits, or 0 for a depot
// sentinel.
func (n *Node) Client() int { return n.client }

// Route returns the route this node currently belongs to, or nil if the
// node is detached.
func (n *Node) Route() *Route { return n.rte }

// Position returns the node's dense 1-based position within its route, or
// 0 for the opening depot sentinel. Position is meaningless on a detached
// node.
func (n *Node) Position() int { return n.pos }

// Prev returns the preceding node, or nil at the opening depot sentinel or
// on a detached node.
func (n *Node) Prev() *Node { return n.prev }

// Next returns the following node, or nil at the closing depot sentinel or
// on a detached node.
func (n *Node) Next() *Node { return n.next }

// IsDepot reports whether this node is a depot sentinel.
func (n *Node) IsDepot() bool { return n.client == 0 }

// TWBefore returns the cached time-window segment of the route prefix
// ending at this node, inclusive.
func (n *Node) TWBefore() tws.Segment { return n.twBefore }

// TWAfter returns the cached time-window segment of the route suffix
// starting at this node, inclusive.
func (n *Node) TWAfter() tws.Segment { return n.twAfter }

// Route is a single vehicle's depot-bounded visit sequence: a doubly-linked
// chain of Nodes, sentineled by a depot Node at each end, with load,
// distance, and time-window caches rebuilt after every structural change.
type Route struct {
	pd  *problem.ProblemData
	idx int

	start *Node // depot sentinel, position 0
	end   *Node // depot sentinel, position size()+1

	seq []*Node // seq[p] is the node at position p, 0..size()+1

	load     int64
	distance int64
	timeWarp int64

	cumDist []int64 // cumDist[p] = distance travelled from start depot through position p
	cumLoad []int64 // cumLoad[p] = demand accumulated over positions 1..p
}

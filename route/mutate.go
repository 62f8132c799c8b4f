package route

// InsertAfter splices n into ref's route immediately after ref. n must be
// detached (Route() == nil); ref must belong to a route and must not be
// that route's closing depot sentinel, since nothing can follow it. The
// owning route's caches are fully rebuilt before InsertAfter returns.
func (n *Node) InsertAfter(ref *Node) error {
	if n == nil || ref == nil {
		return ErrNilNode
	}
	if n.rte != nil {
		return ErrNodeAttached
	}
	if ref.rte == nil {
		return ErrNodeDetached
	}
	if ref.next == nil {
		return ErrRefIsSentinel
	}

	r := ref.rte
	succ := ref.next

	n.rte = r
	n.prev = ref
	n.next = succ
	ref.next = n
	succ.prev = n

	r.recompute()

	return nil
}

// Remove detaches n from its route, relinking its neighbours and rebuilding
// the owning route's caches. n must be a live client node, not a depot
// sentinel.
func (n *Node) Remove() error {
	if n == nil {
		return ErrNilNode
	}
	if n.rte == nil {
		return ErrNodeDetached
	}
	if n.IsDepot() {
		return ErrRemoveSentinel
	}

	r := n.rte
	n.prev.next = n.next
	n.next.prev = n.prev

	n.rte = nil
	n.prev = nil
	n.next = nil
	n.pos = 0

	r.recompute()

	return nil
}

// SwapWith exchanges the positions of n and other in their respective
// routes (which may be the same route or two different ones), rebuilding
// the caches of every affected route. Neither node may be a depot
// sentinel.
func (n *Node) SwapWith(other *Node) error {
	if n == nil || other == nil {
		return ErrNilNode
	}
	if n.rte == nil || other.rte == nil {
		return ErrNodeDetached
	}
	if n.IsDepot() || other.IsDepot() {
		return ErrRemoveSentinel
	}
	if n == other {
		return nil
	}

	nRoute, oRoute := n.rte, other.rte
	nPrev, nNext := n.prev, n.next
	oPrev, oNext := other.prev, other.next

	if nNext == other {
		// Adjacent nodes, n immediately before other.
		nPrev.next = other
		other.prev = nPrev
		other.next = n
		n.prev = other
		n.next = oNext
		oNext.prev = n
	} else if oNext == n {
		// Adjacent nodes, other immediately before n.
		oPrev.next = n
		n.prev = oPrev
		n.next = other
		other.prev = n
		other.next = nNext
		nNext.prev = other
	} else {
		nPrev.next = other
		other.prev = nPrev
		other.next = nNext
		nNext.prev = other

		oPrev.next = n
		n.prev = oPrev
		n.next = oNext
		oNext.prev = n
	}

	n.rte, other.rte = oRoute, nRoute

	nRoute.recompute()
	if oRoute != nRoute {
		oRoute.recompute()
	}

	return nil
}

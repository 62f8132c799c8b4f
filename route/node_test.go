package route_test

import (
	"testing"

	"github.com/bmorlo/PyVRP-BM-standard/route"
)

func TestNewNode_IsDetachedAndUnpositioned(t *testing.T) {
	n := route.NewNode(5)

	if n.Client() != 5 {
		t.Fatalf("Client() = %d, want 5", n.Client())
	}
	if n.Route() != nil {
		t.Fatalf("a fresh node should be detached")
	}
	if n.IsDepot() {
		t.Fatalf("client 5 should not report IsDepot")
	}
}

func TestNode_DepotSentinel(t *testing.T) {
	n := route.NewNode(0)
	if !n.IsDepot() {
		t.Fatalf("client 0 should report IsDepot")
	}
}

func TestNode_InsertAfter_RejectsDetachedReference(t *testing.T) {
	detached := route.NewNode(1)
	if err := detached.InsertAfter(route.NewNode(2)); err == nil {
		t.Fatalf("expected error inserting after a detached reference node")
	}
}

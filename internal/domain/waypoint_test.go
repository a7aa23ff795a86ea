package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestWaypointGraph_AsymmetricLinks(t *testing.T) {
	g := NewWaypointGraph()
	a := g.AddNode(Vec3{})
	b := g.AddNode(Vec3{X: 5})

	if err := g.Link(a, b); err != nil {
		t.Fatal(err)
	}
	if !g.IsNeighbor(a, b) {
		t.Error("a -> b expected")
	}
	if g.IsNeighbor(b, a) {
		t.Error("b -> a must not be implied")
	}

	// Дубликаты не плодятся
	_ = g.Link(a, b)
	if n := len(g.Neighbors(a)); n != 1 {
		t.Errorf("duplicate link added, neighbors = %d", n)
	}

	if err := g.Link(a, 42); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("expected ErrUnknownNode, got %v", err)
	}
}

func TestWaypointGraph_RandomNeighbor(t *testing.T) {
	g := NewWaypointGraph()
	hub := g.AddNode(Vec3{})
	var spokes []NodeID
	for i := 0; i < 3; i++ {
		id := g.AddNode(Vec3{X: float64(i + 1)})
		spokes = append(spokes, id)
		_ = g.Link(hub, id)
	}
	rng := rand.New(rand.NewSource(7))

	seen := map[NodeID]int{}
	for i := 0; i < 300; i++ {
		next, ok := g.RandomNeighbor(hub, rng)
		if !ok {
			t.Fatal("hub has neighbors")
		}
		if !g.IsNeighbor(hub, next) {
			t.Fatalf("picked %d which is not a neighbor", next)
		}
		seen[next]++
	}
	for _, s := range spokes {
		if seen[s] == 0 {
			t.Errorf("neighbor %d never picked", s)
		}
	}

	// Тупик
	if _, ok := g.RandomNeighbor(spokes[0], rng); ok {
		t.Error("dead end must yield no neighbor")
	}
	if _, ok := g.RandomNeighbor(99, rng); ok {
		t.Error("unknown node must yield no neighbor")
	}
}

func TestWaypointGraph_NodeIsCopy(t *testing.T) {
	g := NewWaypointGraph()
	a := g.AddNode(Vec3{})
	b := g.AddNode(Vec3{Z: 1})
	_ = g.LinkBoth(a, b)

	n, _ := g.Node(a)
	n.Neighbors[0] = 77
	if g.Neighbors(a)[0] != b {
		t.Error("graph mutated through a returned copy")
	}

	if id, ok := g.Nearest(Vec3{Z: 0.9}); !ok || id != b {
		t.Errorf("Nearest = %d, %v", id, ok)
	}
}

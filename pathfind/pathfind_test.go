package pathfind_test

import (
	"testing"

	"github.com/trayweave/cableroute/core"
	"github.com/trayweave/cableroute/pathfind"
)

func line(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	edges := []struct {
		from, to string
		w        float64
	}{
		{"a", "b", 1},
		{"b", "a", 1},
		{"b", "c", 2},
		{"c", "b", 2},
		{"a", "c", 10},
		{"c", "a", 10},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.from, e.to, e.w); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g
}

func TestDijkstra_RejectsMissingSource(t *testing.T) {
	g := line(t)
	if _, _, err := pathfind.Dijkstra(g, pathfind.WithSource("z")); err != pathfind.ErrVertexNotFound {
		t.Fatalf("expected ErrVertexNotFound, got %v", err)
	}
	if _, _, err := pathfind.Dijkstra(g); err != pathfind.ErrEmptySource {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestShortestPath_PrefersCheaperRoute(t *testing.T) {
	g := line(t)
	dist, path, ok, err := pathfind.ShortestPath(g, "a", "c")
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if !ok {
		t.Fatal("expected a reachable path")
	}
	if dist != 3 {
		t.Fatalf("expected cost 3 via a->b->c, got %v", dist)
	}
	want := []string{"a", "b", "c"}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("a")
	_ = g.AddVertex("isolated")
	_, _, ok, err := pathfind.ShortestPath(g, "a", "isolated")
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if ok {
		t.Fatal("expected isolated vertex to be unreachable")
	}
}

func TestNearest_PicksClosestTarget(t *testing.T) {
	g := line(t)
	best, dist, path, ok, err := pathfind.Nearest(g, []string{"a"}, []string{"c", "b"})
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if !ok {
		t.Fatal("expected at least one reachable target")
	}
	if best != "b" {
		t.Fatalf("expected b (cost 1) to win over c (cost 3), got %s", best)
	}
	if dist != 1 {
		t.Fatalf("expected cost 1, got %v", dist)
	}
	if len(path) != 2 || path[0] != "a" || path[1] != "b" {
		t.Fatalf("unexpected path %v", path)
	}
}

func TestNearest_MultiSourcePicksClosestOrigin(t *testing.T) {
	g := line(t)
	// From b or c, c is reached for free (source) while a costs at least 1.
	best, dist, _, ok, err := pathfind.Nearest(g, []string{"b", "c"}, []string{"a"})
	if err != nil {
		t.Fatalf("Nearest: %v", err)
	}
	if !ok || best != "a" {
		t.Fatalf("expected a reachable, got best=%q ok=%v", best, ok)
	}
	if dist != 1 {
		t.Fatalf("expected cost 1 (b->a), got %v", dist)
	}
}

func TestDijkstra_StopsEarlyOnceTargetsFinalized(t *testing.T) {
	g := line(t)
	dist, _, err := pathfind.Dijkstra(g, pathfind.WithSource("a"), pathfind.WithTargets("b"))
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	if dist["b"] != 1 {
		t.Fatalf("expected dist[b]=1, got %v", dist["b"])
	}
}

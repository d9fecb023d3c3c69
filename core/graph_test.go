package core

import "testing"

func TestAddEdge_RejectsBadWeight(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddEdge("a", "b", 5); err != ErrBadWeight {
		t.Fatalf("got %v, want ErrBadWeight", err)
	}
}

func TestAddEdge_RejectsLoopByDefault(t *testing.T) {
	g := NewGraph(WithWeighted())
	if _, err := g.AddEdge("a", "a", 0); err != ErrLoopNotAllowed {
		t.Fatalf("got %v, want ErrLoopNotAllowed", err)
	}
}

func TestAddEdge_LoopsAllowed(t *testing.T) {
	g := NewGraph(WithLoops())
	if _, err := g.AddEdge("a", "a", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	neighbors, err := g.Neighbors("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(neighbors) != 1 {
		t.Fatalf("got %d neighbor edges for self-loop, want 1", len(neighbors))
	}
}

func TestAddEdge_RejectsParallelByDefault(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.AddEdge("a", "b", 0); err != ErrMultiEdgeNotAllowed {
		t.Fatalf("got %v, want ErrMultiEdgeNotAllowed", err)
	}
}

func TestAddEdge_MultiAllowed(t *testing.T) {
	g := NewGraph(WithMultiEdges())
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("unexpected error on parallel edge: %v", err)
	}
	edges, err := g.Neighbors("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
}

func TestNeighborIDs_UniqueAndSorted(t *testing.T) {
	g := NewGraph(WithMultiEdges())
	mustAddEdge(t, g, "b", "a", 0)
	mustAddEdge(t, g, "b", "a", 0)
	mustAddEdge(t, g, "b", "c", 0)

	ids, err := g.NeighborIDs("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "c"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestVertices_Sorted(t *testing.T) {
	g := NewGraph(WithMultiEdges())
	mustAddEdge(t, g, "c", "a", 0)
	mustAddEdge(t, g, "a", "b", 0)

	got := g.Vertices()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestHasVertex(t *testing.T) {
	g := NewGraph()
	if g.HasVertex("a") {
		t.Fatal("HasVertex(\"a\") = true before insertion")
	}
	mustAddEdge(t, g, "a", "b", 0)
	if !g.HasVertex("a") || !g.HasVertex("b") {
		t.Fatal("HasVertex false for vertices created by AddEdge")
	}
	if g.HasVertex("") {
		t.Fatal("HasVertex(\"\") = true")
	}
}

func TestWeighted(t *testing.T) {
	if NewGraph().Weighted() {
		t.Fatal("Weighted() = true for default graph")
	}
	if !NewGraph(WithWeighted()).Weighted() {
		t.Fatal("Weighted() = false after WithWeighted()")
	}
}

func TestEdges_PreservesWeight(t *testing.T) {
	g := NewGraph(WithWeighted())
	mustAddEdge(t, g, "a", "b", 42)

	edges := g.Edges()
	if len(edges) != 1 || edges[0].Weight != 42 {
		t.Fatalf("got %+v, want single edge with weight 42", edges)
	}
}

func mustAddEdge(t *testing.T, g *Graph, from, to string, weight int64) {
	t.Helper()
	if _, err := g.AddEdge(from, to, weight); err != nil {
		t.Fatalf("AddEdge(%q, %q, %d): %v", from, to, weight, err)
	}
}

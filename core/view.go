package core

// UnweightedView returns a new Graph with g's topology but every weight
// zeroed and Weighted()==false; g itself is not mutated. Edge IDs are
// preserved, so a lookup keyed by g's edge IDs (e.g.
// lop.subtourComponents's railway-edge-id map) stays valid against the
// view. bfs.BFS rejects weighted graphs, which is why
// lop.subtourComponents takes this view before walking its per-attempt
// subtour graph.
func UnweightedView(g *Graph) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	for id := range g.vertices {
		out.vertices[id] = struct{}{}
		out.adjacency[id] = make(map[string]map[string]struct{})
	}
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: 0}
		out.edges[eid] = ne
		ensureAdjacency(out, ne.From, ne.To)
		out.adjacency[ne.From][ne.To][eid] = struct{}{}
		if ne.From != ne.To {
			ensureAdjacency(out, ne.To, ne.From)
			out.adjacency[ne.To][ne.From][eid] = struct{}{}
		}
	}

	return out
}

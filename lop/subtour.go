package lop

import (
	"context"
	"fmt"
	"sort"

	"github.com/haruta-rin/railtrail/bfs"
	"github.com/haruta-rin/railtrail/core"
	"github.com/haruta-rin/railtrail/mip"
	"github.com/haruta-rin/railtrail/railway"
)

// subtourComponents partitions leftoverX into its connected components
// (spec.md §4.3 "the driver walks each connected component of the
// leftover-X subgraph"). It builds a minimal core.Graph containing
// exactly the leftover edges — rather than an InducedSubgraph of the
// full network, which would keep every edge between two stations that
// happen to also be leftover-edge endpoints, not just the leftover
// edges themselves — then takes its core.UnweightedView (bfs.BFS
// rejects weighted graphs) to enumerate components.
//
// Each returned component is a sorted slice of railway edge ids; cut
// membership, not traversal order, is all the no-good cut needs (the
// human-readable walk order used for the diagnostic trace is produced
// separately by traceComponent).
func subtourComponents(ctx context.Context, network *railway.Network, leftoverX []int) ([][]int, error) {
	if len(leftoverX) == 0 {
		return nil, nil
	}

	weighted := core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	railwayIDOf := make(map[string]int, len(leftoverX))
	for _, id := range leftoverX {
		e := network.Edges[id]
		coreID, err := weighted.AddEdge(e.Station1, e.Station2, e.Weight(railway.WeightOperational))
		if err != nil {
			return nil, fmt.Errorf("lop: building subtour graph: %w", err)
		}
		railwayIDOf[coreID] = id
	}
	g := core.UnweightedView(weighted)

	visited := make(map[string]bool, len(g.Vertices()))
	var components [][]int
	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		res, err := bfs.BFS(ctx, g, v)
		if err != nil {
			return nil, fmt.Errorf("lop: walking subtour component: %w", err)
		}

		inComponent := make(map[string]bool, len(res.Order))
		for _, u := range res.Order {
			visited[u] = true
			inComponent[u] = true
		}

		var comp []int
		for _, e := range g.Edges() {
			if inComponent[e.From] {
				comp = append(comp, railwayIDOf[e.ID])
			}
		}
		sort.Ints(comp)
		components = append(components, comp)
	}

	return components, nil
}

// noGoodCut builds the constraint Σ_{e in component} (1 - x_e) >= 1
// (spec.md §4.3), forbidding the exact cycle without affecting any other
// feasible assignment.
func noGoodCut(m *Model, component []int) (terms []mip.Term, sense mip.Sense, rhs float64) {
	rhs = 1
	for _, edgeID := range component {
		terms = append(terms, mip.Term{Var: m.X[edgeID], Coeff: -1})
		rhs--
	}
	return terms, mip.Ge, rhs
}

// traceComponent walks component in station1/station2 adjacency-consuming
// order, purely for human-readable stderr output (spec.md §9's supplemented
// per-attempt trace); it does not affect which edges end up in the cut.
func traceComponent(network *railway.Network, component []int) []*railway.Edge {
	remaining := newEdgeSet(component)
	var trace []*railway.Edge

	for !remaining.empty() {
		station := network.Edges[remaining.values()[0]].Station1
		for {
			if id, ok := remaining.popMatching(network, stationIs1(station)); ok {
				e := network.Edges[id]
				trace = append(trace, orient(e, railway.Direction1to2))
				station = e.Station2
				continue
			}
			if id, ok := remaining.popMatching(network, stationIs2(station)); ok {
				e := network.Edges[id]
				trace = append(trace, orient(e, railway.Direction2to1))
				station = e.Station1
				continue
			}
			break
		}
	}

	return trace
}

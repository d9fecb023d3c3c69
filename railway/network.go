package railway

import (
	"sort"

	"github.com/haruta-rin/railtrail/core"
)

// Network is the loader's output (spec §4.1): the indexed edge array, a
// core.Graph mirroring station incidence, and the two constraint-group
// dictionaries. It is read-only after Load returns: the path extractor and
// the canonicalizer set Direction on copies of its edges, never on the
// loaded edges themselves.
type Network struct {
	Edges  []*Edge
	Groups *Groups

	graph        *core.Graph
	coreEdgeID   []string       // coreEdgeID[railway edge ID] -> core.Edge.ID
	railwayEdgeID map[string]int // core.Edge.ID -> railway edge ID
}

// Graph exposes the underlying core.Graph for read-only traversal.
func (n *Network) Graph() *core.Graph { return n.graph }

// CoreEdgeID returns the core.Graph edge ID mirroring railway edge id.
func (n *Network) CoreEdgeID(id int) string { return n.coreEdgeID[id] }

// RailwayEdgeID maps a core.Graph edge ID back to its railway Edge.ID.
// ok is false if coreID is not one of ours (e.g. belongs to a different
// graph entirely).
func (n *Network) RailwayEdgeID(coreID string) (int, bool) {
	id, ok := n.railwayEdgeID[coreID]
	return id, ok
}

// StationEdges returns the railway edge ids incident to station, sorted by
// id ascending, built from the mirrored core.Graph (spec §3 "Vertex
// incidence"). Returns nil if the station is unknown.
func (n *Network) StationEdges(station string) []int {
	coreEdges, err := n.graph.Neighbors(station)
	if err != nil {
		return nil
	}
	out := make([]int, 0, len(coreEdges))
	for _, ce := range coreEdges {
		if id, ok := n.railwayEdgeID[ce.ID]; ok {
			out = append(out, id)
		}
	}
	// core.Neighbors sorts by the textual Edge.ID ("e1" < "e10" < "e2"
	// lexicographically), which is not numeric load order once ids exceed
	// one digit; re-sort numerically by railway Edge.ID instead.
	sort.Ints(out)

	return out
}

// Stations returns every station name, sorted ascending.
func (n *Network) Stations() []string { return n.graph.Vertices() }

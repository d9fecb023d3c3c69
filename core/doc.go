// Package core provides the undirected, optionally-weighted, optionally-
// multi Graph type shared by railway.Network's station-incidence mirror
// and lop's per-attempt subtour-detection graph.
//
// Both call sites need the same small slice of graph behavior:
//
//   - station incidence: one vertex per station, one (weighted, multi)
//     edge per railway segment, queried for adjacency when building MIP
//     constraints.
//   - subtour detection: one vertex per station touched by the current
//     LP relaxation's leftover edges, one (unweighted, multi) edge per
//     leftover edge, walked with bfs.BFS to find connected components.
//
// Graph deliberately does not model directed or mixed-direction edges —
// a railway segment and a leftover incidence both connect two stations
// symmetrically — which keeps Neighbors, NeighborIDs, and UnweightedView
// free of per-edge orientation branching.
//
// Configuration (GraphOption):
//
//	WithWeighted()    permits non-zero edge weights; AddEdge(weight != 0)
//	                  on an unweighted graph returns ErrBadWeight.
//	WithMultiEdges()  allows parallel edges between the same two
//	                  vertices; otherwise a second AddEdge(from, to)
//	                  returns ErrMultiEdgeNotAllowed.
//	WithLoops()       permits self-loops (from == to); otherwise
//	                  AddEdge(v, v) returns ErrLoopNotAllowed.
//
// Core methods:
//
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	Vertices() []string
//	AddEdge(from, to string, weight int64) (edgeID string, err error)
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	Edges() []*Edge
//	Weighted() bool
//
// UnweightedView (view.go) derives a zero-weight copy of a Graph's
// topology, preserving edge IDs, for callers like bfs.BFS that refuse to
// walk a weighted graph.
//
// A single sync.RWMutex guards all state; neither call site shares a
// Graph across goroutines, so splitting vertex and edge locking would
// only add overhead here.
package core

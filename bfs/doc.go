// Package bfs finds the connected components of a core.Graph by
// breadth-first search.
//
// lop.subtourComponents is the only caller: after each solved attempt it
// takes the leftover X edges (selected by the solver but not reached by
// the main-path walk), builds an unweighted core.Graph from them, and calls BFS from each still-unvisited vertex
// to recover one subtour per connected component — the inputs to the
// next round of subtour-elimination constraints.
//
// Determinism
//
//	core.NeighborIDs returns sorted vertex IDs, and BFS enqueues
//	neighbors in that order, so the visit sequence (and therefore the
//	recovered subtour vertex set) is reproducible across runs of the
//	same graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
package bfs

// Package bfs provides breadth-first search over a core.Graph, returning
// visit order. lop.subtourComponents calls BFS once per unvisited vertex
// of a leftover-edge graph to partition it into connected components.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/haruta-rin/railtrail/core"
)

// ErrWeightedGraph is returned when BFS is run on a weighted graph.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth, for FIFO traversal.
type queueItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g starting from startID, returning
// every vertex reachable from it in visit order. ctx is checked once per
// dequeued vertex and once per neighbor, so a long subtour walk can be
// cancelled promptly.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph if g carries weights, or ErrNeighbors on a graph
// lookup failure.
func BFS(ctx context.Context, g *core.Graph, startID string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	vertices := g.Vertices()
	n := len(vertices)
	visited := make(map[string]bool, n)
	queue := make([]queueItem, 0, n)
	res := &BFSResult{Order: make([]string, 0, n)}

	enqueue := func(id string, depth int) {
		visited[id] = true
		queue = append(queue, queueItem{id: id, depth: depth})
	}
	enqueue(startID, 0)

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.id)

		neighbors, err := g.NeighborIDs(item.id)
		if err != nil {
			return res, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
		}
		for _, nbr := range neighbors {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			default:
			}
			if !visited[nbr] {
				enqueue(nbr, item.depth+1)
			}
		}
	}

	return res, nil
}

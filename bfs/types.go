// Package bfs provides error definitions and the result type for
// breadth-first search over a core.Graph.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// BFSResult holds the outcome of a BFS traversal: the vertices reachable
// from the start vertex, in visit order. lop.subtourComponents uses Order
// as a subtour's vertex set.
type BFSResult struct {
	Order []string
}

package lop

import "github.com/haruta-rin/railtrail/railway"

// Canonicalize normalizes the converged main path's output form under the
// symmetry group of its topological shape (spec.md §4.5): direction
// reversal for a line, rotation for a loop, stem/loop split-and-reverse
// for a lollipop, and arc reordering for the three bicyclic shapes
// (figure-eight, dumbbell, theta). Note the theta arc ordering is three
// specific pairwise swaps, not a general sort.
//
// An empty path is returned as is. Canonicalize does not mutate path or
// its edges: every reversal allocates fresh, re-oriented Edge copies, and
// parts that keep their orientation reuse the input's edges.
func Canonicalize(path []*railway.Edge) []*railway.Edge {
	if len(path) == 0 {
		return path
	}
	n := len(path)
	start0 := path[0].StationFrom()
	endN := path[n-1].StationTo()

	var loop1, loop2 []int
	for i := 0; i < n; i++ {
		if i > 0 && path[i].StationFrom() == start0 {
			loop1 = append(loop1, i)
		}
		if path[i].StationFrom() == endN {
			loop2 = append(loop2, i)
		}
	}

	switch {
	case len(loop1) == 0 && len(loop2) == 0:
		return canonicalizeLine(path)
	case len(loop2) == 1 && loop2[0] == 0:
		return canonicalizeLoop(path)
	case len(loop1) == 0:
		return canonicalizeLollipopStemFirst(path, loop2[0])
	case len(loop2) == 0:
		return canonicalizeLollipopLoopFirst(path, loop1[0])
	case len(loop2) > 1:
		return canonicalizeFigureEight(path, loop1[0])
	case loop1[0] < loop2[0]:
		return canonicalizeDumbbell(path, loop1[0], loop2[0])
	default:
		return canonicalizeTheta(path, loop1[0], loop2[0])
	}
}

// Shape L: reverse the whole path if its start exceeds its end
// lexicographically.
func canonicalizeLine(path []*railway.Edge) []*railway.Edge {
	if path[0].StationFrom() > path[len(path)-1].StationTo() {
		return reversePath(path)
	}
	return path
}

// Shape O: rotate so the lexicographically smallest station (by its
// first occurrence) sits at index 0, then reverse if the new path's
// start's outgoing neighbor exceeds its incoming neighbor.
func canonicalizeLoop(path []*railway.Edge) []*railway.Edge {
	minIdx := 0
	minStation := path[0].StationFrom()
	for i, e := range path {
		if e.StationFrom() < minStation {
			minStation = e.StationFrom()
			minIdx = i
		}
	}
	rotated := concat(path[minIdx:], path[:minIdx])
	return reverseIfStartExceedsEnd(rotated)
}

// Shape P, stem-first (loop2 = {id, ...}, loop1 empty): split at id into
// stem path[:id] and loop path[id:]; canonicalize the loop's direction
// and emit stem+loop unchanged otherwise.
func canonicalizeLollipopStemFirst(path []*railway.Edge, id int) []*railway.Edge {
	stem := path[:id]
	loop := reverseIfStartExceedsEnd(path[id:])
	return concat(stem, loop)
}

// Shape P, loop-first (loop1 = {id, ...}, loop2 empty): mirror of the
// stem-first case — split at id, reverse the stem, canonicalize the loop.
func canonicalizeLollipopLoopFirst(path []*railway.Edge, id int) []*railway.Edge {
	stem := path[id:]
	loop := reverseIfStartExceedsEnd(path[:id])
	return concat(reversePath(stem), loop)
}

// Shape B, figure-eight ("8"): two loops sharing one vertex, split at
// loop1[0]. Canonicalize each loop's direction, then emit in ascending
// order of each loop's outgoing-neighbor station.
func canonicalizeFigureEight(path []*railway.Edge, id int) []*railway.Edge {
	loopA := reverseIfStartExceedsEnd(path[:id])
	loopB := reverseIfStartExceedsEnd(path[id:])
	if loopA[0].StationTo() < loopB[0].StationTo() {
		return concat(loopA, loopB)
	}
	return concat(loopB, loopA)
}

// Shape B, dumbbell ("呂"): two loops joined by a bridge, id1 = loop1[0]
// < id2 = loop2[0]. Canonicalize both loops, then orient the whole
// (loop, bridge, loop) sequence so the smaller loop's start station
// comes first.
func canonicalizeDumbbell(path []*railway.Edge, id1, id2 int) []*railway.Edge {
	loop1 := reverseIfStartExceedsEnd(path[:id1])
	bridge := path[id1:id2]
	loop2 := reverseIfStartExceedsEnd(path[id2:])

	if loop1[0].StationFrom() < loop2[0].StationFrom() {
		return concat(loop1, bridge, loop2)
	}
	return concat(loop2, reversePath(bridge), loop1)
}

// Shape B, theta ("日"): three internally-disjoint arcs between two
// nodes, id1 = loop1[0] >= id2 = loop2[0]. Sort the three arcs via three
// specific pairwise swaps (not a general sort) so that the resulting
// (start-endpoint order, end-endpoint order) is lexicographically
// minimal, matching the source's exact swap sequence.
func canonicalizeTheta(path []*railway.Edge, id1, id2 int) []*railway.Edge {
	arc1 := path[:id2]
	arc2 := reversePath(path[id2:id1])
	arc3 := path[id1:]

	if arc1[0].StationFrom() > arc1[len(arc1)-1].StationTo() {
		arc1 = reversePath(arc1)
		arc2 = reversePath(arc2)
		arc3 = reversePath(arc3)
	}
	if arc1[0].StationTo() > arc2[0].StationTo() {
		arc1, arc2 = arc2, arc1
	}
	if arc1[0].StationTo() > arc3[0].StationTo() {
		arc1, arc3 = arc3, arc1
	}
	if arc2[len(arc2)-1].StationFrom() > arc3[len(arc3)-1].StationFrom() {
		arc2, arc3 = arc3, arc2
	}

	return concat(arc1, reversePath(arc2), arc3)
}

// reverseIfStartExceedsEnd reverses path when its first edge's end
// station exceeds its last edge's start station lexicographically; this
// exact comparison recurs across every loop/arc canonicalization above.
func reverseIfStartExceedsEnd(path []*railway.Edge) []*railway.Edge {
	if len(path) == 0 {
		return path
	}
	if path[0].StationTo() > path[len(path)-1].StationFrom() {
		return reversePath(path)
	}
	return path
}

// reversePath reverses path's order and each edge's direction tag,
// without mutating the input (spec.md §9's "model as a separate
// per-output-edge field rather than mutating the edge" note).
func reversePath(path []*railway.Edge) []*railway.Edge {
	out := make([]*railway.Edge, len(path))
	for i, e := range path {
		out[len(path)-1-i] = e.Reversed()
	}
	return out
}

// concat flattens parts into a single fresh slice.
func concat(parts ...[]*railway.Edge) []*railway.Edge {
	var out []*railway.Edge
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

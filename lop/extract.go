package lop

import (
	"fmt"
	"sort"

	"github.com/haruta-rin/railtrail/railway"
)

// edgeSet is a sorted, mutable set of railway edge ids, used by extract to
// implement a "pick the first matching candidate" selection rule (spec.md
// §4.4): candidates are always considered in ascending edge-id order, so the
// lowest-id match wins whenever more than one edge could extend the walk.
type edgeSet struct {
	ids []int
}

func newEdgeSet(ids []int) *edgeSet {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	return &edgeSet{ids: sorted}
}

func (s *edgeSet) empty() bool { return len(s.ids) == 0 }

// popFirst removes and returns the lowest remaining id.
func (s *edgeSet) popFirst() int {
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

// popMatching removes and returns the lowest remaining id whose edge
// satisfies pred, or ok=false if none does.
func (s *edgeSet) popMatching(network *railway.Network, pred func(e *railway.Edge) bool) (id int, ok bool) {
	for i, candidate := range s.ids {
		if pred(network.Edges[candidate]) {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return candidate, true
		}
	}
	return 0, false
}

func (s *edgeSet) values() []int { return append([]int(nil), s.ids...) }

// extract walks the main path from one terminal to the other (spec.md
// §4.4), given the thresholded X/Y/Z edge-id sets from one solved
// attempt. It returns the ordered, oriented trail and the leftover X
// edge ids the walk could not reach (the attempt's subtours).
//
// Steps:
//  1. Seed: pop a Y edge oriented station1->station2, or else a Z edge
//     oriented station2->station1. Both empty is an invariant violation.
//  2. Extend, in priority order, via an X edge leaving the current
//     station (either orientation), or terminate via a Z/Y edge that
//     closes the trail at its other terminal. No match is an invariant
//     violation (the trail broke mid-path).
//
// Complexity: O(E²) worst case (each step scans the remaining candidate
// set), acceptable at the scale of one railway network's edge count.
func extract(network *railway.Network, xs, ys, zs []int) (path []*railway.Edge, leftoverX []int, err error) {
	xSet := newEdgeSet(xs)
	ySet := newEdgeSet(ys)
	zSet := newEdgeSet(zs)

	var current string

	switch {
	case !ySet.empty():
		e := network.Edges[ySet.popFirst()]
		path = append(path, orient(e, railway.Direction1to2))
		current = e.Station2
	case !zSet.empty():
		e := network.Edges[zSet.popFirst()]
		path = append(path, orient(e, railway.Direction2to1))
		current = e.Station1
	default:
		return nil, nil, fmt.Errorf("%w: no terminal edge available to seed the main path", ErrExtractionBroken)
	}

	for {
		if id, ok := xSet.popMatching(network, stationIs1(current)); ok {
			e := network.Edges[id]
			path = append(path, orient(e, railway.Direction1to2))
			current = e.Station2
			continue
		}
		if id, ok := xSet.popMatching(network, stationIs2(current)); ok {
			e := network.Edges[id]
			path = append(path, orient(e, railway.Direction2to1))
			current = e.Station1
			continue
		}
		if id, ok := zSet.popMatching(network, stationIs1(current)); ok {
			e := network.Edges[id]
			path = append(path, orient(e, railway.Direction1to2))
			break
		}
		if id, ok := ySet.popMatching(network, stationIs2(current)); ok {
			e := network.Edges[id]
			path = append(path, orient(e, railway.Direction2to1))
			break
		}
		return nil, nil, fmt.Errorf("%w: trail broke at station %q", ErrExtractionBroken, current)
	}

	return path, xSet.values(), nil
}

func stationIs1(station string) func(*railway.Edge) bool {
	return func(e *railway.Edge) bool { return e.Station1 == station }
}

func stationIs2(station string) func(*railway.Edge) bool {
	return func(e *railway.Edge) bool { return e.Station2 == station }
}

// orient returns a copy of e with its Direction set to dir, leaving e
// itself untouched (spec.md §3: direction is output metadata, not a
// modeling attribute of the shared Edge).
func orient(e *railway.Edge, dir railway.Direction) *railway.Edge {
	oriented := *e
	oriented.Direction = dir
	return &oriented
}

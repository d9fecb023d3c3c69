package lop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haruta-rin/railtrail/railway"
)

// seg builds a test edge already oriented from->to, mirroring what extract
// would have produced.
func seg(from, to string) *railway.Edge {
	return &railway.Edge{
		Station1: from, Station2: to,
		DistanceKmA: 1, DistanceKmB: 1, DistanceKmC: 1,
		Direction: railway.Direction1to2,
	}
}

func stations(path []*railway.Edge) []string {
	out := make([]string, 0, len(path)+1)
	for i, e := range path {
		if i == 0 {
			out = append(out, e.StationFrom())
		}
		out = append(out, e.StationTo())
	}
	return out
}

func TestCanonicalize_LineAlreadyAscendingIsUnchanged(t *testing.T) {
	path := []*railway.Edge{seg("A", "B"), seg("B", "C")}
	got := Canonicalize(path)
	require.Equal(t, []string{"A", "B", "C"}, stations(got))
}

func TestCanonicalize_LineDescendingIsReversed(t *testing.T) {
	path := []*railway.Edge{seg("C", "B"), seg("B", "A")}
	got := Canonicalize(path)
	require.Equal(t, []string{"A", "B", "C"}, stations(got))
}

func TestCanonicalize_LoopRotatesToLexMinStation(t *testing.T) {
	path := []*railway.Edge{seg("A", "B"), seg("B", "C"), seg("C", "A")}
	got := Canonicalize(path)
	require.Equal(t, []string{"A", "B", "C", "A"}, stations(got))
}

func TestCanonicalize_LoopStartingElsewhereRotatesToSameForm(t *testing.T) {
	path := []*railway.Edge{seg("B", "C"), seg("C", "A"), seg("A", "B")}
	got := Canonicalize(path)
	require.Equal(t, []string{"A", "B", "C", "A"}, stations(got))
}

func TestCanonicalize_LollipopStemFirstUnchangedWhenCanonical(t *testing.T) {
	path := []*railway.Edge{seg("X", "A"), seg("A", "B"), seg("B", "C"), seg("C", "A")}
	got := Canonicalize(path)
	require.Equal(t, []string{"X", "A", "B", "C", "A"}, stations(got))
}

func TestCanonicalize_LollipopLoopFirstMatchesStemFirstForm(t *testing.T) {
	path := []*railway.Edge{seg("A", "B"), seg("B", "C"), seg("C", "A"), seg("A", "X")}
	got := Canonicalize(path)
	require.Equal(t, []string{"X", "A", "B", "C", "A"}, stations(got))
}

func TestCanonicalize_FigureEightOrdersLoopsByOutgoingStation(t *testing.T) {
	path := []*railway.Edge{seg("O", "P"), seg("P", "O"), seg("O", "Q"), seg("Q", "O")}
	got := Canonicalize(path)
	require.Equal(t, []string{"O", "P", "O", "Q", "O"}, stations(got))
}

func TestCanonicalize_FigureEightReorderedInputConvergesToSameForm(t *testing.T) {
	path := []*railway.Edge{seg("O", "Q"), seg("Q", "O"), seg("O", "P"), seg("P", "O")}
	got := Canonicalize(path)
	require.Equal(t, []string{"O", "P", "O", "Q", "O"}, stations(got))
}

func TestCanonicalize_DumbbellUnchangedWhenAlreadyCanonical(t *testing.T) {
	path := []*railway.Edge{
		seg("A", "B"), seg("B", "A"),
		seg("A", "C"),
		seg("C", "D"), seg("D", "C"),
	}
	got := Canonicalize(path)
	require.Equal(t, []string{"A", "B", "A", "C", "D", "C"}, stations(got))
}

func TestCanonicalize_ThetaDoesNotPanicAndPreservesEndpoints(t *testing.T) {
	path := []*railway.Edge{seg("X", "Y"), seg("Y", "X"), seg("X", "Y")}
	got := Canonicalize(path)
	require.Len(t, got, 3)
	require.Equal(t, "X", got[0].StationFrom())
	require.Equal(t, "X", got[len(got)-1].StationTo())
}

func TestCanonicalize_EmptyPathIsNoop(t *testing.T) {
	require.Empty(t, Canonicalize(nil))
}

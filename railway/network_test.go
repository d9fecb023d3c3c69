package railway_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haruta-rin/railtrail/railway"
)

func TestNetwork_StationEdgesOrdering(t *testing.T) {
	// Hub has 11 incident edges so core's lexicographic "eN" sort ("e1" <
	// "e10" < "e2" < ...) would misorder them if StationEdges relied on it
	// directly; this pins the numeric re-sort.
	var lines []string
	for i := 0; i < 11; i++ {
		lines = append(lines, fmt.Sprintf("JR\tA\tHub\tLeaf%d\t1\t1\t1", i))
	}
	n, err := railway.Load(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)

	got := n.StationEdges("Hub")
	want := make([]int, 11)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, got)
}

func TestNetwork_StationEdgesUnknownStation(t *testing.T) {
	n, err := railway.Load(strings.NewReader("JR\tA\tX\tY\t1\t1\t1"))
	require.NoError(t, err)
	require.Nil(t, n.StationEdges("nowhere"))
}

func TestNetwork_CoreEdgeIDRoundTrip(t *testing.T) {
	n, err := railway.Load(strings.NewReader("JR\tA\tX\tY\t1\t1\t1"))
	require.NoError(t, err)

	coreID := n.CoreEdgeID(0)
	require.NotEmpty(t, coreID)

	railwayID, ok := n.RailwayEdgeID(coreID)
	require.True(t, ok)
	require.Equal(t, 0, railwayID)

	_, ok = n.RailwayEdgeID("not-a-real-id")
	require.False(t, ok)
}

package railway_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haruta-rin/railtrail/railway"
)

func TestEdge_Weight(t *testing.T) {
	e := &railway.Edge{DistanceKmA: 10, DistanceKmB: 20, DistanceKmC: 30}
	require.Equal(t, int64(10), e.Weight(railway.WeightOperational))
	require.Equal(t, int64(20), e.Weight(railway.WeightFare))
	require.Equal(t, int64(30), e.Weight(railway.WeightEffective))
}

func TestEdge_DirectionAndReversed(t *testing.T) {
	e := &railway.Edge{Station1: "X", Station2: "Y"}

	require.Equal(t, "X", e.StationFrom())
	require.Equal(t, "Y", e.StationTo())

	e.Direction = railway.Direction2to1
	require.Equal(t, "Y", e.StationFrom())
	require.Equal(t, "X", e.StationTo())

	r := e.Reversed()
	require.Equal(t, railway.Direction1to2, r.Direction)
	require.Equal(t, railway.Direction2to1, e.Direction, "Reversed must not mutate the receiver")
}

func TestEdge_TSV(t *testing.T) {
	e := &railway.Edge{
		Company: "JR", Line: "Tokaido",
		Station1: "Tokyo", Station2: "Shinagawa",
		DistanceKmA: 7, DistanceKmB: 7, DistanceKmC: 7,
	}
	require.Equal(t, "JR\tTokaido\tTokyo\tShinagawa\t7\t7\t7", e.TSV())

	e.Direction = railway.Direction2to1
	require.Equal(t, "JR\tTokaido\tShinagawa\tTokyo\t7\t7\t7", e.TSV())
}

func TestParseWeightKind(t *testing.T) {
	cases := map[string]railway.WeightKind{
		"":  railway.WeightOperational,
		"A": railway.WeightOperational,
		"a": railway.WeightOperational,
		"B": railway.WeightFare,
		"b": railway.WeightFare,
		"C": railway.WeightEffective,
		"c": railway.WeightEffective,
	}
	for in, want := range cases {
		got, err := railway.ParseWeightKind(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := railway.ParseWeightKind("Z")
	require.ErrorIs(t, err, railway.ErrUnknownWeightKind)
}

func TestWeightKind_String(t *testing.T) {
	require.Equal(t, "A", railway.WeightOperational.String())
	require.Equal(t, "B", railway.WeightFare.String())
	require.Equal(t, "C", railway.WeightEffective.String())
	require.Equal(t, "?", railway.WeightKind(99).String())
}

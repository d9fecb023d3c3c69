package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haruta-rin/railtrail/railway"
)

func TestApplyFlagOverrides_OnlySetFlagsWin(t *testing.T) {
	cfg = defaultConfig()
	weightFlag, logPathFlag, threadsFlag = "B", "", 0

	applyFlagOverrides()

	require.Equal(t, "B", cfg.Weight)
	require.Equal(t, "pulp.log", cfg.LogPath)
	require.Equal(t, 1, cfg.Threads)

	weightFlag, logPathFlag, threadsFlag = "", "", 0
}

func TestWritePath_EmitsTSVPerEdgeAndFlushes(t *testing.T) {
	edges := []*railway.Edge{
		{Company: "JR", Line: "A", Station1: "X", Station2: "Y", DistanceKmA: 1, DistanceKmB: 1, DistanceKmC: 1, Direction: railway.Direction1to2},
	}
	var buf bytes.Buffer
	require.NoError(t, writePath(&buf, edges))
	require.Equal(t, edges[0].TSV()+"\n", buf.String())
}

package diagnostics_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haruta-rin/railtrail/diagnostics"
	"github.com/haruta-rin/railtrail/railway"
)

func TestLogger_WritesAttemptAndObjective(t *testing.T) {
	var buf bytes.Buffer
	logger := diagnostics.New(&buf)

	logger.Attempt(1)
	logger.Objective(42)

	out := buf.String()
	require.Contains(t, out, "attempt 1")
	require.Contains(t, out, "objective: 42")
}

func TestLogger_WritesPathBannersAndEdges(t *testing.T) {
	var buf bytes.Buffer
	logger := diagnostics.New(&buf)

	e := &railway.Edge{Company: "JR", Line: "A", Station1: "X", Station2: "Y", DistanceKmA: 1, DistanceKmB: 1, DistanceKmC: 1}

	logger.MajorPathBanner()
	logger.MajorPathEdge(e)
	logger.MinorLoopBanner()
	logger.MinorLoopEdge(e)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "[major path]", lines[0])
	require.Equal(t, e.TSV(), lines[1])
	require.Equal(t, "[minor loop]", lines[2])
	require.Equal(t, e.TSV(), lines[3])
}

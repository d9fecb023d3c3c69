package mip_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haruta-rin/railtrail/mip"
)

func TestProblem_CloneIsIndependent(t *testing.T) {
	p := mip.NewProblem()
	x := p.AddBinary("x")
	p.AddConstraint("c", []mip.Term{{Var: x, Coeff: 1}}, mip.Le, 1)

	c := p.Clone()
	c.Variables[x].Upper = 0
	c.Constraints[0].RHS = 5

	require.Equal(t, 1.0, p.Variables[x].Upper)
	require.Equal(t, 1.0, p.Constraints[0].RHS)
	require.Equal(t, 0.0, c.Variables[x].Upper)
	require.Equal(t, 5.0, c.Constraints[0].RHS)
}

func TestSolution_IsOneAndValueAt(t *testing.T) {
	sol := mip.Solution{Values: []float64{0.995, 0.5, 0}}
	require.True(t, sol.IsOne(0))
	require.False(t, sol.IsOne(1))
	require.Equal(t, 0.0, sol.ValueAt(99))
}

func TestProblem_AddCutAppendsConstraint(t *testing.T) {
	p := mip.NewProblem()
	x := p.AddBinary("x")
	before := len(p.Constraints)
	p.AddCut("no-good", []mip.Term{{Var: x, Coeff: 1}}, mip.Le, 0)
	require.Equal(t, before+1, len(p.Constraints))
}

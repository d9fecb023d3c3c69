package lop

import (
	"github.com/haruta-rin/railtrail/mip"
	"github.com/haruta-rin/railtrail/railway"
)

// Model is the constructed ILP handle (spec.md §3 "ILP variable triple",
// §4.2): the mip.Problem plus the X/Y/Z variable-index arrays, indexed by
// railway edge id, that the driver and no-good-cut logic need to keep
// extending the problem across attempts.
type Model struct {
	Network *railway.Network
	Weight  railway.WeightKind

	Problem *mip.Problem

	// X[e]/Y[e]/Z[e] are the mip.Problem variable indices for railway
	// edge e's interior/terminal-at-station1/terminal-at-station2
	// indicators.
	X, Y, Z []int
}

// UsedTerms returns the three-term u_e = x_e + y_e + z_e expansion for
// edge e, the "used-indicator" spec.md §3 defines.
func (m *Model) UsedTerms(edgeID int) []mip.Term {
	return []mip.Term{
		{Var: m.X[edgeID], Coeff: 1},
		{Var: m.Y[edgeID], Coeff: 1},
		{Var: m.Z[edgeID], Coeff: 1},
	}
}

// Build constructs the ILP encoding of the trail problem over network
// under weight (spec.md §4.2): the variable triple per edge, the
// maximization objective, the terminal-count and per-edge mutual-
// exclusion constraints, vertex balance for every station, and the
// disjunctive/exclusive group constraints. The returned Model's Problem
// has no no-good cuts yet; the driver appends those across attempts.
//
// Steps:
//  1. Allocate three binary variables per edge (x/y/z), named for
//     diagnostic legibility.
//  2. Objective: Σ weight(e)·u_e, maximized.
//  3. Terminal-count: Σ (y_e + z_e) == 2.
//  4. Per-edge mutual exclusion: u_e <= 1.
//  5. Vertex balance per station v: S(v) <= 2, and S(v) >= 2w for every
//     half-traversal variable w touching v (spec.md §4.2's quadratic-in-
//     per-vertex-degree constraint count; see DESIGN.md for why the
//     auxiliary-binary alternative spec.md §9 notes was not taken).
//  6. Disjunctive groups: Σ polarity-adjusted u_e >= 1.
//  7. Exclusive groups: Σ coefficient·u_e <= railway.LargeCoeff.
//
// Complexity: O(E) variables and most constraints; vertex balance adds
// O(Σ_v deg(v)²) = O(E·maxDegree) constraint rows in the worst case.
func Build(network *railway.Network, weight railway.WeightKind) *Model {
	problem := mip.NewProblem()
	n := len(network.Edges)

	m := &Model{
		Network: network,
		Weight:  weight,
		Problem: problem,
		X:       make([]int, n),
		Y:       make([]int, n),
		Z:       make([]int, n),
	}

	var objective []mip.Term
	for i, e := range network.Edges {
		m.X[i] = problem.AddBinary(varName("x", i))
		m.Y[i] = problem.AddBinary(varName("y", i))
		m.Z[i] = problem.AddBinary(varName("z", i))

		w := float64(e.Weight(weight))
		if w != 0 {
			objective = append(objective,
				mip.Term{Var: m.X[i], Coeff: w},
				mip.Term{Var: m.Y[i], Coeff: w},
				mip.Term{Var: m.Z[i], Coeff: w},
			)
		}

		problem.AddConstraint("mutex-"+varName("e", i), m.UsedTerms(i), mip.Le, 1)
	}
	problem.SetObjective(objective)

	var terminalTerms []mip.Term
	for i := range network.Edges {
		terminalTerms = append(terminalTerms, mip.Term{Var: m.Y[i], Coeff: 1}, mip.Term{Var: m.Z[i], Coeff: 1})
	}
	problem.AddConstraint("terminal-count", terminalTerms, mip.Eq, 2)

	buildVertexBalance(problem, m, network)
	buildDisjunctiveGroups(problem, m, network)
	buildExclusiveGroups(problem, m, network)

	return m
}

// buildVertexBalance adds, for every station v, S(v) <= 2 and S(v) >= 2w
// for every half-traversal variable w in V(v) (spec.md §4.2). V(v) holds
// x_e for every edge at v, y_e for edges whose Station2 is v, and z_e for
// edges whose Station1 is v: a terminal edge counts at the end where it
// joins the rest of the trail, not at the trail's terminal station (extract
// seeds a Y edge at its Station1 and closes on a Z edge at its Station2).
func buildVertexBalance(problem *mip.Problem, m *Model, network *railway.Network) {
	for _, station := range network.Stations() {
		var vars []int
		for _, edgeID := range network.StationEdges(station) {
			e := network.Edges[edgeID]
			vars = append(vars, m.X[edgeID])
			if e.Station2 == station {
				vars = append(vars, m.Y[edgeID])
			}
			if e.Station1 == station {
				vars = append(vars, m.Z[edgeID])
			}
		}
		if len(vars) == 0 {
			continue
		}

		sumTerms := make([]mip.Term, len(vars))
		for i, v := range vars {
			sumTerms[i] = mip.Term{Var: v, Coeff: 1}
		}
		problem.AddConstraint("balance-"+station, sumTerms, mip.Le, 2)

		for _, w := range vars {
			terms := make([]mip.Term, 0, len(vars)+1)
			terms = append(terms, mip.Term{Var: w, Coeff: 2})
			for _, v := range vars {
				terms = append(terms, mip.Term{Var: v, Coeff: -1})
			}
			problem.AddConstraint("balance-touch-"+station, terms, mip.Le, 0)
		}
	}
}

// buildDisjunctiveGroups adds, per group, Σ polarity-adjusted u_e >= 1
// (spec.md §3, §4.2): a true-polarity literal contributes +u_e, a
// false-polarity literal contributes (1 - u_e), folded into a single
// linear row by moving every literal's constant term to the RHS.
func buildDisjunctiveGroups(problem *mip.Problem, m *Model, network *railway.Network) {
	for name, literals := range network.Groups.Disjunctive {
		var terms []mip.Term
		falseCount := 0
		for _, lit := range literals {
			sign := 1.0
			if !lit.Polarity {
				sign = -1.0
				falseCount++
			}
			for _, t := range m.UsedTerms(lit.EdgeID) {
				terms = append(terms, mip.Term{Var: t.Var, Coeff: sign * t.Coeff})
			}
		}
		rhs := 1.0 - float64(falseCount)
		problem.AddConstraint("disjunctive-"+name, terms, mip.Ge, rhs)
	}
}

// buildExclusiveGroups adds, per group, Σ coefficient·u_e <=
// railway.LargeCoeff (spec.md §3, §4.2).
func buildExclusiveGroups(problem *mip.Problem, m *Model, network *railway.Network) {
	for name, group := range network.Groups.Exclusive {
		var terms []mip.Term
		for _, term := range group {
			coeff := float64(term.Coefficient)
			for _, t := range m.UsedTerms(term.EdgeID) {
				terms = append(terms, mip.Term{Var: t.Var, Coeff: coeff * t.Coeff})
			}
		}
		problem.AddConstraint("exclusive-"+name, terms, mip.Le, float64(railway.LargeCoeff))
	}
}

// varName renders a binary-variable name "<role><edgeID>" for diagnostic
// legibility (e.g. "x3"); it plays no role in solving.
func varName(role string, edgeID int) string {
	return role + itoaSmall(edgeID)
}

func itoaSmall(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

package mip

// bigM is the Big-M penalty applied to artificial variables. It must
// dominate any feasible combination of real objective coefficients;
// railway edge weights and the exclusive-group sentinel coefficient
// (railway.LargeCoeff = 1000) are both far smaller, so 1e9 leaves ample
// margin without risking float64 precision loss in the pivot arithmetic.
const bigM = 1e9

// maxSimplexIterations bounds the pivot loop. Bland's rule (smallest-index
// entering/leaving choice, see below) makes cycling — and therefore
// exceeding this cap — unreachable in exact arithmetic; it exists purely
// as a defensive backstop against unanticipated degeneracy.
const maxSimplexIterations = 20000

// rowSpec is one constraint row after normalization to RHS >= 0 form,
// computed once per solveLP call.
type rowSpec struct {
	terms []Term
	sense Sense
	rhs   float64
}

// solveLP solves problem's continuous relaxation (Variable.Integer is
// ignored) via the two-phase-free Big-M simplex method: every Ge/Eq row
// gets an artificial variable seeded at a Big-M penalty, so a single
// solve both finds feasibility and optimizes in one pass.
//
// Steps:
//  1. Normalize objective to a maximization sense (negate and flip back if
//     problem.Maximize is false).
//  2. Build the row list: problem.Constraints, plus one bound row per
//     variable with a finite Upper and one per variable with a positive
//     Lower.
//  3. Normalize each row to RHS >= 0, assign slack/surplus/artificial
//     columns, and build the initial tableau with its seeded basis.
//  4. Pivot via Bland's rule until no negative reduced cost remains, or
//     report Unbounded if some entering column has no eligible leaving row.
//  5. If any artificial variable remains basic with a nonzero value,
//     report Infeasible; otherwise extract structural variable values and
//     recompute the objective directly from problem.Objective (sidestepping
//     any Big-M contamination in the tableau's own z-row value).
//
// Complexity: O(iterations * rows * cols); iterations are not polynomially
// bounded in general (classical simplex), but problem sizes in this domain
// (one row per edge-variable bound plus a handful of structural
// constraints) keep this fast in practice.
func solveLP(problem *Problem) (Solution, error) {
	n := len(problem.Variables)
	if n == 0 {
		return Solution{}, ErrNoVariables
	}
	if err := problem.validate(); err != nil {
		return Solution{}, err
	}

	sign := 1.0
	if !problem.Maximize {
		sign = -1.0
	}
	objCoef := make([]float64, n)
	for _, t := range problem.Objective {
		objCoef[t.Var] += sign * t.Coeff
	}

	rows := buildRowSpecs(problem)
	m := len(rows)

	numSlack, numSurplus, numArtificial := 0, 0, 0
	slackOf := make([]int, m)
	surplusOf := make([]int, m)
	artOf := make([]int, m)
	for i := range slackOf {
		slackOf[i], surplusOf[i], artOf[i] = -1, -1, -1
	}
	for i, r := range rows {
		switch r.sense {
		case Le:
			slackOf[i] = numSlack
			numSlack++
		case Ge:
			surplusOf[i] = numSurplus
			numSurplus++
			artOf[i] = numArtificial
			numArtificial++
		case Eq:
			artOf[i] = numArtificial
			numArtificial++
		}
	}

	slackBase := n
	surplusBase := slackBase + numSlack
	artBase := surplusBase + numSurplus
	totalVars := artBase + numArtificial
	cols := totalVars + 1

	t := newTableau(m+1, cols)
	basis := make([]int, m)

	for i, r := range rows {
		for _, term := range r.terms {
			t.set(i, term.Var, t.at(i, term.Var)+term.Coeff)
		}
		t.set(i, t.rhsCol(), r.rhs)
		switch r.sense {
		case Le:
			col := slackBase + slackOf[i]
			t.set(i, col, 1)
			basis[i] = col
		case Ge:
			t.set(i, surplusBase+surplusOf[i], -1)
			col := artBase + artOf[i]
			t.set(i, col, 1)
			basis[i] = col
		case Eq:
			col := artBase + artOf[i]
			t.set(i, col, 1)
			basis[i] = col
		}
	}

	cost := make([]float64, totalVars)
	for j := 0; j < n; j++ {
		cost[j] = objCoef[j]
	}
	for j := artBase; j < totalVars; j++ {
		cost[j] = -bigM
	}

	objRow := t.objRow()
	for j := 0; j < totalVars; j++ {
		z := 0.0
		for i := 0; i < m; i++ {
			z += cost[basis[i]] * t.at(i, j)
		}
		t.set(objRow, j, z-cost[j])
	}
	zRHS := 0.0
	for i := 0; i < m; i++ {
		zRHS += cost[basis[i]] * t.at(i, t.rhsCol())
	}
	t.set(objRow, t.rhsCol(), zRHS)

	for iter := 0; ; iter++ {
		if iter >= maxSimplexIterations {
			return Solution{}, ErrIterationLimit
		}

		enter := -1
		for j := 0; j < totalVars; j++ {
			if t.at(objRow, j) < -eps {
				enter = j
				break
			}
		}
		if enter == -1 {
			break
		}

		leave := -1
		bestRatio := 0.0
		for i := 0; i < m; i++ {
			v := t.at(i, enter)
			if v <= eps {
				continue
			}
			ratio := t.at(i, t.rhsCol()) / v
			if leave == -1 || ratio < bestRatio-eps ||
				(ratio < bestRatio+eps && basis[i] < basis[leave]) {
				leave = i
				bestRatio = ratio
			}
		}
		if leave == -1 {
			return Solution{Status: StatusUnbounded}, nil
		}

		t.pivot(leave, enter)
		basis[leave] = enter
	}

	for i := 0; i < m; i++ {
		if basis[i] >= artBase && t.at(i, t.rhsCol()) > eps {
			return Solution{Status: StatusInfeasible}, nil
		}
	}

	values := make([]float64, n)
	for i := 0; i < m; i++ {
		if basis[i] < n {
			values[basis[i]] = t.at(i, t.rhsCol())
		}
	}

	obj := 0.0
	for _, tm := range problem.Objective {
		obj += tm.Coeff * values[tm.Var]
	}

	return Solution{Status: StatusOptimal, Objective: obj, Values: values}, nil
}

// buildRowSpecs lowers problem.Constraints plus each variable's bound box
// into a flat rowSpec list, normalizing every row to RHS >= 0 (negating a
// row and flipping its sense if its RHS arrived negative, since the
// Big-M construction below assumes a nonnegative RHS).
func buildRowSpecs(problem *Problem) []rowSpec {
	rows := make([]rowSpec, 0, len(problem.Constraints)+len(problem.Variables))
	for _, c := range problem.Constraints {
		rows = append(rows, normalizeRow(c.Terms, c.Sense, c.RHS))
	}
	for i, v := range problem.Variables {
		if !isInf(v.Upper) {
			rows = append(rows, normalizeRow([]Term{{Var: i, Coeff: 1}}, Le, v.Upper))
		}
		if v.Lower > eps {
			rows = append(rows, normalizeRow([]Term{{Var: i, Coeff: 1}}, Ge, v.Lower))
		}
	}
	return rows
}

func normalizeRow(terms []Term, sense Sense, rhs float64) rowSpec {
	if rhs >= 0 {
		return rowSpec{terms: terms, sense: sense, rhs: rhs}
	}
	flipped := make([]Term, len(terms))
	for i, t := range terms {
		flipped[i] = Term{Var: t.Var, Coeff: -t.Coeff}
	}
	newSense := sense
	switch sense {
	case Le:
		newSense = Ge
	case Ge:
		newSense = Le
	}
	return rowSpec{terms: flipped, sense: newSense, rhs: -rhs}
}

func isInf(v float64) bool {
	return v > 1e18
}

package mip

import "math"

// BranchAndBound is the Solver this package ships: a depth-first
// branch-and-bound search over the Big-M simplex LP relaxation, proving
// integrality for every Variable whose Integer flag is set. The engine
// shape — a dedicated struct carrying configuration, the best-incumbent
// state, and a node stack, rather than recursive closures — favors
// explicit dependencies, simple testing, and predictable hot-path state.
//
// The solver driver depends only on this package's Solver interface, so
// a callback-based lazy-constraint solver could be substituted later
// without changing driver semantics; this restart-from-scratch-per-attempt
// branch-and-bound fulfills that contract today.
type BranchAndBound struct {
	// Threads is a configuration value threaded through from the CLI's
	// --threads flag (SPEC_FULL.md §6.2). This from-scratch search does
	// not itself parallelize explored nodes and does not read the value
	// (see SPEC_FULL.md §5).
	Threads int

	// MaxNodes caps the number of branch-and-bound nodes explored, a
	// defensive backstop (not part of the specified contract) against a
	// pathological input exhausting memory; 0 means unlimited.
	MaxNodes int
}

// NewBranchAndBound returns a BranchAndBound configured with the given
// thread-cap hint (clamped to at least 1).
func NewBranchAndBound(threads int) *BranchAndBound {
	if threads < 1 {
		threads = 1
	}
	return &BranchAndBound{Threads: threads}
}

// bbEngine holds one Solve call's search state: the best integral
// incumbent found so far and a LIFO stack of pending relaxations.
type bbEngine struct {
	bb *BranchAndBound

	stack []*Problem

	hasIncumbent bool
	incumbent    Solution

	nodes int
}

// Solve runs branch-and-bound to optimality: every relaxation node with a
// fractional Integer-flagged variable spawns two children with that
// variable's bound tightened to floor/ceil, pruned whenever its relaxed
// objective cannot beat the current incumbent.
//
// Steps:
//  1. Solve the root relaxation; if infeasible or unbounded, report that
//     status immediately (no integral solution can exist either).
//  2. Push the root node; repeatedly pop a node, solve its relaxation,
//     and:
//     a. skip if already worse-or-equal to the incumbent (bound pruning);
//     b. if the relaxation is already integral on every Integer variable,
//     update the incumbent;
//     c. otherwise pick the first fractional Integer variable (lowest
//     index, for determinism) and push floor/ceil children.
//  3. Return the best incumbent found, or ErrInfeasible if none exists.
//
// Complexity: worst-case exponential in the number of integer variables
// (exact search); effective speed depends entirely on bound pruning.
func (bb *BranchAndBound) Solve(problem *Problem) (Solution, error) {
	root, err := solveLP(problem)
	if err != nil {
		return Solution{}, err
	}
	switch root.Status {
	case StatusInfeasible:
		return Solution{}, ErrInfeasible
	case StatusUnbounded:
		return Solution{}, ErrUnbounded
	}

	eng := &bbEngine{bb: bb}
	eng.stack = append(eng.stack, problem)

	for len(eng.stack) > 0 {
		if bb.MaxNodes > 0 && eng.nodes >= bb.MaxNodes {
			break
		}
		eng.nodes++

		node := eng.stack[len(eng.stack)-1]
		eng.stack = eng.stack[:len(eng.stack)-1]

		sol, err := solveLP(node)
		if err != nil {
			return Solution{}, err
		}
		if sol.Status != StatusOptimal {
			continue
		}
		if eng.hasIncumbent && sol.Objective <= eng.incumbent.Objective+eps {
			continue
		}

		frac := firstFractional(node, sol)
		if frac == -1 {
			eng.hasIncumbent = true
			eng.incumbent = sol
			continue
		}

		floorChild := node.Clone()
		floorChild.Variables[frac].Upper = math.Floor(sol.Values[frac])
		ceilChild := node.Clone()
		ceilChild.Variables[frac].Lower = math.Ceil(sol.Values[frac])

		eng.stack = append(eng.stack, floorChild, ceilChild)
	}

	if !eng.hasIncumbent {
		return Solution{}, ErrInfeasible
	}
	return eng.incumbent, nil
}

// firstFractional returns the lowest-index Integer-flagged variable whose
// solved value is not within eps of an integer, or -1 if every
// Integer-flagged variable is already integral.
func firstFractional(problem *Problem, sol Solution) int {
	for i, v := range problem.Variables {
		if !v.Integer {
			continue
		}
		rounded := math.Round(sol.Values[i])
		if math.Abs(sol.Values[i]-rounded) > eps {
			return i
		}
	}
	return -1
}

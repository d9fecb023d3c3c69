package mip

import "errors"

// Sentinel errors for mip problem construction and solving.
var (
	// ErrUnknownVariable indicates a Term references a variable index
	// outside [0, len(Problem.Variables)).
	ErrUnknownVariable = errors.New("mip: term references unknown variable index")

	// ErrNoVariables indicates Solve was called on a Problem with no
	// variables.
	ErrNoVariables = errors.New("mip: problem has no variables")

	// ErrInfeasible indicates the relaxation (or, from BranchAndBound, the
	// full integer program) has no feasible assignment.
	ErrInfeasible = errors.New("mip: infeasible")

	// ErrUnbounded indicates the objective is unbounded over the feasible
	// region (a modeling error for this domain's bounded [0,1] variables,
	// surfaced rather than silently masked).
	ErrUnbounded = errors.New("mip: unbounded")

	// ErrIterationLimit indicates the simplex loop exceeded its iteration
	// safety cap without reaching optimality; Bland's rule makes this
	// unreachable in practice and it exists only as a defensive backstop.
	ErrIterationLimit = errors.New("mip: simplex iteration limit exceeded")
)

// Package mip is a solver-agnostic binary mixed-integer-program
// representation — Variable, Constraint, Problem, Solution — plus a
// branch-and-bound Solver over a from-scratch dense-tableau LP relaxation.
//
// This stands in for the "MIP solver" the domain specification treats as
// an external collaborator (see SPEC_FULL.md §2): no available library
// packages an actual LP/ILP solver, so branch-and-bound and the Big-M
// simplex method are implemented here, using a row-major dense tableau
// (package-internal tableau, see tableau.go) and an explicit
// branch-and-bound engine struct (package-internal bbEngine, see
// branch_and_bound.go).
//
// Every Variable carries an explicit [Lower, Upper] bound rather than an
// implicit x ≥ 0: branch-and-bound tightens bounds on a cloned Problem to
// explore each child node, instead of appending throwaway constraint rows.
package mip

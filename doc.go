// Package railtrail solves the Longest One-Way Ticket Problem: given a
// weighted undirected multigraph of railway edges and a set of disjunctive
// and exclusive constraint groups, it finds a maximum-weight simple trail
// (an edge-disjoint walk) between two endpoints chosen by the solver itself.
//
// The work is organized under focused subpackages:
//
//	core/     — thread-safe Graph and Edge primitives (incidence, views)
//	bfs/      — breadth-first traversal, used to walk leftover subtour components
//	railway/  — the domain Edge model, constraint groups and the TSV loader
//	mip/      — a solver-agnostic binary MIP: variables, constraints, a dense
//	            simplex tableau, and branch-and-bound
//	lop/      — the ILP builder, iterative subtour-elimination driver,
//	            path extractor, and topological canonicalizer
//	cmd/railtrail — the command-line front end
//
// Dive into DESIGN.md for the grounding of each package and SPEC_FULL.md for
// the full functional specification.
package railtrail

package lop

import (
	"context"
	"fmt"

	"github.com/haruta-rin/railtrail/mip"
	"github.com/haruta-rin/railtrail/railway"
)

// Logger receives the solver driver's per-attempt diagnostics (spec.md §6
// "Attempt banners, per-attempt objective, the reconstructed main path
// and any discovered subtours", supplemented per SPEC_FULL.md §9 with a
// "[major path]"/"[minor loop]" per-edge trace shape). Callers that don't
// need diagnostics pass NopLogger{}.
type Logger interface {
	Attempt(n int)
	Objective(totalDistance int64)
	MajorPathBanner()
	MajorPathEdge(e *railway.Edge)
	MinorLoopBanner()
	MinorLoopEdge(e *railway.Edge)
}

// NopLogger discards every diagnostic.
type NopLogger struct{}

func (NopLogger) Attempt(int)               {}
func (NopLogger) Objective(int64)           {}
func (NopLogger) MajorPathBanner()          {}
func (NopLogger) MajorPathEdge(*railway.Edge) {}
func (NopLogger) MinorLoopBanner()          {}
func (NopLogger) MinorLoopEdge(*railway.Edge) {}

// Result is the converged main path plus its objective, ready for
// Canonicalize.
type Result struct {
	Path      []*railway.Edge
	Objective int64
}

// Solve runs the restart-from-scratch subtour-elimination loop (spec.md
// §4.3): invoke solver on model.Problem, extract the selected edge set,
// and, while interior edges remain unreachable from either terminal,
// append one no-good cut per leftover connected component and resolve.
//
// Steps:
//  1. Solve. A solver error (infeasible/unbounded) ends the loop
//     immediately; best is still nil at that point, since only a
//     converged attempt sets it and convergence also ends the loop. This
//     is the "later version" behavior spec.md §9's open question flags
//     for review (see DESIGN.md for the decision).
//  2. Threshold X/Y/Z at 0.99 and extract the main path.
//  3. If no interior edges are left over, the attempt has converged:
//     record it as best and stop.
//  4. Otherwise partition the leftover edges into components, append a
//     no-good cut per component, and loop.
//  5. After the loop, re-scan every edge: if any single edge's weight
//     exceeds best's objective, it replaces best (spec.md §4.3's
//     single-edge fallback, which also covers the "no ILP attempt ever
//     succeeded" case since best starts at objective -Inf).
//
// Complexity: the loop terminates because each iteration eliminates at
// least one leftover cycle from the feasible region of a finite binary
// search space (spec.md §4.3's termination argument); per-attempt cost is
// whatever the underlying mip.Solver costs.
func Solve(ctx context.Context, model *Model, solver mip.Solver, log Logger) (*Result, error) {
	if log == nil {
		log = NopLogger{}
	}

	var best *Result
	bestObjective := float64(negInf)

	attempt := 0
	for {
		attempt++
		log.Attempt(attempt)

		sol, err := solver.Solve(model.Problem)
		if err != nil {
			break
		}

		objective := int64(sol.Objective + 0.5)
		log.Objective(objective)

		xs, ys, zs := thresholdEdgeSets(model, sol)

		path, leftoverX, err := extract(model.Network, xs, ys, zs)
		if err != nil {
			return nil, err
		}

		log.MajorPathBanner()
		for _, e := range path {
			log.MajorPathEdge(e)
		}

		if len(leftoverX) == 0 {
			best = &Result{Path: path, Objective: objective}
			bestObjective = float64(objective)
			break
		}

		components, err := subtourComponents(ctx, model.Network, leftoverX)
		if err != nil {
			return nil, err
		}
		for i, comp := range components {
			log.MinorLoopBanner()
			for _, e := range traceComponent(model.Network, comp) {
				log.MinorLoopEdge(e)
			}
			terms, sense, rhs := noGoodCut(model, comp)
			model.Problem.AddCut(fmt.Sprintf("subtour-%d-%d", attempt, i), terms, sense, rhs)
		}
	}

	for _, e := range model.Network.Edges {
		w := e.Weight(model.Weight)
		if float64(w) > bestObjective {
			best = &Result{Path: []*railway.Edge{orient(e, railway.Direction1to2)}, Objective: w}
			bestObjective = float64(w)
		}
	}

	if best == nil {
		return nil, ErrNoTrailFound
	}
	return best, nil
}

// negInf seeds bestObjective so that, if the ILP loop never converges
// (every attempt infeasible/unbounded, including the first), the
// single-edge fallback below unconditionally promotes the heaviest edge
// in the graph instead of leaving bestObjective at its zero value, which
// would silently skip the fallback whenever every candidate edge weight
// happens to be non-positive (see DESIGN.md).
const negInf = -1 << 62

// thresholdEdgeSets extracts X/Y/Z edge-id sets from sol by thresholding
// each variable at 0.99 (spec.md §4.3, defending against floating-point
// solver slack).
func thresholdEdgeSets(model *Model, sol mip.Solution) (xs, ys, zs []int) {
	for i := range model.Network.Edges {
		if sol.IsOne(model.X[i]) {
			xs = append(xs, i)
		}
		if sol.IsOne(model.Y[i]) {
			ys = append(ys, i)
		}
		if sol.IsOne(model.Z[i]) {
			zs = append(zs, i)
		}
	}
	return xs, ys, zs
}

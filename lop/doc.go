// Package lop implements the Longest One-Way Ticket Problem's solver core:
// the ILP builder, the iterative subtour-elimination driver, the main-path
// extractor, and the topological canonicalizer (spec.md §4.2-§4.5).
//
// A Model (builder.go) wraps a mip.Problem with the edge-id -> variable
// index arrays the other stages need. Solve (driver.go) repeatedly invokes
// a mip.Solver over that Problem, extracting the selected edge set
// (extract.go) and, while interior edges remain unreachable from either
// terminal, appending a no-good cut per leftover connected component
// (subtour.go) before resolving. Canonicalize (canonicalize.go) then
// normalizes the converged trail's output form.
package lop

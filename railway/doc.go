// Package railway models the Longest One-Way Ticket Problem's data model:
// the Edge record, vertex incidence, and disjunctive/exclusive constraint
// groups (spec §3), plus the TSV loader that builds them from a line stream
// (spec §4.1).
//
// Edge is immutable once loaded: the path extractor (lop's extract) sets
// the Direction tag on oriented copies during output assembly. Station
// incidence is additionally mirrored into a core.Graph so that the ILP
// builder (lop.Build, through StationEdges) can reuse core's thread-safe
// adjacency machinery instead of re-deriving it.
package railway

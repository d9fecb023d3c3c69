package lop

import "errors"

// Sentinel errors for the solver driver and path extractor.
var (
	// ErrExtractionBroken reports an extraction-stage invariant violation:
	// no terminal edge available to seed the main path, or the trail
	// broke mid-path with no consumable successor (spec.md §4.4, §7).
	ErrExtractionBroken = errors.New("lop: main path extraction invariant violated")

	// ErrNoTrailFound reports that neither the ILP loop nor the
	// single-edge fallback produced any trail, i.e. the graph has no
	// edges at all (spec.md §7's final failure exit).
	ErrNoTrailFound = errors.New("lop: no trail found")
)

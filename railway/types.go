package railway

import "errors"

// Sentinel errors for railway data-model and loader operations.
var (
	// ErrSelfLoop indicates a TSV record names the same station twice.
	ErrSelfLoop = errors.New("railway: self-loop not allowed")

	// ErrMalformedRecord indicates a TSV line has fewer than 7 fields.
	ErrMalformedRecord = errors.New("railway: malformed record")

	// ErrBadDistance indicates a non-integer or negative kilometrage field.
	ErrBadDistance = errors.New("railway: distance field must be a non-negative integer")

	// ErrUnknownGroupPrefix indicates a group token's prefix is not one of {+,-,*,:}.
	ErrUnknownGroupPrefix = errors.New("railway: unknown constraint-group prefix")

	// ErrUnknownWeightKind indicates a WeightKind value outside {A,B,C}.
	ErrUnknownWeightKind = errors.New("railway: unknown weight kind")
)

// WeightKind selects which of an Edge's three kilometrage fields acts as
// "the weight" for a given run (spec §3, §6.2).
type WeightKind int

const (
	// WeightOperational selects DistanceKmA (営業キロ), the default.
	WeightOperational WeightKind = iota
	// WeightFare selects DistanceKmB (運賃計算キロ).
	WeightFare
	// WeightEffective selects DistanceKmC (実乗可能粁程).
	WeightEffective
)

// String renders a WeightKind as its single-letter config token.
func (k WeightKind) String() string {
	switch k {
	case WeightOperational:
		return "A"
	case WeightFare:
		return "B"
	case WeightEffective:
		return "C"
	default:
		return "?"
	}
}

// ParseWeightKind parses "A"/"B"/"C" (case-insensitive) into a WeightKind.
func ParseWeightKind(s string) (WeightKind, error) {
	switch s {
	case "A", "a", "":
		return WeightOperational, nil
	case "B", "b":
		return WeightFare, nil
	case "C", "c":
		return WeightEffective, nil
	default:
		return 0, ErrUnknownWeightKind
	}
}

// Direction records which way an Edge was traversed during path extraction.
// It is output metadata, not a modeling attribute: the edge's graph
// identity remains undirected (spec §9).
type Direction int

const (
	// DirectionUnset means the edge was never placed on the output trail.
	DirectionUnset Direction = iota
	// Direction1to2 means the trail traverses Station1 -> Station2.
	Direction1to2
	// Direction2to1 means the trail traverses Station2 -> Station1.
	Direction2to1
)

// Edge is the immutable semantic railway record (spec §3): a company/line
// label pair, an unordered station pair, and three alternative non-negative
// kilometrage weights. ID is this edge's position in the load order and
// doubles as the stable identifier threaded through mip.Variable labels;
// the mirrored core.Edge has its own textual ID, mapped to and from this
// one by Network.CoreEdgeID and Network.RailwayEdgeID.
type Edge struct {
	ID int

	Company  string
	Line     string
	Station1 string
	Station2 string

	DistanceKmA int64 // operational kilometrage
	DistanceKmB int64 // fare-calculation kilometrage
	DistanceKmC int64 // effective-ridable kilometrage

	// Direction is set on the oriented copies the path extractor produces;
	// loaded edges keep DirectionUnset.
	Direction Direction
}

// Weight returns the kilometrage selected by kind (spec §3).
func (e *Edge) Weight(kind WeightKind) int64 {
	switch kind {
	case WeightFare:
		return e.DistanceKmB
	case WeightEffective:
		return e.DistanceKmC
	default:
		return e.DistanceKmA
	}
}

// StationFrom and StationTo report the edge's oriented endpoints under its
// current Direction. Calling these before the direction is set (i.e. on
// DirectionUnset) returns the stored Station1/Station2 unchanged.
func (e *Edge) StationFrom() string {
	if e.Direction == Direction2to1 {
		return e.Station2
	}
	return e.Station1
}

func (e *Edge) StationTo() string {
	if e.Direction == Direction2to1 {
		return e.Station1
	}
	return e.Station2
}

// Reversed returns a copy of e with its Direction flipped; e itself is
// unaffected. Callers that reverse a whole path reverse the slice order
// and call Reversed on each element independently.
func (e *Edge) Reversed() *Edge {
	r := *e
	switch e.Direction {
	case Direction1to2:
		r.Direction = Direction2to1
	case Direction2to1:
		r.Direction = Direction1to2
	}
	return &r
}

// TSV renders e in its oriented output form:
// company\tline\tfrom\tto\tkmA\tkmB\tkmC (spec §6.1).
func (e *Edge) TSV() string {
	from, to := e.StationFrom(), e.StationTo()
	return e.Company + "\t" + e.Line + "\t" + from + "\t" + to + "\t" +
		itoa(e.DistanceKmA) + "\t" + itoa(e.DistanceKmB) + "\t" + itoa(e.DistanceKmC)
}

// itoa is a tiny local decimal formatter that TSV uses in place of fmt
// or strconv.
func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// DisjunctiveLiteral is one (edge, polarity) pair within a disjunctive
// group (spec §3, §4.1): polarity true contributes u_e, false contributes
// 1 - u_e to the group's "at least one" sum.
type DisjunctiveLiteral struct {
	EdgeID   int
	Polarity bool
}

// ExclusiveTerm is one (edge, coefficient) pair within an exclusive group
// (spec §3, §4.1). Coefficient is either LargeCoeff (prefix '*') or 1
// (prefix ':').
type ExclusiveTerm struct {
	EdgeID      int
	Coefficient int64
}

// LargeCoeff is the sentinel "exceeds any feasible sum of small
// coefficients" constant K from spec §3/§4.1.
const LargeCoeff int64 = 1000

// Groups holds the two constraint-group dictionaries produced by Load,
// keyed by group name (spec §3).
type Groups struct {
	Disjunctive map[string][]DisjunctiveLiteral
	Exclusive   map[string][]ExclusiveTerm
}

// newGroups returns an empty Groups ready for incremental population.
func newGroups() *Groups {
	return &Groups{
		Disjunctive: make(map[string][]DisjunctiveLiteral),
		Exclusive:   make(map[string][]ExclusiveTerm),
	}
}

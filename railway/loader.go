package railway

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/haruta-rin/railtrail/core"
)

// Load parses a line-oriented TSV edge stream (spec §4.1) into a Network.
// Each record is `company line station1 station2 kmA kmB kmC [groups]`,
// tab-separated; an eighth field, when present, is a comma-separated list
// of group tokens prefixed by one of {+,-,*,:}. A trailing `#...` comment
// is stripped before parsing; blank lines (after stripping) are skipped.
//
// Returns ErrSelfLoop naming the 1-based line number if station1==station2,
// ErrMalformedRecord if a line has fewer than 7 fields, ErrBadDistance if a
// kilometrage field is not a non-negative integer, or ErrUnknownGroupPrefix
// for a group token whose prefix is not one of {+,-,*,:}. An empty input
// (no edges survive parsing) is not an error: Load returns a Network with
// zero edges, and the caller is expected to treat that as a clean exit
// (spec §6, §7).
func Load(r io.Reader) (*Network, error) {
	n := &Network{
		Groups:        newGroups(),
		graph:         core.NewGraph(core.WithWeighted(), core.WithMultiEdges()),
		coreEdgeID:    nil,
		railwayEdgeID: make(map[string]int),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Strip a trailing "#..." comment (spec §4.1, §6.1).
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		edge, groupTokens, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("railway: line %d: %w", lineNo, err)
		}
		if edge.Station1 == edge.Station2 {
			return nil, fmt.Errorf("railway: line %d: %w", lineNo, ErrSelfLoop)
		}

		edge.ID = len(n.Edges)
		n.Edges = append(n.Edges, edge)

		coreID, err := n.graph.AddEdge(edge.Station1, edge.Station2, 0)
		if err != nil {
			return nil, fmt.Errorf("railway: line %d: %w", lineNo, err)
		}
		n.coreEdgeID = append(n.coreEdgeID, coreID)
		n.railwayEdgeID[coreID] = edge.ID

		if err := classifyGroups(n.Groups, edge.ID, groupTokens); err != nil {
			return nil, fmt.Errorf("railway: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("railway: %w", err)
	}

	return n, nil
}

// parseRecord splits one TSV line into an Edge (with ID left unset) and the
// raw, still-unparsed group tokens (empty if the eighth field is absent).
func parseRecord(line string) (*Edge, []string, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) < 7 {
		return nil, nil, ErrMalformedRecord
	}

	kmA, err := parseDistance(fields[4])
	if err != nil {
		return nil, nil, err
	}
	kmB, err := parseDistance(fields[5])
	if err != nil {
		return nil, nil, err
	}
	kmC, err := parseDistance(fields[6])
	if err != nil {
		return nil, nil, err
	}

	edge := &Edge{
		Company:     fields[0],
		Line:        fields[1],
		Station1:    fields[2],
		Station2:    fields[3],
		DistanceKmA: kmA,
		DistanceKmB: kmB,
		DistanceKmC: kmC,
	}

	var groups []string
	if len(fields) > 7 && fields[7] != "" {
		groups = strings.Split(fields[7], ",")
	}

	return edge, groups, nil
}

func parseDistance(field string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil || v < 0 {
		return 0, ErrBadDistance
	}
	return v, nil
}

// classifyGroups appends edgeID's group-token literals into groups,
// dispatching on each token's first-character prefix (spec §4.1's table).
func classifyGroups(groups *Groups, edgeID int, tokens []string) error {
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		prefix, name := tok[0], tok[1:]
		switch prefix {
		case '+':
			groups.Disjunctive[name] = append(groups.Disjunctive[name], DisjunctiveLiteral{EdgeID: edgeID, Polarity: true})
		case '-':
			groups.Disjunctive[name] = append(groups.Disjunctive[name], DisjunctiveLiteral{EdgeID: edgeID, Polarity: false})
		case '*':
			groups.Exclusive[name] = append(groups.Exclusive[name], ExclusiveTerm{EdgeID: edgeID, Coefficient: LargeCoeff})
		case ':':
			groups.Exclusive[name] = append(groups.Exclusive[name], ExclusiveTerm{EdgeID: edgeID, Coefficient: 1})
		default:
			return fmt.Errorf("%w: %q", ErrUnknownGroupPrefix, tok)
		}
	}
	return nil
}

package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hydroflow/hydroflow/balance"
	"github.com/hydroflow/hydroflow/network"
)

// TimeSeries holds one profile per timestep, in file order.
type TimeSeries struct {
	steps    []string
	profiles map[string]balance.Profile
}

// Timesteps returns the timestep labels in file order.
func (ts *TimeSeries) Timesteps() []string {
	out := make([]string, len(ts.steps))
	copy(out, ts.steps)

	return out
}

// Profile returns a copy of the profile at the given timestep and
// whether the timestep exists.
func (ts *TimeSeries) Profile(step string) (balance.Profile, bool) {
	src, ok := ts.profiles[step]
	if !ok {
		return nil, false
	}
	out := make(balance.Profile, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out, true
}

// Len returns the number of timesteps.
func (ts *TimeSeries) Len() int { return len(ts.steps) }

// header reads and indexes the header row, trimming whitespace.
func header(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("dataio: reading header: %w", err)
	}

	idx := make(map[string]int, len(row))
	for i, name := range row {
		idx[strings.TrimSpace(name)] = i
	}

	return idx, nil
}

func column(idx map[string]int, name string) (int, error) {
	i, ok := idx[name]
	if !ok {
		return 0, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
	}

	return i, nil
}

func parseValue(cell, col, key string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("row %q, column %q, value %q: %w", key, col, cell, ErrBadValue)
	}

	return v, nil
}

// LoadNodes parses the node table and returns the node IDs in file
// order. Duplicate keys are rejected.
func LoadNodes(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	idx, err := header(cr)
	if err != nil {
		return nil, err
	}
	nodeCol, err := column(idx, "Node")
	if err != nil {
		return nil, err
	}

	var nodes []string
	seen := make(map[string]struct{})
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: reading node row: %w", err)
		}
		id := strings.TrimSpace(row[nodeCol])
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("node %q: %w", id, ErrDuplicateKey)
		}
		seen[id] = struct{}{}
		nodes = append(nodes, id)
	}

	return nodes, nil
}

// LoadArcs parses the arc table. Rows are uniquely keyed by
// (Start, End); numeric cells must parse.
func LoadArcs(r io.Reader) ([]network.ArcRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	idx, err := header(cr)
	if err != nil {
		return nil, err
	}
	cols := make(map[string]int, 6)
	for _, name := range []string{"Start", "End", "Capacity", "UpperBound", "LowerBound", "Cost"} {
		i, err := column(idx, name)
		if err != nil {
			return nil, err
		}
		cols[name] = i
	}

	var recs []network.ArcRecord
	seen := make(map[network.Arc]struct{})
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: reading arc row: %w", err)
		}

		arc := network.Arc{
			Start: strings.TrimSpace(row[cols["Start"]]),
			End:   strings.TrimSpace(row[cols["End"]]),
		}
		if _, dup := seen[arc]; dup {
			return nil, fmt.Errorf("arc %s -> %s: %w", arc.Start, arc.End, ErrDuplicateKey)
		}
		seen[arc] = struct{}{}

		key := arc.Start + "->" + arc.End
		var attrs network.ArcAttrs
		if attrs.Capacity, err = parseValue(row[cols["Capacity"]], "Capacity", key); err != nil {
			return nil, err
		}
		if attrs.UpperBound, err = parseValue(row[cols["UpperBound"]], "UpperBound", key); err != nil {
			return nil, err
		}
		if attrs.LowerBound, err = parseValue(row[cols["LowerBound"]], "LowerBound", key); err != nil {
			return nil, err
		}
		if attrs.Cost, err = parseValue(row[cols["Cost"]], "Cost", key); err != nil {
			return nil, err
		}

		recs = append(recs, network.ArcRecord{Arc: arc, Attrs: attrs})
	}

	return recs, nil
}

// LoadTimeSeries parses a supply or demand table: a Timestep key column
// plus one column per node name. Empty cells read as zero.
func LoadTimeSeries(r io.Reader) (*TimeSeries, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	idx, err := header(cr)
	if err != nil {
		return nil, err
	}
	stepCol, err := column(idx, "Timestep")
	if err != nil {
		return nil, err
	}

	// Every non-key column names a node.
	type nodeCol struct {
		name string
		col  int
	}
	nodeCols := make([]nodeCol, 0, len(idx)-1)
	for name, i := range idx {
		if i != stepCol {
			nodeCols = append(nodeCols, nodeCol{name: name, col: i})
		}
	}

	ts := &TimeSeries{profiles: make(map[string]balance.Profile)}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: reading series row: %w", err)
		}

		step := strings.TrimSpace(row[stepCol])
		if _, dup := ts.profiles[step]; dup {
			return nil, fmt.Errorf("timestep %q: %w", step, ErrDuplicateKey)
		}

		profile := make(balance.Profile, len(nodeCols))
		for _, nc := range nodeCols {
			v, err := parseValue(row[nc.col], nc.name, step)
			if err != nil {
				return nil, err
			}
			if v != 0 {
				profile[nc.name] = v
			}
		}
		ts.steps = append(ts.steps, step)
		ts.profiles[step] = profile
	}

	return ts, nil
}

// ReadNodesFile loads the node table from path.
func ReadNodesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	defer f.Close()

	return LoadNodes(f)
}

// ReadArcsFile loads the arc table from path.
func ReadArcsFile(path string) ([]network.ArcRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	defer f.Close()

	return LoadArcs(f)
}

// ReadTimeSeriesFile loads a supply or demand series from path.
func ReadTimeSeriesFile(path string) (*TimeSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	defer f.Close()

	return LoadTimeSeries(f)
}

// Package dataio loads the CSV tables a run consumes: the node table,
// the arc table and the per-timestep supply and demand series.
//
// Column contracts (header names are exact, order free):
//
//	nodes:  Node
//	arcs:   Start, End, Capacity, UpperBound, LowerBound, Cost
//	series: Timestep, then one column per node name
//
// Rows are uniquely keyed — nodes by Node, arcs by (Start, End), series
// rows by Timestep — and duplicates are rejected. Empty series cells
// read as zero (exported tables routinely leave unused node columns
// blank). All loading errors are fatal for the run: they surface
// immediately and nothing is partially applied.
//
// # Errors
//
//	ErrMissingColumn - a required header column is absent.
//	ErrDuplicateKey  - a row repeats an already-seen key.
//	ErrBadValue      - a numeric cell failed to parse.
//	ErrEmptyInput    - the file has no header row.
package dataio

// Package network holds the static description of a water-distribution
// network: the node set and the directed arc table with per-arc
// capacity, flow bounds and unit cost.
//
// A Network is built once from loaded node and arc tables and is
// immutable afterwards. Construction validates the tables:
//
//	– node keys must be unique,
//	– arcs must be uniquely keyed by (Start, End),
//	– every arc endpoint must be a declared node.
//
// Beyond the raw tables the Network precomputes, per node, the list of
// all incoming and all outgoing arcs. Downstream model building sums
// over these lists, so membership — not iteration order — decides which
// arcs contribute to a node's balance.
//
// # Errors
//
//	ErrNoNodes      - empty node table.
//	ErrDuplicateNode - repeated node key.
//	ErrDuplicateArc  - repeated (Start, End) pair.
//	ErrUnknownNode   - arc endpoint missing from the node table.
//
// All accessors return copies; results may be held or modified freely
// without affecting the Network.
package network

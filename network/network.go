package network

import (
	"fmt"
	"sort"
)

// Network is the immutable description of a distribution network:
// sorted node IDs, sorted arcs with attributes, and per-node lists of
// all incoming and outgoing arcs.
type Network struct {
	nodes   []string
	nodeSet map[string]struct{}
	arcs    []Arc
	attrs   map[Arc]ArcAttrs
	in      map[string][]Arc
	out     map[string][]Arc
}

// NewNetwork validates the node and arc tables and assembles a Network.
//
// Steps:
//  1. Reject an empty node table (ErrNoNodes).
//  2. Index nodes, rejecting duplicates (ErrDuplicateNode).
//  3. Index arcs, rejecting duplicate (Start, End) keys (ErrDuplicateArc)
//     and endpoints missing from the node set (ErrUnknownNode).
//  4. Sort nodes and arcs into canonical order and accumulate the full
//     incoming/outgoing arc list for every node.
//
// Complexity: O(N·logN + A·logA) for N nodes and A arcs.
func NewNetwork(nodes []string, arcs []ArcRecord) (*Network, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	n := &Network{
		nodes:   make([]string, 0, len(nodes)),
		nodeSet: make(map[string]struct{}, len(nodes)),
		arcs:    make([]Arc, 0, len(arcs)),
		attrs:   make(map[Arc]ArcAttrs, len(arcs)),
		in:      make(map[string][]Arc),
		out:     make(map[string][]Arc),
	}

	for _, id := range nodes {
		if _, seen := n.nodeSet[id]; seen {
			return nil, fmt.Errorf("node %q: %w", id, ErrDuplicateNode)
		}
		n.nodeSet[id] = struct{}{}
		n.nodes = append(n.nodes, id)
	}
	sort.Strings(n.nodes)

	for _, rec := range arcs {
		if _, seen := n.attrs[rec.Arc]; seen {
			return nil, fmt.Errorf("arc %s -> %s: %w", rec.Start, rec.End, ErrDuplicateArc)
		}
		if _, ok := n.nodeSet[rec.Start]; !ok {
			return nil, fmt.Errorf("arc %s -> %s: start: %w", rec.Start, rec.End, ErrUnknownNode)
		}
		if _, ok := n.nodeSet[rec.End]; !ok {
			return nil, fmt.Errorf("arc %s -> %s: end: %w", rec.Start, rec.End, ErrUnknownNode)
		}
		n.attrs[rec.Arc] = rec.Attrs
		n.arcs = append(n.arcs, rec.Arc)
	}
	sort.Slice(n.arcs, func(i, j int) bool { return n.arcs[i].Less(n.arcs[j]) })

	// Adjacency accumulates every matching arc per node; arcs inherit
	// the canonical order of n.arcs.
	for _, a := range n.arcs {
		n.out[a.Start] = append(n.out[a.Start], a)
		n.in[a.End] = append(n.in[a.End], a)
	}

	return n, nil
}

// Nodes returns the node IDs in canonical sorted order.
func (n *Network) Nodes() []string {
	out := make([]string, len(n.nodes))
	copy(out, n.nodes)

	return out
}

// Arcs returns the arcs in canonical (Start, End) sorted order.
func (n *Network) Arcs() []Arc {
	out := make([]Arc, len(n.arcs))
	copy(out, n.arcs)

	return out
}

// NumNodes returns the number of nodes.
func (n *Network) NumNodes() int { return len(n.nodes) }

// NumArcs returns the number of arcs.
func (n *Network) NumArcs() int { return len(n.arcs) }

// HasNode reports whether id belongs to the node set.
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodeSet[id]

	return ok
}

// Attrs returns the attributes of arc a and whether the arc exists.
func (n *Network) Attrs(a Arc) (ArcAttrs, bool) {
	attrs, ok := n.attrs[a]

	return attrs, ok
}

// InArcs returns every arc ending at node id, in canonical order.
// The result is empty (not nil-safe sentinel) for isolated nodes.
func (n *Network) InArcs(id string) []Arc {
	src := n.in[id]
	out := make([]Arc, len(src))
	copy(out, src)

	return out
}

// OutArcs returns every arc starting at node id, in canonical order.
func (n *Network) OutArcs(id string) []Arc {
	src := n.out[id]
	out := make([]Arc, len(src))
	copy(out, src)

	return out
}

package lpmodel

import (
	"fmt"

	"github.com/hydroflow/hydroflow/balance"
	"github.com/hydroflow/hydroflow/network"
)

// boundTol absorbs floating-point noise when comparing bounds.
const boundTol = 1e-9

// Elem is one nonzero coefficient of the constraint matrix.
type Elem struct {
	Row int
	Col int
	Val float64
}

// Problem is the assembled linear program in sparse triplet form.
//
// Columns follow the canonical arc order of the source network; rows
// follow its canonical node order. All rows are equalities:
// Σ Elems[.] · flow = RHS[row].
type Problem struct {
	Arcs  []network.Arc // column j ↔ Arcs[j]
	Cost  []float64     // objective coefficient per column
	Lower []float64     // column lower bound, ≥ 0
	Upper []float64     // column upper bound
	Rows  []string      // row i ↔ node Rows[i]
	Elems []Elem        // +1 incoming, −1 outgoing
	RHS   []float64     // demand − supply per row
}

// NumCols returns the number of decision variables (arcs).
func (p *Problem) NumCols() int { return len(p.Arcs) }

// NumRows returns the number of mass-balance rows (nodes).
func (p *Problem) NumRows() int { return len(p.Rows) }

// Column returns the column index of arc a, or -1 if absent.
func (p *Problem) Column(a network.Arc) int {
	for j, other := range p.Arcs {
		if other == a {
			return j
		}
	}

	return -1
}

// Build assembles the minimum-cost flow LP for one balanced timestep.
//
// Steps:
//  1. One column per arc: cost, effective lower bound max(LowerBound, 0)
//     and upper bound. Inverted bounds abort with ErrBoundMismatch.
//  2. One equality row per node: +1 for every incoming arc, −1 for
//     every outgoing arc, RHS = demand[n] − supply[n]. Nodes without
//     arcs keep their (empty) row. Profile keys outside the node set
//     are ignored.
//
// Complexity: O(A + N + E) for A arcs, N nodes and E nonzeros (E = 2A).
func Build(net *network.Network, bal balance.Result) (*Problem, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	arcs := net.Arcs()
	p := &Problem{
		Arcs:  arcs,
		Cost:  make([]float64, len(arcs)),
		Lower: make([]float64, len(arcs)),
		Upper: make([]float64, len(arcs)),
	}

	col := make(map[network.Arc]int, len(arcs))
	for j, a := range arcs {
		attrs, _ := net.Attrs(a)
		lower := attrs.LowerBound
		if lower < 0 {
			lower = 0 // flow variables are nonnegative
		}
		if lower > attrs.UpperBound+boundTol {
			return nil, fmt.Errorf("arc %s -> %s: lower %g > upper %g: %w",
				a.Start, a.End, lower, attrs.UpperBound, ErrBoundMismatch)
		}
		p.Cost[j] = attrs.Cost
		p.Lower[j] = lower
		p.Upper[j] = attrs.UpperBound
		col[a] = j
	}

	nodes := net.Nodes()
	p.Rows = nodes
	p.RHS = make([]float64, len(nodes))
	for i, node := range nodes {
		for _, a := range net.InArcs(node) {
			p.Elems = append(p.Elems, Elem{Row: i, Col: col[a], Val: 1})
		}
		for _, a := range net.OutArcs(node) {
			p.Elems = append(p.Elems, Elem{Row: i, Col: col[a], Val: -1})
		}
		p.RHS[i] = bal.Demand[node] - bal.Supply[node]
	}

	return p, nil
}

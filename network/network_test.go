package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydroflow/hydroflow/network"
)

func arc(s, e string) network.Arc { return network.Arc{Start: s, End: e} }

func rec(s, e string, cap, lb, ub, cost float64) network.ArcRecord {
	return network.ArcRecord{
		Arc:   arc(s, e),
		Attrs: network.ArcAttrs{Capacity: cap, LowerBound: lb, UpperBound: ub, Cost: cost},
	}
}

// TestNewNetwork_Errors verifies the table validation rules.
func TestNewNetwork_Errors(t *testing.T) {
	cases := []struct {
		name  string
		nodes []string
		arcs  []network.ArcRecord
		err   error
	}{
		{"EmptyNodes", nil, nil, network.ErrNoNodes},
		{"DuplicateNode", []string{"A", "A"}, nil, network.ErrDuplicateNode},
		{
			"DuplicateArc",
			[]string{"A", "B"},
			[]network.ArcRecord{rec("A", "B", 1, 0, 1, 1), rec("A", "B", 2, 0, 2, 2)},
			network.ErrDuplicateArc,
		},
		{
			"UnknownStart",
			[]string{"A", "B"},
			[]network.ArcRecord{rec("X", "B", 1, 0, 1, 1)},
			network.ErrUnknownNode,
		},
		{
			"UnknownEnd",
			[]string{"A", "B"},
			[]network.ArcRecord{rec("A", "Y", 1, 0, 1, 1)},
			network.ErrUnknownNode,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := network.NewNetwork(tc.nodes, tc.arcs)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewNetwork_CanonicalOrder: nodes and arcs come back sorted
// regardless of input order.
func TestNewNetwork_CanonicalOrder(t *testing.T) {
	n, err := network.NewNetwork(
		[]string{"T", "A", "S"},
		[]network.ArcRecord{
			rec("S", "A", 10, 0, 10, 1),
			rec("A", "T", 10, 0, 10, 1),
			rec("A", "S", 5, 0, 5, 2),
		},
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "S", "T"}, n.Nodes())
	require.Equal(t, []network.Arc{arc("A", "S"), arc("A", "T"), arc("S", "A")}, n.Arcs())
}

// TestAdjacency_AccumulatesAllArcs: every matching arc appears in the
// per-node lists, not just the first one encountered.
func TestAdjacency_AccumulatesAllArcs(t *testing.T) {
	n, err := network.NewNetwork(
		[]string{"A", "B", "C", "D"},
		[]network.ArcRecord{
			rec("A", "D", 1, 0, 1, 1),
			rec("B", "D", 1, 0, 1, 1),
			rec("C", "D", 1, 0, 1, 1),
			rec("D", "A", 1, 0, 1, 1),
			rec("D", "B", 1, 0, 1, 1),
		},
	)
	require.NoError(t, err)

	require.Equal(t, []network.Arc{arc("A", "D"), arc("B", "D"), arc("C", "D")}, n.InArcs("D"))
	require.Equal(t, []network.Arc{arc("D", "A"), arc("D", "B")}, n.OutArcs("D"))
	require.Equal(t, []network.Arc{arc("D", "A")}, n.InArcs("A"))
	require.Empty(t, n.InArcs("C"))
}

// TestAccessors_ReturnCopies: mutating returned slices must not leak
// into the Network.
func TestAccessors_ReturnCopies(t *testing.T) {
	n, err := network.NewNetwork(
		[]string{"A", "B"},
		[]network.ArcRecord{rec("A", "B", 1, 0, 1, 1)},
	)
	require.NoError(t, err)

	nodes := n.Nodes()
	nodes[0] = "Z"
	require.Equal(t, []string{"A", "B"}, n.Nodes())

	arcs := n.Arcs()
	arcs[0] = arc("Z", "Z")
	require.Equal(t, []network.Arc{arc("A", "B")}, n.Arcs())

	in := n.InArcs("B")
	in[0] = arc("Z", "Z")
	require.Equal(t, []network.Arc{arc("A", "B")}, n.InArcs("B"))
}

// TestAttrs round-trips arc attributes and reports missing arcs.
func TestAttrs(t *testing.T) {
	n, err := network.NewNetwork(
		[]string{"A", "B"},
		[]network.ArcRecord{rec("A", "B", 10, 2, 8, 3.5)},
	)
	require.NoError(t, err)

	attrs, ok := n.Attrs(arc("A", "B"))
	require.True(t, ok)
	require.Equal(t, network.ArcAttrs{Capacity: 10, LowerBound: 2, UpperBound: 8, Cost: 3.5}, attrs)

	_, ok = n.Attrs(arc("B", "A"))
	require.False(t, ok)
	require.True(t, n.HasNode("A"))
	require.False(t, n.HasNode("X"))
}

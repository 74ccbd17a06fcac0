package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hydroflow/hydroflow/balance"
	"github.com/hydroflow/hydroflow/network"
)

// Record is the reported flow on one arc.
type Record struct {
	Start       string
	End         string
	Flow        float64
	Capacity    float64
	Utilization float64 // Flow / Capacity; 0 when no capacity is rated
}

// Records extracts one record per arc in canonical (start, end) order.
// Arcs absent from flows (never the case for a successful solve) report
// zero flow.
func Records(net *network.Network, flows map[network.Arc]float64) []Record {
	arcs := net.Arcs()
	out := make([]Record, 0, len(arcs))
	for _, a := range arcs {
		attrs, _ := net.Attrs(a)
		rec := Record{
			Start:    a.Start,
			End:      a.End,
			Flow:     flows[a],
			Capacity: attrs.Capacity,
		}
		if attrs.Capacity > 0 {
			rec.Utilization = rec.Flow / attrs.Capacity
		}
		out = append(out, rec)
	}

	return out
}

// Write emits the supply/demand state header followed by one line per
// arc: "Flow on arc A -> B: 12.34".
func Write(w io.Writer, state balance.State, net *network.Network, flows map[network.Arc]float64) error {
	if _, err := fmt.Fprintf(w, "State of water supply: %s\n\n", state); err != nil {
		return err
	}
	for _, rec := range Records(net, flows) {
		if _, err := fmt.Fprintf(w, "Flow on arc %s -> %s: %.2f\n", rec.Start, rec.End, rec.Flow); err != nil {
			return err
		}
	}

	return nil
}

// WriteTable renders the records as an aligned start/end/flow/capacity/
// utilization table.
func WriteTable(w io.Writer, net *network.Network, flows map[network.Arc]float64) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "START\tEND\tFLOW\tCAPACITY\tUTIL")
	for _, rec := range Records(net, flows) {
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%.1f%%\n",
			rec.Start, rec.End, rec.Flow, rec.Capacity, rec.Utilization*100)
	}

	return tw.Flush()
}

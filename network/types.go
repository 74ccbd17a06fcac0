package network

// Arc identifies a directed link (pipe) from Start to End.
// Arcs are uniquely keyed by this pair; parallel arcs are rejected.
type Arc struct {
	Start string
	End   string
}

// Less reports whether a precedes b in canonical (Start, End) order.
func (a Arc) Less(b Arc) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}

	return a.End < b.End
}

// ArcAttrs carries the physical attributes of one arc.
//
// UpperBound and LowerBound bind the flow; Capacity is descriptive
// (rated pipe capacity) and is used for utilization reporting only.
type ArcAttrs struct {
	Capacity   float64
	LowerBound float64
	UpperBound float64
	Cost       float64
}

// ArcRecord is one arc row as handed over by the data-loading
// collaborator: the key pair plus its attributes.
type ArcRecord struct {
	Arc
	Attrs ArcAttrs
}

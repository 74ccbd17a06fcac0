// Package report renders solved flow assignments for human and
// programmatic consumption.
//
// Records returns one record per arc in canonical (start, end) order,
// carrying the flow value, the rated capacity and the resulting
// utilization. Write emits the classic text listing:
//
//	State of water supply: SURPLUS
//
//	Flow on arc S -> A: 5.00
//	Flow on arc A -> T: 5.00
//
// WriteTable renders the same records as an aligned table for console
// inspection.
package report

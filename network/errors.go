package network

import "errors"

var (
	// ErrNoNodes indicates the node table is empty.
	ErrNoNodes = errors.New("network: node set must not be empty")
	// ErrDuplicateNode indicates a repeated node key in the node table.
	ErrDuplicateNode = errors.New("network: duplicate node key")
	// ErrDuplicateArc indicates a repeated (Start, End) pair in the arc table.
	ErrDuplicateArc = errors.New("network: duplicate arc key")
	// ErrUnknownNode indicates an arc endpoint missing from the node table.
	ErrUnknownNode = errors.New("network: arc references unknown node")
)

package lpmodel

import "errors"

var (
	// ErrNilNetwork indicates Build was handed a nil network.
	ErrNilNetwork = errors.New("lpmodel: network must not be nil")
	// ErrNilProblem indicates WriteMPS was handed a nil problem.
	ErrNilProblem = errors.New("lpmodel: problem must not be nil")
	// ErrBoundMismatch indicates an arc whose effective lower bound
	// exceeds its upper bound.
	ErrBoundMismatch = errors.New("lpmodel: arc lower bound exceeds upper bound")
)

package dataio

import "errors"

var (
	// ErrMissingColumn indicates a required header column is absent.
	ErrMissingColumn = errors.New("dataio: required column missing")
	// ErrDuplicateKey indicates a row repeats an already-seen key.
	ErrDuplicateKey = errors.New("dataio: duplicate row key")
	// ErrBadValue indicates a numeric cell failed to parse.
	ErrBadValue = errors.New("dataio: malformed numeric value")
	// ErrEmptyInput indicates the file has no header row.
	ErrEmptyInput = errors.New("dataio: input has no header row")
)

package seqs

import (
	"errors"

	"basekit/validate"
)

var (
	// ErrInvalidArgument is wrapped by every constructor panic caused by a
	// missing or out-of-range argument.
	ErrInvalidArgument = validate.ErrInvalidArgument

	// ErrNoCandidate is wrapped by the panic of an ordering selector asked to
	// choose among slots that are all empty.
	ErrNoCandidate = errors.New("no candidate to select")
)

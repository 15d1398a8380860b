package replay

import "errors"

var (
	// ErrInvalidState indicates an operation called out of order, such as
	// replaying before sorting or sorting twice.
	ErrInvalidState = errors.New("replay: operation not valid in current state")

	// ErrInvariant indicates a live row stopped being a permutation at a
	// frame boundary where it must be one. Only reported with invariant
	// checks enabled.
	ErrInvariant = errors.New("replay: permutation invariant violated")
)

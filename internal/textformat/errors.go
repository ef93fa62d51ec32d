package textformat

import "errors"

var (
	// ErrInvalidArgument is returned for negative widths or sizes and for
	// option combinations that cannot be honored.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when lines are read before a size is set.
	ErrInvalidState = errors.New("invalid state")
)

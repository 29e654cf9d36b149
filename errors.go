package gridkit

import "errors"

var (
	// ErrDimensionMismatch is returned when 2D and 3D values are combined,
	// or an axis index is outside a coordinate's dimensionality.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrMalformedCoord    = errors.New("malformed coordinate")
	// ErrMalformedTable is returned when table rows have unequal lengths.
	ErrMalformedTable = errors.New("malformed table")
	ErrOutOfBounds    = errors.New("out of bounds")
	ErrInvalidRange   = errors.New("invalid range")
	// ErrNotContained is returned by Box.Subtract when the removed box is
	// not fully inside the receiver.
	ErrNotContained   = errors.New("box not contained")
	ErrNegativeCost   = errors.New("negative traversal cost")
	ErrUnsupported    = errors.New("unsupported operation")
	ErrExpansionLimit = errors.New("expansion limit reached")
)

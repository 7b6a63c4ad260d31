package transform

import "errors"

var (
	// ErrOutOfRange is returned for query points outside the support of the
	// basis, e.g. radii beyond R or |y| > R in the Abel transform.
	ErrOutOfRange = errors.New("transform: query out of range")

	// ErrGeometry is returned when an operation does not apply to the
	// geometry of the basis.
	ErrGeometry = errors.New("transform: operation not defined for this geometry")
)

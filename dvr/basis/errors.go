package basis

import "errors"

// Errors returned by basis construction and queries.
var (
	// ErrInvalidConfig is returned for invalid grid sizes, lengths, cutoffs,
	// dimensions or angular momenta.
	ErrInvalidConfig = errors.New("basis: invalid configuration")

	// ErrUnsupportedGeometry is returned for geometry tags other than
	// periodic, cylindrical and spherical.
	ErrUnsupportedGeometry = errors.New("basis: unsupported geometry")

	// ErrDimensionMismatch is returned when a sample vector does not have
	// one entry per abscissa.
	ErrDimensionMismatch = errors.New("basis: dimension mismatch")

	// ErrOutOfRange is returned for queries outside the support of the
	// basis (negative radii, basis indices outside [0, N), radii beyond the
	// grid).
	ErrOutOfRange = errors.New("basis: query out of range")
)

package spectral

import (
	"errors"
	"fmt"
)

// Errors returned by transform constructors and methods.
var (
	ErrInvalidLength  = errors.New("spectral: invalid transform length")
	ErrLengthMismatch = errors.New("spectral: buffer length mismatch")
)

func validateLength(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return nil
}

func checkBuffers(n, dst, src int) error {
	if dst != n || src != n {
		return fmt.Errorf("%w: want %d, got dst=%d src=%d", ErrLengthMismatch, n, dst, src)
	}
	return nil
}

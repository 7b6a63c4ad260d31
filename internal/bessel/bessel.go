// Package bessel evaluates Bessel functions of the first kind J_ν for the
// orders that arise from separating the d-dimensional Laplacian,
// ν = l + d/2 - 1, i.e. integers and half-integers ν >= -1/2, and locates
// their positive zeros.
package bessel

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidOrder is returned for orders that are not integers or
	// half-integers >= -1/2.
	ErrInvalidOrder = errors.New("bessel: order must be an integer or half-integer >= -1/2")

	// ErrNoConvergence is returned when a zero cannot be located to double
	// precision or the located zeros are not strictly increasing.
	ErrNoConvergence = errors.New("bessel: root finder did not converge")
)

// ValidateOrder reports whether nu is a supported order.
func ValidateOrder(nu float64) error {
	if nu < -0.5 || math.IsNaN(nu) || math.IsInf(nu, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, nu)
	}
	if twice := 2 * nu; twice != math.Trunc(twice) {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, nu)
	}
	return nil
}

func isInteger(nu float64) bool {
	return nu == math.Trunc(nu)
}

// J returns J_ν(x) for x >= 0. The order must satisfy ValidateOrder;
// J panics otherwise since callers validate once at construction.
func J(nu, x float64) float64 {
	if err := ValidateOrder(nu); err != nil {
		panic(err)
	}
	if x < 0 {
		panic("bessel: negative argument")
	}

	if isInteger(nu) {
		return math.Jn(int(nu), x)
	}

	// Half-integer order: J_{n+1/2}(x) = sqrt(2x/π) j_n(x).
	n := int(math.Floor(nu))
	if x == 0 {
		if n < 0 {
			return math.Inf(1)
		}
		return 0
	}
	return math.Sqrt(2*x/math.Pi) * sphericalJ(n, x)
}

// Derivative returns J_ν'(x) = (ν/x) J_ν(x) - J_{ν+1}(x) for x > 0.
// At x = 0 it returns the limit: 1/2 for ν = 1, 0 for other ν > 1 or ν = 0.
func Derivative(nu, x float64) float64 {
	if x == 0 {
		switch {
		case nu == 1:
			return 0.5
		case nu == 0 || nu > 1:
			return 0
		default:
			return math.Inf(1)
		}
	}
	return nu/x*J(nu, x) - J(nu+1, x)
}

// sphericalJ returns the spherical Bessel function j_n(x) for n >= -1 and
// x > 0, with j_{-1}(x) = cos(x)/x.
func sphericalJ(n int, x float64) float64 {
	switch n {
	case -1:
		return math.Cos(x) / x
	case 0:
		return math.Sin(x) / x
	}

	if x >= float64(n) {
		// Upward recurrence is stable above the turning point.
		jm1 := math.Sin(x) / x
		j := (jm1 - math.Cos(x)) / x
		for k := 1; k < n; k++ {
			jm1, j = j, float64(2*k+1)/x*j-jm1
		}
		return j
	}

	return sphericalJMiller(n, x)
}

// sphericalJMiller evaluates j_n(x) below the turning point with Miller's
// downward recurrence, normalised against the closed forms of j_0 or j_1.
func sphericalJMiller(n int, x float64) float64 {
	const (
		big   = 1e200
		small = 1e-200
	)

	start := n + 16 + int(math.Sqrt(40*float64(n+1)))
	jp1, j := 0.0, small
	var jn, j1 float64
	for k := start; k > 0; k-- {
		jm1 := float64(2*k+1)/x*j - jp1
		jp1, j = j, jm1
		if k-1 == n {
			jn = j
		}
		if k-1 == 1 {
			j1 = j
		}
		if math.Abs(j) > big {
			j *= small
			jp1 *= small
			jn *= small
			j1 *= small
		}
	}

	// j now holds the unnormalised j_0.
	exact0 := math.Sin(x) / x
	exact1 := (exact0 - math.Cos(x)) / x
	if x < 1 {
		// Closed form of j_1 cancels for small x; j_0 has no zero here.
		return jn * exact0 / j
	}
	if math.Abs(exact0) >= math.Abs(exact1) {
		return jn * exact0 / j
	}
	return jn * exact1 / j1
}

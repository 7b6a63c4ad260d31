package bessel

import (
	"fmt"
	"math"
)

const (
	scanStep    = math.Pi / 4
	maxRefine   = 200
	rootRelTol  = 4 * 2.220446049250313e-16
	scanStartLo = 0.1
)

// Zeros returns the first n positive zeros z_1 < z_2 < ... < z_n of J_ν.
//
// Zeros are bracketed by a sign scan with step π/4 (consecutive zeros of
// J_ν for ν >= -1/2 are more than 3 apart) and refined by Newton's method
// safeguarded with bisection until the step falls below 4 ulp.
func Zeros(nu float64, n int) ([]float64, error) {
	if err := ValidateOrder(nu); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("bessel: negative zero count %d", n)
	}

	zeros := make([]float64, 0, n)

	// No zero of J_ν lies below ν, and J_ν > 0 just above the origin.
	a := math.Max(nu, scanStartLo)
	fa := J(nu, a)
	for len(zeros) < n {
		b := a + scanStep
		fb := J(nu, b)

		if fa == 0 {
			zeros = append(zeros, a)
		} else if math.Signbit(fa) != math.Signbit(fb) && fb != 0 {
			z, err := refine(nu, a, b, fa)
			if err != nil {
				return nil, fmt.Errorf("bessel: zero %d of J_%v: %w", len(zeros)+1, nu, err)
			}
			zeros = append(zeros, z)
		}

		a, fa = b, fb
	}

	for i := 1; i < len(zeros); i++ {
		if zeros[i] <= zeros[i-1] {
			return nil, fmt.Errorf("%w: zeros %d and %d not increasing", ErrNoConvergence, i, i+1)
		}
	}
	return zeros, nil
}

// refine locates the single zero of J_ν in the bracket (a, b) where fa is
// J_ν(a) and J_ν(b) has the opposite sign.
func refine(nu, a, b, fa float64) (float64, error) {
	z := 0.5 * (a + b)
	for range maxRefine {
		f := J(nu, z)
		if f == 0 {
			return z, nil
		}

		if math.Signbit(f) == math.Signbit(fa) {
			a, fa = z, f
		} else {
			b = z
		}

		if d := Derivative(nu, z); d != 0 {
			step := f / d
			if math.Abs(step) <= rootRelTol*z {
				return z - step, nil
			}
			if next := z - step; next > a && next < b {
				z = next
				continue
			}
		}

		z = 0.5 * (a + b)
		if b-a <= rootRelTol*z {
			return z, nil
		}
	}
	return 0, ErrNoConvergence
}

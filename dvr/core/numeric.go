package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b agree within eps: absolutely while
// both magnitudes are at most 1, relative to the larger one above that. A
// non-positive eps selects 1e-12. NaN is never nearly equal to anything.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= eps*scale
}

// SafeDivide writes num[i]/den[i] to dst[i]. Wherever den[i] is exactly
// zero the quotient is replaced by fill(i), the analytic limit of the
// removable singularity at that point, instead of producing NaN or Inf.
//
// dst may alias num or den. SafeDivide panics if the slice lengths differ.
func SafeDivide(dst, num, den []float64, fill func(i int) float64) {
	if len(num) != len(dst) || len(den) != len(dst) {
		panic("core: SafeDivide length mismatch")
	}

	for i := range dst {
		if den[i] == 0 {
			dst[i] = fill(i)
			continue
		}
		dst[i] = num[i] / den[i]
	}
}

// SafeQuotient is the scalar form of SafeDivide: it returns num/den, or
// limit when den is exactly zero.
func SafeQuotient(num, den, limit float64) float64 {
	if den == 0 {
		return limit
	}
	return num / den
}

// Sinc returns sin(z)/z with the limit 1 at z = 0.
func Sinc(z float64) float64 {
	return SafeQuotient(math.Sin(z), z, 1)
}

// SincDerivative returns d/dz sinc(z) = (z cos z - sin z)/z² with the limit
// 0 at z = 0. Near zero the Taylor series -z/3 + z³/30 is used to avoid
// cancellation.
func SincDerivative(z float64) float64 {
	if math.Abs(z) < 1e-4 {
		z2 := z * z
		return z * (-1.0/3 + z2/30)
	}
	return (z*math.Cos(z) - math.Sin(z)) / (z * z)
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOf2 returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Sign returns -1 for odd and +1 for even n, i.e. (-1)^n.
func Sign(n int) float64 {
	if n%2 == 0 {
		return 1
	}
	return -1
}

package basis

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-dvr/dvr/core"
	"github.com/cwbudde/algo-dvr/internal/bessel"
)

// Near a Bessel zero the quotient J(z)/(z - z_n) is taken from its Taylor
// series instead of cancelling two tiny numbers.
const zeroSeriesRadius = 1e-4

// Eval returns the basis function F_n at x. For radial geometries F_n
// represents u(r) = r^p ψ(r) (see RadialPower) and x must be >= 0.
// At the abscissas Eval returns exactly δ_mn/√λ_n.
func (b *Basis) Eval(n int, x float64) (float64, error) {
	if err := b.checkQuery(n, x); err != nil {
		return 0, err
	}
	if m, ok := b.abscissaIndex(x); ok {
		return b.cardinal(n, m), nil
	}

	switch b.cfg.Geometry {
	case GeometryPeriodic:
		return b.periodicValue(n, x), nil
	case GeometrySpherical:
		return b.oddSincValue(n, x), nil
	default:
		z := b.cfg.Cutoff * x
		return b.besselValue(n, z, b.besselScaled(z, 0.5)), nil
	}
}

// EvalRadial returns F_n(x)/x^p, the basis function for ψ itself rather than
// for u = r^p ψ. The finite limit is returned at the origin. For periodic
// bases it equals Eval.
func (b *Basis) EvalRadial(n int, x float64) (float64, error) {
	if err := b.checkQuery(n, x); err != nil {
		return 0, err
	}
	if m, ok := b.abscissaIndex(x); ok {
		return b.cardinal(n, m) / math.Pow(x, b.power), nil
	}

	switch b.cfg.Geometry {
	case GeometryPeriodic:
		return b.periodicValue(n, x), nil
	case GeometrySpherical:
		return b.oddSincRadial(n, x), nil
	default:
		z := b.cfg.Cutoff * x
		return b.besselRadial(n, z, b.besselScaled(z, b.radialExponent())), nil
	}
}

// EvalAll writes F_n(x) for every n into dst, which must have length N.
// The Bessel function is evaluated once for all n.
func (b *Basis) EvalAll(dst []float64, x float64) error {
	if err := b.CheckLen(len(dst)); err != nil {
		return err
	}
	if err := b.checkQuery(0, x); err != nil {
		return err
	}
	if m, ok := b.abscissaIndex(x); ok {
		for n := range dst {
			dst[n] = b.cardinal(n, m)
		}
		return nil
	}

	switch b.cfg.Geometry {
	case GeometryPeriodic:
		for n := range dst {
			dst[n] = b.periodicValue(n, x)
		}
	case GeometrySpherical:
		for n := range dst {
			dst[n] = b.oddSincValue(n, x)
		}
	default:
		z := b.cfg.Cutoff * x
		scaled := b.besselScaled(z, 0.5)
		for n := range dst {
			dst[n] = b.besselValue(n, z, scaled)
		}
	}
	return nil
}

// EvalRadialAll writes F_n(x)/x^p for every n into dst.
func (b *Basis) EvalRadialAll(dst []float64, x float64) error {
	if err := b.CheckLen(len(dst)); err != nil {
		return err
	}
	if err := b.checkQuery(0, x); err != nil {
		return err
	}
	if m, ok := b.abscissaIndex(x); ok {
		scale := 1 / math.Pow(x, b.power)
		for n := range dst {
			dst[n] = b.cardinal(n, m) * scale
		}
		return nil
	}

	switch b.cfg.Geometry {
	case GeometryPeriodic:
		for n := range dst {
			dst[n] = b.periodicValue(n, x)
		}
	case GeometrySpherical:
		for n := range dst {
			dst[n] = b.oddSincRadial(n, x)
		}
	default:
		z := b.cfg.Cutoff * x
		scaled := b.besselScaled(z, b.radialExponent())
		for n := range dst {
			dst[n] = b.besselRadial(n, z, scaled)
		}
	}
	return nil
}

func (b *Basis) checkQuery(n int, x float64) error {
	if n < 0 || n >= b.cfg.N {
		return fmt.Errorf("%w: basis index %d not in [0, %d)", ErrOutOfRange, n, b.cfg.N)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: non-finite point %v", ErrOutOfRange, x)
	}
	if b.cfg.Geometry.Radial() && x < 0 {
		return fmt.Errorf("%w: negative radius %v", ErrOutOfRange, x)
	}
	return nil
}

func (b *Basis) abscissaIndex(x float64) (int, bool) {
	return slices.BinarySearch(b.x, x)
}

func (b *Basis) cardinal(n, m int) float64 {
	if n != m {
		return 0
	}
	return 1 / b.sqrtW[n]
}

func (b *Basis) periodicValue(n int, x float64) float64 {
	t := (x - b.x[n]) / b.spacing
	return core.SincKernel(t, b.Period()) / b.sqrtW[n]
}

// oddSincValue is F_n(r) = [S(r - r_n) - S(r + r_n)]/√a.
func (b *Basis) oddSincValue(n int, r float64) float64 {
	period := b.Period()
	a := b.spacing
	return (core.SincKernel((r-b.x[n])/a, period) - core.SincKernel((r+b.x[n])/a, period)) / b.sqrtW[n]
}

// oddSincRadial is F_n(r)/r with the limit -2 S'(r_n)/(a√a) at the origin.
func (b *Basis) oddSincRadial(n int, r float64) float64 {
	a := b.spacing
	if r < 1e-6*a {
		return -2 * core.SincKernelDerivative(b.x[n]/a, b.Period()) / (a * b.sqrtW[n])
	}
	return b.oddSincValue(n, r) / r
}

// zeroQuotient returns J_ν(z)/(z - z_n), using the series about z_n when z
// is close to it.
func (b *Basis) zeroQuotient(n int, z float64) float64 {
	zn := b.zeros[n]
	delta := z - zn
	nu2 := b.nu * b.nu
	return b.slopes[n] * (1 - delta/(2*zn) + delta*delta*(2+nu2-zn*zn)/(6*zn*zn))
}

func (b *Basis) nearZero(n int, z float64) bool {
	return math.Abs(z-b.zeros[n]) < zeroSeriesRadius
}

// besselPrefactor is sign(J'(z_n)) √(2k) z_n, which makes F_n(r_n) > 0.
func (b *Basis) besselPrefactor(n int) float64 {
	c := math.Sqrt(2*b.cfg.Cutoff) * b.zeros[n]
	if b.slopes[n] < 0 {
		return -c
	}
	return c
}

// besselScaled returns z^q J_ν(z), with its finite limit at the origin.
func (b *Basis) besselScaled(z, q float64) float64 {
	if z > 0 {
		return math.Pow(z, q) * bessel.J(b.nu, z)
	}
	if q+b.nu > 0 {
		return 0
	}
	lg, _ := math.Lgamma(b.nu + 1)
	return math.Exp(-b.nu*math.Ln2 - lg)
}

// besselValue is F_n(r) = s_n √(2k) z_n √z J_ν(z)/(z² - z_n²), where
// scaled = √z J_ν(z).
func (b *Basis) besselValue(n int, z, scaled float64) float64 {
	zn := b.zeros[n]
	if b.nearZero(n, z) {
		return b.besselPrefactor(n) * math.Sqrt(z) * b.zeroQuotient(n, z) / (z + zn)
	}
	return b.besselPrefactor(n) * scaled / (z*z - zn*zn)
}

// radialExponent is q = 1 - d/2, so that F_n(r)/r^p ∝ z^q J_ν(z).
func (b *Basis) radialExponent() float64 {
	return 1 - float64(b.cfg.Dimension)/2
}

// besselRadial is F_n(r)/r^p = s_n √(2k) z_n k^p z^q J_ν(z)/(z² - z_n²),
// where scaled = z^q J_ν(z).
func (b *Basis) besselRadial(n int, z, scaled float64) float64 {
	c := b.besselPrefactor(n) * math.Pow(b.cfg.Cutoff, b.power)
	zn := b.zeros[n]
	if b.nearZero(n, z) {
		return c * math.Pow(z, b.radialExponent()) * b.zeroQuotient(n, z) / (z + zn)
	}
	return c * scaled / (z*z - zn*zn)
}

package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-dvr/dvr/basis"
	"github.com/cwbudde/algo-dvr/dvr/core"
)

// Coefficients returns the basis coefficients f_n = √λ_n x_n^p ψ(x_n) of the
// samples ψ(x_n).
func Coefficients(b *basis.Basis, samples []float64) ([]float64, error) {
	if err := b.CheckLen(len(samples)); err != nil {
		return nil, err
	}
	coef := make([]float64, len(samples))
	vecmath.MulBlock(coef, samples, radialScale(b))
	return coef, nil
}

// Samples inverts Coefficients.
func Samples(b *basis.Basis, coef []float64) ([]float64, error) {
	if err := b.CheckLen(len(coef)); err != nil {
		return nil, err
	}
	scale := radialScale(b)
	out := make([]float64, len(coef))
	for i, c := range coef {
		out[i] = c / scale[i]
	}
	return out, nil
}

// radialScale returns √λ_n x_n^p.
func radialScale(b *basis.Basis) []float64 {
	scale := b.SqrtWeights()
	if p := b.RadialPower(); p != 0 {
		for i, x := range b.Abscissas() {
			scale[i] *= math.Pow(x, p)
		}
	}
	return scale
}

// Evaluate reconstructs ψ(x) = Σ_n √λ_n x_n^p ψ(x_n) F_n(x)/x^p from the
// samples. At an abscissa it returns the sample itself. Radial bases reject
// x < 0 and x > R.
func Evaluate(b *basis.Basis, samples []float64, x float64) (float64, error) {
	coef, err := Coefficients(b, samples)
	if err != nil {
		return 0, err
	}
	f := make([]float64, b.Len())
	return evaluate(b, coef, f, x)
}

// EvaluateAll is Evaluate at several points, sharing the coefficients.
func EvaluateAll(b *basis.Basis, samples []float64, xs []float64) ([]float64, error) {
	coef, err := Coefficients(b, samples)
	if err != nil {
		return nil, err
	}
	f := make([]float64, b.Len())
	out := make([]float64, len(xs))
	for i, x := range xs {
		if out[i], err = evaluate(b, coef, f, x); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func evaluate(b *basis.Basis, coef, scratch []float64, x float64) (float64, error) {
	if r := b.Length(); b.Geometry().Radial() && x > r && !core.NearlyEqual(x, r, 1e-12) {
		return 0, fmt.Errorf("%w: r = %v beyond R = %v", ErrOutOfRange, x, b.Length())
	}
	if err := b.EvalRadialAll(scratch, x); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	return floats.Dot(coef, scratch), nil
}

// Integrate returns the quadrature Σ_n λ_n g(x_n) ≈ ∫ g dx over the basis
// coordinate. It is exact for products u·v of functions in the basis span.
func Integrate(b *basis.Basis, g []float64) (float64, error) {
	if err := b.CheckLen(len(g)); err != nil {
		return 0, err
	}
	return floats.Dot(b.Weights(), g), nil
}

// Metric returns the volume weights μ_n with ∫ n dV ≈ Σ_n μ_n n(x_n):
// λ_n for periodic bases and S_d r_n^(d-1) λ_n for radial bases, S_d being
// the area of the unit sphere in d dimensions (2π r_n λ_n in 2-D, 4π r_n² λ_n
// in 3-D).
func Metric(b *basis.Basis) []float64 {
	w := b.Weights()
	if !b.Geometry().Radial() {
		return w
	}
	d := float64(b.Dimension())
	area := 2 * math.Pow(math.Pi, d/2) / math.Gamma(d/2)
	for i, r := range b.Abscissas() {
		w[i] *= area * math.Pow(r, d-1)
	}
	return w
}

// IntegrateVolume returns ∫ n dV ≈ Σ_n μ_n n(x_n) with the weights of Metric.
func IntegrateVolume(b *basis.Basis, n []float64) (float64, error) {
	if err := b.CheckLen(len(n)); err != nil {
		return 0, err
	}
	return floats.Dot(Metric(b), n), nil
}

package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-dvr/dvr/basis"
)

// AbelOption configures the Abel transform.
type AbelOption func(*abelConfig)

type abelConfig struct {
	samples int
}

// WithSamples sets the number of trapezoid nodes along the line of sight.
// The default is 4N. Values < 2 are rejected.
func WithSamples(n int) AbelOption {
	return func(cfg *abelConfig) {
		cfg.samples = n
	}
}

func applyAbelOptions(b *basis.Basis, opts []AbelOption) (abelConfig, error) {
	cfg := abelConfig{samples: 4 * b.Len()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.samples < 2 {
		return cfg, fmt.Errorf("%w: Abel transform needs >= 2 samples, got %d", basis.ErrInvalidConfig, cfg.samples)
	}
	return cfg, nil
}

// LineOfSight1D returns n_1D = ∫ 2πr n(r) dr ≈ Σ_n λ_n 2π r_n n(r_n), the
// integral of a 2-D radial density over its cross-section.
func LineOfSight1D(b *basis.Basis, n []float64) (float64, error) {
	if err := requirePlanar(b); err != nil {
		return 0, err
	}
	return IntegrateVolume(b, n)
}

// Abel returns the line-of-sight projection of the radial density n at
// impact parameter y,
//
//	n_2D(y) = 2 ∫_0^√(R²-y²) n(√(y²+z²)) dz,
//
// reconstructing n off the grid from the basis and integrating with the
// trapezoid rule. |y| > R is reported as ErrOutOfRange.
func Abel(b *basis.Basis, n []float64, y float64, opts ...AbelOption) (float64, error) {
	if !b.Geometry().Radial() {
		return 0, fmt.Errorf("%w: Abel transform of %s basis", ErrGeometry, b.Geometry())
	}
	cfg, err := applyAbelOptions(b, opts)
	if err != nil {
		return 0, err
	}
	coef, err := Coefficients(b, n)
	if err != nil {
		return 0, err
	}

	rows, z, err := abelRows(b, y, cfg.samples)
	if err != nil {
		return 0, err
	}
	if rows == nil {
		return 0, nil
	}
	f := make([]float64, len(rows))
	for j, row := range rows {
		f[j] = floats.Dot(row, coef)
	}
	return 2 * integrate.Trapezoidal(z, f), nil
}

// abelRows tabulates F_n(r_j)/r_j^p at the nodes r_j = √(y²+z_j²) of the
// line of sight. It returns nil rows when the path has zero length.
func abelRows(b *basis.Basis, y float64, samples int) ([][]float64, []float64, error) {
	R := b.Length()
	y = math.Abs(y)
	if math.IsNaN(y) || y > R {
		return nil, nil, fmt.Errorf("%w: |y| = %v beyond R = %v", ErrOutOfRange, y, R)
	}
	zmax := math.Sqrt(R*R - y*y)
	if zmax == 0 {
		return nil, nil, nil
	}

	z := make([]float64, samples)
	floats.Span(z, 0, zmax)
	rows := make([][]float64, samples)
	for j, zj := range z {
		rows[j] = make([]float64, b.Len())
		if err := b.EvalRadialAll(rows[j], math.Hypot(y, zj)); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
		}
	}
	return rows, z, nil
}

func requirePlanar(b *basis.Basis) error {
	if b.Geometry() != basis.GeometryCylindrical || b.Dimension() != 2 {
		return fmt.Errorf("%w: line-of-sight integral needs a 2-D cylindrical basis, got %s", ErrGeometry, b)
	}
	return nil
}

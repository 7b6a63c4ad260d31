package basis

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-dvr/internal/bessel"
)

// Basis is an immutable DVR basis: abscissas, quadrature weights and the
// cardinal basis functions attached to them.
type Basis struct {
	cfg        Config
	userOrigin bool

	nu      float64
	spacing float64
	power   float64

	x     []float64
	w     []float64
	sqrtW []float64

	// Bessel bases only.
	zeros  []float64
	slopes []float64
	zEdge  float64
}

// New constructs a basis of n functions for the given geometry. length is the
// period L (periodic) or the radius R (cylindrical, spherical); it is ignored
// when WithCutoff is given.
func New(geometry Geometry, n int, length float64, opts ...Option) (*Basis, error) {
	s := applyOptions(Config{Geometry: geometry, N: n, Length: length}, opts)
	return build(s)
}

// FromConfig constructs a basis from a declarative configuration. A zero
// Cutoff, Dimension or Boundary selects the default.
func FromConfig(cfg Config) (*Basis, error) {
	return build(settings{cfg: cfg})
}

// With returns a new basis with the receiver's configuration modified by
// opts. The receiver is unchanged. The resolved length is kept unless opts
// set a cutoff, and a default origin is re-derived from the new length.
func (b *Basis) With(opts ...Option) (*Basis, error) {
	cfg := b.Config()
	cfg.Cutoff = 0
	if !b.userOrigin {
		cfg.Origin = nil
	}
	s := applyOptions(cfg, opts)
	return build(s)
}

func build(s settings) (*Basis, error) {
	cfg, err := s.normalize()
	if err != nil {
		return nil, err
	}
	if cfg.Origin != nil {
		origin := *cfg.Origin
		cfg.Origin = &origin
	}

	b := &Basis{
		cfg:        cfg,
		userOrigin: cfg.Origin != nil,
		x:          make([]float64, cfg.N),
		w:          make([]float64, cfg.N),
		sqrtW:      make([]float64, cfg.N),
	}

	switch cfg.Geometry {
	case GeometryPeriodic:
		b.buildPeriodic()
	case GeometrySpherical:
		b.buildSpherical()
	case GeometryCylindrical:
		if err := b.buildBessel(); err != nil {
			return nil, err
		}
	}

	for i, w := range b.w {
		b.sqrtW[i] = math.Sqrt(w)
	}
	return b, nil
}

// sincSpacing fixes a and k_max (and the length) of a sinc-type grid.
func (b *Basis) sincSpacing() {
	n := float64(b.cfg.N)
	if b.cfg.Cutoff > 0 {
		b.spacing = math.Pi / b.cfg.Cutoff
		b.cfg.Length = n * b.spacing
	} else {
		b.spacing = b.cfg.Length / n
		b.cfg.Cutoff = math.Pi / b.spacing
	}
}

func (b *Basis) buildPeriodic() {
	b.sincSpacing()
	x0 := -b.cfg.Length / 2
	if b.cfg.Origin != nil {
		x0 = *b.cfg.Origin
	} else {
		b.cfg.Origin = &x0
	}
	for i := range b.x {
		b.x[i] = x0 + float64(i)*b.spacing
		b.w[i] = b.spacing
	}
}

func (b *Basis) buildSpherical() {
	b.sincSpacing()
	b.nu = 0.5
	b.power = 1
	for i := range b.x {
		b.x[i] = (float64(i) + 0.5) * b.spacing
		b.w[i] = b.spacing
	}
}

func (b *Basis) buildBessel() error {
	cfg := &b.cfg
	b.nu = besselOrder(cfg.AngularMomentum, cfg.Dimension)
	b.power = float64(cfg.Dimension-1) / 2

	zeros, err := bessel.Zeros(b.nu, cfg.N+1)
	if err != nil {
		return fmt.Errorf("basis: Bessel zeros of order %v: %w", b.nu, err)
	}
	b.zEdge = zeros[cfg.N]
	b.zeros = zeros[:cfg.N:cfg.N]

	if cfg.Cutoff > 0 {
		cfg.Length = b.zEdge / cfg.Cutoff
	} else {
		cfg.Cutoff = b.zEdge / cfg.Length
	}
	k := cfg.Cutoff

	b.slopes = make([]float64, cfg.N)
	for i, z := range b.zeros {
		dj := bessel.Derivative(b.nu, z)
		b.slopes[i] = dj
		b.x[i] = z / k
		b.w[i] = 2 / (k * z * dj * dj)
	}
	return nil
}

// Geometry returns the coordinate system of the basis.
func (b *Basis) Geometry() Geometry { return b.cfg.Geometry }

// Len returns the number of basis functions N.
func (b *Basis) Len() int { return b.cfg.N }

// Config returns the fully resolved configuration, with Length, Cutoff,
// Dimension and (periodic) Origin filled in.
func (b *Basis) Config() Config {
	cfg := b.cfg
	if cfg.Origin != nil {
		origin := *cfg.Origin
		cfg.Origin = &origin
	}
	return cfg
}

// Abscissas returns a copy of the grid points x_n (or radii r_n).
func (b *Basis) Abscissas() []float64 { return slices.Clone(b.x) }

// Weights returns a copy of the quadrature weights λ_n.
func (b *Basis) Weights() []float64 { return slices.Clone(b.w) }

// SqrtWeights returns a copy of √λ_n, the factors mapping samples to
// coefficients.
func (b *Basis) SqrtWeights() []float64 { return slices.Clone(b.sqrtW) }

// Zeros returns a copy of the Bessel zeros z_1..z_N, or nil for sinc bases.
func (b *Basis) Zeros() []float64 { return slices.Clone(b.zeros) }

// ZeroSlopes returns J_ν'(z_n) at each Bessel zero, or nil for sinc bases.
func (b *Basis) ZeroSlopes() []float64 { return slices.Clone(b.slopes) }

// EdgeZero returns z_{N+1}, the zero that defines the Bessel cutoff, or 0 for
// sinc bases.
func (b *Basis) EdgeZero() float64 { return b.zEdge }

// Cutoff returns the momentum cutoff k_max.
func (b *Basis) Cutoff() float64 { return b.cfg.Cutoff }

// Length returns the period L or the radius R.
func (b *Basis) Length() float64 { return b.cfg.Length }

// Spacing returns the grid spacing a of sinc bases, or 0 for Bessel bases.
func (b *Basis) Spacing() float64 { return b.spacing }

// Order returns the Bessel order ν. Spherical bases report ν = 1/2, the order
// of their equivalent Bessel basis.
func (b *Basis) Order() float64 { return b.nu }

// Dimension returns the spatial dimension d.
func (b *Basis) Dimension() int { return b.cfg.Dimension }

// AngularMomentum returns l.
func (b *Basis) AngularMomentum() int { return b.cfg.AngularMomentum }

// Boundary returns the sinc boundary flavour.
func (b *Basis) Boundary() Boundary { return b.cfg.Boundary }

// RadialPower returns p such that the basis represents u(r) = r^p ψ(r):
// 0 for periodic, (d-1)/2 for cylindrical and 1 for spherical bases.
func (b *Basis) RadialPower() float64 { return b.power }

// Origin returns x_0 of a periodic basis, or 0 otherwise.
func (b *Basis) Origin() float64 {
	if b.cfg.Origin == nil {
		return 0
	}
	return *b.cfg.Origin
}

// Period returns the number of grid points after which the sinc functions
// repeat: N for periodic, 2N for spherical (odd) bases, 0 for open or
// Bessel bases.
func (b *Basis) Period() int {
	if b.cfg.Boundary == BoundaryOpen {
		return 0
	}
	switch b.cfg.Geometry {
	case GeometryPeriodic:
		return b.cfg.N
	case GeometrySpherical:
		return 2 * b.cfg.N
	default:
		return 0
	}
}

// Orthonormal reports whether the basis functions are orthonormal as
// functions, ∫F_i F_j = δ_ij, and not only cardinal on the grid. It is false
// for BoundaryPeriodic bases of even period, whose Nyquist mode carries half
// weight.
func (b *Basis) Orthonormal() bool {
	p := b.Period()
	return p == 0 || p%2 == 1
}

// CheckLen returns ErrDimensionMismatch unless n equals the number of
// abscissas.
func (b *Basis) CheckLen(n int) error {
	if n != b.cfg.N {
		return fmt.Errorf("%w: got %d values for %d abscissas", ErrDimensionMismatch, n, b.cfg.N)
	}
	return nil
}

// String describes the basis, e.g. "cylindrical(N=32, R=5, k=6.13, l=0, d=2)".
func (b *Basis) String() string {
	switch b.cfg.Geometry {
	case GeometryPeriodic:
		return fmt.Sprintf("periodic(N=%d, L=%.6g, k=%.6g, %s)",
			b.cfg.N, b.cfg.Length, b.cfg.Cutoff, b.cfg.Boundary)
	case GeometrySpherical:
		return fmt.Sprintf("spherical(N=%d, R=%.6g, k=%.6g, %s)",
			b.cfg.N, b.cfg.Length, b.cfg.Cutoff, b.cfg.Boundary)
	default:
		return fmt.Sprintf("cylindrical(N=%d, R=%.6g, k=%.6g, l=%d, d=%d)",
			b.cfg.N, b.cfg.Length, b.cfg.Cutoff, b.cfg.AngularMomentum, b.cfg.Dimension)
	}
}

package basis

import (
	"fmt"
	"math"
)

// Config is the declarative description of a basis. It is the form read
// from configuration files; [New] builds the same value from options.
//
// Length is the period L for the periodic geometry and the radius R for the
// radial geometries. A zero Cutoff derives k_max from Length; a positive
// Cutoff takes precedence and Length is recomputed from it.
type Config struct {
	Geometry        Geometry `yaml:"geometry"`
	N               int      `yaml:"n"`
	Length          float64  `yaml:"length"`
	Cutoff          float64  `yaml:"cutoff,omitempty"`
	AngularMomentum int      `yaml:"l,omitempty"`
	Dimension       int      `yaml:"dim,omitempty"`
	Origin          *float64 `yaml:"origin,omitempty"`
	Boundary        Boundary `yaml:"boundary,omitempty"`
}

// Option mutates a basis configuration.
type Option func(*settings)

type settings struct {
	cfg       Config
	cutoffSet bool
}

// WithCutoff sets the momentum cutoff k_max. The grid length is then derived
// from the cutoff: L = Nπ/k for sinc bases and R = z_{N+1}/k for Bessel
// bases. Values <= 0 are rejected by New.
func WithCutoff(k float64) Option {
	return func(s *settings) {
		s.cfg.Cutoff = k
		s.cutoffSet = true
	}
}

// WithAngularMomentum sets the angular momentum quantum number l of radial
// bases. Default 0.
func WithAngularMomentum(l int) Option {
	return func(s *settings) {
		s.cfg.AngularMomentum = l
	}
}

// WithDimension sets the spatial dimension d of radial bases. Default 2 for
// cylindrical and 3 for spherical geometries.
func WithDimension(d int) Option {
	return func(s *settings) {
		s.cfg.Dimension = d
	}
}

// WithOrigin sets x_0 of the periodic grid. Default -L/2, which places the
// grid symmetrically about the origin.
func WithOrigin(x0 float64) Option {
	return func(s *settings) {
		s.cfg.Origin = &x0
	}
}

// WithBoundary selects open or periodic sinc functions. Default
// BoundaryOpen.
func WithBoundary(b Boundary) Option {
	return func(s *settings) {
		s.cfg.Boundary = b
	}
}

func applyOptions(cfg Config, opts []Option) settings {
	s := settings{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

func defaultDimension(g Geometry) int {
	switch g {
	case GeometryCylindrical:
		return 2
	case GeometrySpherical:
		return 3
	default:
		return 1
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// normalize validates s and fills the geometry defaults.
func (s *settings) normalize() (Config, error) {
	cfg := s.cfg

	if !cfg.Geometry.Valid() {
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, cfg.Geometry)
	}
	if cfg.N < 1 {
		return cfg, invalid("N must be >= 1, got %d", cfg.N)
	}
	if math.IsNaN(cfg.Cutoff) || math.IsInf(cfg.Cutoff, 0) || cfg.Cutoff < 0 ||
		(s.cutoffSet && cfg.Cutoff == 0) {
		return cfg, invalid("cutoff must be > 0, got %v", cfg.Cutoff)
	}
	if cfg.Cutoff == 0 && (!(cfg.Length > 0) || math.IsInf(cfg.Length, 0)) {
		return cfg, invalid("length must be > 0, got %v", cfg.Length)
	}
	if cfg.Boundary != BoundaryPeriodic && cfg.Boundary != BoundaryOpen {
		return cfg, invalid("unknown boundary %d", int(cfg.Boundary))
	}
	if cfg.Origin != nil && (math.IsNaN(*cfg.Origin) || math.IsInf(*cfg.Origin, 0)) {
		return cfg, invalid("origin must be finite")
	}
	if cfg.Dimension == 0 {
		cfg.Dimension = defaultDimension(cfg.Geometry)
	}

	switch cfg.Geometry {
	case GeometryPeriodic:
		if cfg.Dimension != 1 {
			return cfg, invalid("periodic basis is one-dimensional, got dim=%d", cfg.Dimension)
		}
		if cfg.AngularMomentum != 0 {
			return cfg, invalid("periodic basis has no angular momentum")
		}
	case GeometrySpherical:
		if cfg.Dimension != 3 || cfg.AngularMomentum != 0 {
			return cfg, invalid("spherical basis supports l=0 in 3 dimensions only; use the cylindrical geometry with WithDimension(3) for l=%d",
				cfg.AngularMomentum)
		}
		if cfg.Origin != nil {
			return cfg, invalid("origin applies to the periodic geometry only")
		}
	case GeometryCylindrical:
		if cfg.Dimension < 1 {
			return cfg, invalid("dimension must be >= 1, got %d", cfg.Dimension)
		}
		if cfg.AngularMomentum < 0 {
			return cfg, invalid("angular momentum must be >= 0, got %d", cfg.AngularMomentum)
		}
		if cfg.Origin != nil {
			return cfg, invalid("origin applies to the periodic geometry only")
		}
		if nu := besselOrder(cfg.AngularMomentum, cfg.Dimension); nu < -0.5 {
			return cfg, invalid("Bessel order %v < -1/2 (l=%d, d=%d)", nu, cfg.AngularMomentum, cfg.Dimension)
		}
	}

	return cfg, nil
}

// besselOrder returns ν = l + d/2 - 1.
func besselOrder(l, d int) float64 {
	return float64(l) + float64(d)/2 - 1
}

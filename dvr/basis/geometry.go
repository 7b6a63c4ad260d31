package basis

import (
	"fmt"
	"strings"
)

// Geometry identifies the coordinate system of a basis.
type Geometry int

const (
	// GeometryPeriodic is a one-dimensional sinc basis on an equally spaced grid.
	GeometryPeriodic Geometry = iota
	// GeometryCylindrical is a radial Bessel-function basis.
	GeometryCylindrical
	// GeometrySpherical is the odd sinc basis for radial s-waves in 3-D.
	GeometrySpherical
)

var geometryNames = map[Geometry]string{
	GeometryPeriodic:    "periodic",
	GeometryCylindrical: "cylindrical",
	GeometrySpherical:   "spherical",
}

// String returns the lower-case name of the geometry.
func (g Geometry) String() string {
	if name, ok := geometryNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Geometry(%d)", int(g))
}

// Valid reports whether g is one of the supported geometries.
func (g Geometry) Valid() bool {
	_, ok := geometryNames[g]
	return ok
}

// Radial reports whether abscissas are radii (r >= 0).
func (g Geometry) Radial() bool {
	return g == GeometryCylindrical || g == GeometrySpherical
}

// ParseGeometry converts a name ("periodic", "cylindrical", "spherical",
// case-insensitive) to a Geometry.
func ParseGeometry(name string) (Geometry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for g, n := range geometryNames {
		if n == key {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedGeometry, name)
}

// MarshalText implements encoding.TextMarshaler.
func (g Geometry) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedGeometry, int(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Geometry) UnmarshalText(text []byte) error {
	parsed, err := ParseGeometry(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Boundary selects between the open and the periodic sinc functions for the
// periodic and spherical geometries. It is ignored by the cylindrical
// geometry.
type Boundary int

const (
	// BoundaryOpen uses the infinite-line sinc functions. They are
	// orthonormal on the whole line (half line for spherical bases), so
	// the quadrature is exact for products of basis functions.
	BoundaryOpen Boundary = iota
	// BoundaryPeriodic sums the sinc functions over all periodic images.
	// The kinetic operator is then exact for the plane waves of the box and
	// agrees with the FFT (periodic) or DST (spherical) Laplacian.
	//
	// The functions stay cardinal, but for an even period P the Nyquist
	// mode enters with half weight and the overlap over one period is
	// δ_ij - (±1)/(2N) instead of δ_ij. Spherical bases always have the
	// even period 2N. See [Basis.Orthonormal].
	BoundaryPeriodic
)

// String returns "periodic" or "open".
func (b Boundary) String() string {
	switch b {
	case BoundaryPeriodic:
		return "periodic"
	case BoundaryOpen:
		return "open"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// ParseBoundary converts "open" or "periodic" to a Boundary. The empty
// string selects the default BoundaryOpen.
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "open", "":
		return BoundaryOpen, nil
	case "periodic":
		return BoundaryPeriodic, nil
	default:
		return 0, fmt.Errorf("%w: unknown boundary %q", ErrInvalidConfig, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Boundary) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Boundary) UnmarshalText(text []byte) error {
	parsed, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

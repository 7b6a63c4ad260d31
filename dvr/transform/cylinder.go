package transform

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dvr/dvr/basis"
	"github.com/cwbudde/algo-dvr/dvr/kinetic"
)

// Cylinder is the product of a periodic axial basis x and a 2-D cylindrical
// radial basis r. Fields are stored row-major with the axial index outermost:
// n[i*Nr + j] = n(x_i, r_j).
type Cylinder struct {
	x, r   *basis.Basis
	tx, tr *kinetic.Operator
}

// NewCylinder combines an axial and a radial basis.
func NewCylinder(x, r *basis.Basis) (*Cylinder, error) {
	if x.Geometry() != basis.GeometryPeriodic {
		return nil, fmt.Errorf("%w: axial basis must be periodic, got %s", ErrGeometry, x.Geometry())
	}
	if err := requirePlanar(r); err != nil {
		return nil, err
	}
	return &Cylinder{x: x, r: r}, nil
}

// NewCylinderGrid builds a Cylinder from grid sizes (nx, nr) and lengths
// (lx, R), with an open sinc x basis and an l = 0 radial basis.
func NewCylinderGrid(nx, nr int, lx, radius float64) (*Cylinder, error) {
	x, err := basis.New(basis.GeometryPeriodic, nx, lx)
	if err != nil {
		return nil, err
	}
	r, err := basis.New(basis.GeometryCylindrical, nr, radius)
	if err != nil {
		return nil, err
	}
	return NewCylinder(x, r)
}

// Axial returns the x basis.
func (c *Cylinder) Axial() *basis.Basis { return c.x }

// Radial returns the r basis.
func (c *Cylinder) Radial() *basis.Basis { return c.r }

// Shape returns (Nx, Nr).
func (c *Cylinder) Shape() (int, int) { return c.x.Len(), c.r.Len() }

// Len returns Nx·Nr.
func (c *Cylinder) Len() int { return c.x.Len() * c.r.Len() }

// Sample tabulates f(x_i, r_j).
func (c *Cylinder) Sample(f func(x, r float64) float64) []float64 {
	xs, rs := c.x.Abscissas(), c.r.Abscissas()
	out := make([]float64, 0, len(xs)*len(rs))
	for _, x := range xs {
		for _, r := range rs {
			out = append(out, f(x, r))
		}
	}
	return out
}

func (c *Cylinder) checkLen(n int) error {
	if n != c.Len() {
		return fmt.Errorf("%w: got %d values for a %d×%d grid", basis.ErrDimensionMismatch, n, c.x.Len(), c.r.Len())
	}
	return nil
}

func (c *Cylinder) matrix(n []float64) *mat.Dense {
	return mat.NewDense(c.x.Len(), c.r.Len(), n)
}

// Integrate returns ∫ n dV ≈ Σ_ij λ_i 2π r_j λ_j n_ij.
func (c *Cylinder) Integrate(n []float64) (float64, error) {
	n1d, err := c.LineOfSight(n)
	if err != nil {
		return 0, err
	}
	return floats.Dot(c.x.Weights(), n1d), nil
}

// LineOfSight returns n_1D(x_i) = ∫ 2πr n(x_i, r) dr.
func (c *Cylinder) LineOfSight(n []float64) ([]float64, error) {
	if err := c.checkLen(len(n)); err != nil {
		return nil, err
	}
	var out mat.VecDense
	out.MulVec(c.matrix(n), mat.NewVecDense(c.r.Len(), Metric(c.r)))
	return out.RawVector().Data, nil
}

// Abel returns n_2D(x_i, y) = ∫ n(x_i, √(y²+z²)) dz for every axial point.
// The radial reconstruction is tabulated once and shared by all rows.
func (c *Cylinder) Abel(n []float64, y float64, opts ...AbelOption) ([]float64, error) {
	if err := c.checkLen(len(n)); err != nil {
		return nil, err
	}
	cfg, err := applyAbelOptions(c.r, opts)
	if err != nil {
		return nil, err
	}

	nx, nr := c.Shape()
	out := make([]float64, nx)
	rows, z, err := abelRows(c.r, y, cfg.samples)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return out, nil
	}

	// Basis values along the line of sight: E[j, m] = F_m(r_j)/√r_j.
	e := mat.NewDense(len(rows), nr, nil)
	for j, row := range rows {
		e.SetRow(j, row)
	}

	// Coefficients of every row at once: C[i, m] = n_im √λ_m √r_m.
	scale := radialScale(c.r)
	coef := mat.DenseCopyOf(c.matrix(n))
	for i := range nx {
		row := coef.RawRowView(i)
		for m := range row {
			row[m] *= scale[m]
		}
	}

	var vals mat.Dense
	vals.Mul(coef, e.T())
	for i := range nx {
		out[i] = 2 * integrate.Trapezoidal(z, vals.RawRowView(i))
	}
	return out, nil
}

// Laplacian writes ∇²ψ = ∂²ψ/∂x² + (1/r)∂/∂r(r ∂ψ/∂r) into dst.
func (c *Cylinder) Laplacian(dst, psi []float64) error {
	if err := c.checkLen(len(psi)); err != nil {
		return err
	}
	if err := c.checkLen(len(dst)); err != nil {
		return err
	}
	if err := c.operators(); err != nil {
		return err
	}

	nx, nr := c.Shape()
	out := make([]float64, len(psi))
	radial := make([]float64, nr)
	for i := range nx {
		if err := c.tr.Laplacian(radial, psi[i*nr:(i+1)*nr]); err != nil {
			return err
		}
		copy(out[i*nr:], radial)
	}

	col := make([]float64, nx)
	axial := make([]float64, nx)
	for j := range nr {
		for i := range nx {
			col[i] = psi[i*nr+j]
		}
		if err := c.tx.Laplacian(axial, col); err != nil {
			return err
		}
		for i := range nx {
			out[i*nr+j] += axial[i]
		}
	}
	copy(dst, out)
	return nil
}

func (c *Cylinder) operators() error {
	if c.tx != nil {
		return nil
	}
	tx, err := kinetic.New(c.x)
	if err != nil {
		return err
	}
	tr, err := kinetic.New(c.r)
	if err != nil {
		return err
	}
	c.tx, c.tr = tx, tr
	return nil
}

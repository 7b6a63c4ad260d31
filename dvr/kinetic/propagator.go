package kinetic

import (
	"fmt"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dvr/dvr/basis"
)

// eigen is the cached spectral decomposition T = V diag(values) Vᵀ.
type eigen struct {
	values  []float64
	vectors *mat.Dense
}

func (op *Operator) decompose() (*eigen, error) {
	if op.eig != nil {
		return op.eig, nil
	}
	var es mat.EigenSym
	if ok := es.Factorize(op.Dense(), true); !ok {
		return nil, ErrNotConverged
	}
	e := &eigen{values: es.Values(nil), vectors: mat.NewDense(op.n, op.n, nil)}
	es.VectorsTo(e.vectors)
	op.eig = e
	return e, nil
}

// Eigenvalues returns the eigenvalues of T in ascending order.
func (op *Operator) Eigenvalues() ([]float64, error) {
	e, err := op.decompose()
	if err != nil {
		return nil, err
	}
	return slices.Clone(e.values), nil
}

// Propagator applies exp(αT) to sampled states, e.g. α = -iΔt/(2m) for the
// kinetic half of a split-operator step or α = -τ for imaginary time.
type Propagator struct {
	op      *Operator
	vectors *mat.Dense
	phase   []complex128

	re, im []float64
}

// Exp returns the propagator exp(αT).
func (op *Operator) Exp(alpha complex128) (*Propagator, error) {
	e, err := op.decompose()
	if err != nil {
		return nil, err
	}
	phase := make([]complex128, op.n)
	for i, v := range e.values {
		phase[i] = cmplx.Exp(alpha * complex(v, 0))
	}
	return &Propagator{
		op:      op,
		vectors: e.vectors,
		phase:   phase,
		re:      make([]float64, op.n),
		im:      make([]float64, op.n),
	}, nil
}

// Apply writes the samples of exp(αT)u into dst. dst and src may be the
// same slice.
func (p *Propagator) Apply(dst, src []complex128) error {
	op := p.op
	if err := op.b.CheckLen(len(src)); err != nil {
		return err
	}
	if err := op.b.CheckLen(len(dst)); err != nil {
		return err
	}

	for i, v := range src {
		p.re[i] = real(v) * op.sqrtW[i]
		p.im[i] = imag(v) * op.sqrtW[i]
	}

	var yr, yi mat.VecDense
	yr.MulVec(p.vectors.T(), mat.NewVecDense(op.n, p.re))
	yi.MulVec(p.vectors.T(), mat.NewVecDense(op.n, p.im))
	for i, ph := range p.phase {
		c := complex(yr.AtVec(i), yi.AtVec(i)) * ph
		p.re[i] = real(c)
		p.im[i] = imag(c)
	}

	yr.MulVec(p.vectors, mat.NewVecDense(op.n, p.re))
	yi.MulVec(p.vectors, mat.NewVecDense(op.n, p.im))
	for i := range dst {
		dst[i] = complex(yr.AtVec(i), yi.AtVec(i)) * complex(op.invSqrtW[i], 0)
	}
	return nil
}

// ApplyState replaces the samples of s by those of exp(αT) s.
func (p *Propagator) ApplyState(s *basis.State) error {
	if s.Basis() != p.op.b {
		return fmt.Errorf("%w: state belongs to a different basis", basis.ErrDimensionMismatch)
	}
	return p.Apply(s.Values(), s.Values())
}

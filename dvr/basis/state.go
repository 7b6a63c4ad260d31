package basis

import (
	"math"
	"math/cmplx"
	"slices"
)

// State is a wavefunction sampled on the abscissas of a basis: Values()[n]
// holds u(x_n) = x_n^p ψ(x_n). The basis coefficients are √λ_n·u(x_n).
type State struct {
	basis  *Basis
	values []complex128
}

// NewState wraps values (not copied) as a state on b.
func NewState(b *Basis, values []complex128) (*State, error) {
	if err := b.CheckLen(len(values)); err != nil {
		return nil, err
	}
	return &State{basis: b, values: values}, nil
}

// NewRealState copies real samples into a new state on b.
func NewRealState(b *Basis, values []float64) (*State, error) {
	if err := b.CheckLen(len(values)); err != nil {
		return nil, err
	}
	psi := make([]complex128, len(values))
	for i, v := range values {
		psi[i] = complex(v, 0)
	}
	return &State{basis: b, values: psi}, nil
}

// SampleState evaluates ψ on the abscissas of b and stores u = r^p ψ.
func SampleState(b *Basis, psi func(x float64) complex128) *State {
	values := make([]complex128, b.Len())
	for i, x := range b.x {
		values[i] = psi(x) * complex(math.Pow(x, b.power), 0)
	}
	return &State{basis: b, values: values}
}

// Basis returns the basis the state lives on.
func (s *State) Basis() *Basis { return s.basis }

// Len returns the number of samples.
func (s *State) Len() int { return len(s.values) }

// Values returns the underlying samples. Modifying them modifies the state.
func (s *State) Values() []complex128 { return s.values }

// Clone returns a deep copy sharing the (immutable) basis.
func (s *State) Clone() *State {
	return &State{basis: s.basis, values: slices.Clone(s.values)}
}

// Coefficients returns the basis coefficients √λ_n·u(x_n).
func (s *State) Coefficients() []complex128 {
	c := make([]complex128, len(s.values))
	for i, v := range s.values {
		c[i] = v * complex(s.basis.sqrtW[i], 0)
	}
	return c
}

// Norm returns Σ λ_n |u(x_n)|², the squared L² norm of u over the radial
// (or periodic) coordinate.
func (s *State) Norm() float64 {
	sum := 0.0
	for i, v := range s.values {
		a := cmplx.Abs(v)
		sum += s.basis.w[i] * a * a
	}
	return sum
}

// Normalize scales the state to unit Norm and returns the previous norm.
// A zero state is left unchanged.
func (s *State) Normalize() float64 {
	norm := s.Norm()
	if norm == 0 {
		return 0
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range s.values {
		s.values[i] *= scale
	}
	return norm
}

// Inner returns <s|t> = Σ λ_n conj(s_n) t_n. Both states must share a basis
// of the same length.
func (s *State) Inner(t *State) (complex128, error) {
	if err := s.basis.CheckLen(t.Len()); err != nil {
		return 0, err
	}
	var sum complex128
	for i, v := range s.values {
		sum += cmplx.Conj(v) * t.values[i] * complex(s.basis.w[i], 0)
	}
	return sum, nil
}

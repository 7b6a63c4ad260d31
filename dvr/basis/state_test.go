package basis

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-dvr/internal/testutil"
)

func TestStateNormOfSampledGaussian(t *testing.T) {
	// ∫ |r e^{-r²/2}|² dr over [0, ∞) = √π/4.
	b, err := New(GeometrySpherical, 40, 8)
	if err != nil {
		t.Fatal(err)
	}
	s := SampleState(b, func(r float64) complex128 {
		return complex(testutil.Gaussian(r, 1), 0)
	})
	if got, want := s.Norm(), math.Sqrt(math.Pi)/4; math.Abs(got-want) > 1e-12 {
		t.Fatalf("Norm = %v, want %v", got, want)
	}

	prev := s.Normalize()
	if math.Abs(prev-math.Sqrt(math.Pi)/4) > 1e-12 || math.Abs(s.Norm()-1) > 1e-14 {
		t.Fatalf("Normalize: prev %v, now %v", prev, s.Norm())
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	b, err := New(GeometryPeriodic, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewRealState(b, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	c := s.Clone()
	c.Values()[0] = 10
	if s.Values()[0] != 1 {
		t.Fatal("Clone shares samples")
	}
	if c.Basis() != b {
		t.Fatal("Clone changed the basis")
	}

	in, err := s.Inner(s)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(real(in)-s.Norm()) > 1e-14 || imag(in) != 0 {
		t.Fatalf("<s|s> = %v, Norm = %v", in, s.Norm())
	}

	coef := s.Coefficients()
	if math.Abs(real(coef[1])-2) > 1e-15 {
		t.Fatalf("coefficient = %v, want √a·2 with a = 1", coef[1])
	}
}

func TestStateLengthMismatch(t *testing.T) {
	b, err := New(GeometryCylindrical, 6, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewState(b, make([]complex128, 5)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("NewState: %v", err)
	}
	if _, err := NewRealState(b, make([]float64, 7)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("NewRealState: %v", err)
	}
	other, err := New(GeometryCylindrical, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := NewState(b, make([]complex128, 6))
	u, _ := NewState(other, make([]complex128, 5))
	if _, err := s.Inner(u); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("Inner: %v", err)
	}
}

package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqualPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3 + 1e-12}, 1e-10)
}

func TestRequireComplexNearlyEqualPass(t *testing.T) {
	RequireComplexNearlyEqual(t, []complex128{1 + 1i, 2}, []complex128{1 + 1i, 2 + 1e-13i}, 1e-10)
}

func TestRequireFinitePass(t *testing.T) {
	RequireFinite(t, []float64{0, 1, -1, 1e300})
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1.1, 2, 2.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d-0.5) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxRelDiff(t *testing.T) {
	d, err := MaxRelDiff([]float64{2, 4.2}, []float64{2, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d-0.05) > 1e-15 {
		t.Fatalf("MaxRelDiff = %v, want 0.05", d)
	}
	if _, err := MaxRelDiff([]float64{1}, []float64{0}); err == nil {
		t.Fatal("expected error for zero reference")
	}
}

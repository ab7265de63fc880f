package table

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDescribe(t *testing.T) {
	// Reference values match pandas describe() for the same input
	s := Describe([]float64{10, 20, 30})

	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if !almostEqual(s.Mean, 20) {
		t.Errorf("Mean = %v, want 20", s.Mean)
	}
	if !almostEqual(s.Std, 10) {
		t.Errorf("Std = %v, want 10", s.Std)
	}
	if !almostEqual(s.Min, 10) || !almostEqual(s.Max, 30) {
		t.Errorf("Min/Max = %v/%v, want 10/30", s.Min, s.Max)
	}
	if !almostEqual(s.Q25, 15) || !almostEqual(s.Q50, 20) || !almostEqual(s.Q75, 25) {
		t.Errorf("quartiles = %v/%v/%v, want 15/20/25", s.Q25, s.Q50, s.Q75)
	}
}

func TestDescribeInterpolation(t *testing.T) {
	// Even-length input forces interpolation between ranks
	s := Describe([]float64{1, 2, 3, 4})

	if !almostEqual(s.Q25, 1.75) {
		t.Errorf("Q25 = %v, want 1.75", s.Q25)
	}
	if !almostEqual(s.Q50, 2.5) {
		t.Errorf("Q50 = %v, want 2.5", s.Q50)
	}
	if !almostEqual(s.Q75, 3.25) {
		t.Errorf("Q75 = %v, want 3.25", s.Q75)
	}
}

func TestDescribeEdgeCases(t *testing.T) {
	if s := Describe(nil); s != (Stats{}) {
		t.Errorf("Describe(nil) = %+v, want zero value", s)
	}

	s := Describe([]float64{42})
	if s.Count != 1 || s.Mean != 42 || s.Std != 0 || s.Q50 != 42 {
		t.Errorf("single value stats = %+v", s)
	}
}

func TestDescribeUnsortedInput(t *testing.T) {
	a := Describe([]float64{30, 10, 20})
	b := Describe([]float64{10, 20, 30})
	if a != b {
		t.Errorf("order sensitivity: %+v vs %+v", a, b)
	}
}

package types3

import "testing"

func TestRealTriangleArea2(t *testing.T) {
	tri := RealTriangle{
		A: NewRealPoint(0, 0, 0),
		B: NewRealPoint(1, 0, 0),
		C: NewRealPoint(0, 1, 0),
	}
	if got := tri.Area2(); got != 1 {
		t.Fatalf("expected area*2 == 1, got %v", got)
	}
}

func TestRealTriangleReversed(t *testing.T) {
	tri := RealTriangle{
		A: NewRealPoint(0, 0, 0),
		B: NewRealPoint(1, 0, 0),
		C: NewRealPoint(0, 1, 0),
	}
	rev := tri.Reversed()
	if rev.A != tri.A || rev.B != tri.C || rev.C != tri.B {
		t.Fatalf("unexpected reversal: %+v", rev)
	}
}

func TestBarycentricRoundTrip(t *testing.T) {
	corner0 := NewRealPoint(0, 0, 0)
	corner1 := NewRealPoint(1, 0, 0)
	corner2 := NewRealPoint(0, 1, 0)

	cases := []Barycentric{
		{U: 1, V: 0},
		{U: 0, V: 1},
		{U: 0, V: 0},
		{U: 0.25, V: 0.25},
	}

	for _, bc := range cases {
		p := bc.Evaluate(corner0, corner1, corner2)
		got := FromPoint(p, corner0, corner1, corner2)
		if abs(got.U-bc.U) > 1e-9 || abs(got.V-bc.V) > 1e-9 {
			t.Fatalf("round trip mismatch: want %+v got %+v", bc, got)
		}
	}
}

func TestFromPointClampsNegativeComponents(t *testing.T) {
	corner0 := NewRealPoint(0, 0, 0)
	corner1 := NewRealPoint(1, 0, 0)
	corner2 := NewRealPoint(0, 1, 0)

	// Slightly outside the triangle, near corner1.
	p := NewRealPoint(1.001, -0.0005, 0)
	got := FromPoint(p, corner0, corner1, corner2)
	sum := got.U + got.V + got.W()
	if abs(sum-1) > 1e-9 {
		sumErr := sum - 1
		t.Fatalf("barycentric components do not sum to 1: sum=%v err=%v", sum, sumErr)
	}
	if got.U < 0 || got.V < 0 || got.W() < 0 {
		t.Fatalf("expected clamped non-negative components, got %+v (w=%v)", got, got.W())
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

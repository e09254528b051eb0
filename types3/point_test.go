package types3

import "testing"

func TestPointZeroValue(t *testing.T) {
	var p Point
	if p.X != 0 || p.Y != 0 || p.Z != 0 {
		t.Fatalf("expected zero value point, got %+v", p)
	}
}

func TestPointEqual(t *testing.T) {
	a := Point{X: 1, Y: 2, Z: 3}
	b := Point{X: 1, Y: 2, Z: 3}
	c := Point{X: 1, Y: 2, Z: 4}

	if !a.Equal(b) {
		t.Fatalf("expected %+v to equal %+v", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("expected %+v to differ from %+v", a, c)
	}
}

func TestPointToReal(t *testing.T) {
	p := Point{X: 2, Y: -3, Z: 5}
	r := p.ToReal()
	if r.X != 2 || r.Y != -3 || r.Z != 5 {
		t.Fatalf("unexpected real point: %+v", r)
	}
}

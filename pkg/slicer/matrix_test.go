package slicer

import "testing"

func absCoord(v Coord) Coord {
	if v < 0 {
		return -v
	}
	return v
}

func TestMatrixRotationRoundTrips(t *testing.T) {
	m := NewRotationMatrix(22.5)
	inv := m.Inverse()

	points := []Point2{{0, 0}, {1000, 0}, {0, 1000}, {12345, -6789}, {-500, -500}}
	for _, p := range points {
		rotated := m.Apply(p)
		back := inv.Apply(rotated)
		if absCoord(back.X-p.X) > 1 || absCoord(back.Y-p.Y) > 1 {
			t.Errorf("rotate+unrotate(%v) = %v, want within 1 unit", p, back)
		}
	}
}

func TestMatrixIdentityIsNoOp(t *testing.T) {
	m := Identity()
	p := Point2{42, -17}
	if got := m.Apply(p); got != p {
		t.Errorf("Identity().Apply(%v) = %v, want unchanged", p, got)
	}
}

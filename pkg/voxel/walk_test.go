package voxel

import (
	"reflect"
	"sort"
	"testing"

	"github.com/chazu/lignin/pkg/slicer"
)

func collectLine(u Utils, a, b slicer.Point3) []GridPoint3 {
	var got []GridPoint3
	u.WalkLine(a, b, func(g GridPoint3) bool {
		got = append(got, g)
		return true
	})
	return got
}

func sortedUnique(gs []GridPoint3) []GridPoint3 {
	seen := map[GridPoint3]struct{}{}
	var out []GridPoint3
	for _, g := range gs {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].Z < out[j].Z
	})
	return out
}

func TestWalkLineAxisAligned(t *testing.T) {
	u := Utils{CellSize: slicer.Point3{X: 10, Y: 10, Z: 10}}
	got := sortedUnique(collectLine(u, slicer.Point3{X: 0, Y: 5, Z: 5}, slicer.Point3{X: 35, Y: 5, Z: 5}))
	want := []GridPoint3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("axis-aligned walk = %v, want %v", got, want)
	}
}

func TestWalkLineDegenerateSegmentEmitsOneCell(t *testing.T) {
	u := Utils{CellSize: slicer.Point3{X: 10, Y: 10, Z: 10}}
	got := collectLine(u, slicer.Point3{X: 5, Y: 5, Z: 5}, slicer.Point3{X: 5, Y: 5, Z: 5})
	if len(got) != 1 || got[0] != (GridPoint3{0, 0, 0}) {
		t.Errorf("degenerate walk = %v, want exactly [{0 0 0}]", got)
	}
}

func TestWalkLineDiagonalCrossesEveryCellInPath(t *testing.T) {
	u := Utils{CellSize: slicer.Point3{X: 10, Y: 10, Z: 1}}
	got := sortedUnique(collectLine(u, slicer.Point3{X: 0, Y: 0, Z: 0}, slicer.Point3{X: 25, Y: 25, Z: 0}))
	// A 45-degree diagonal through a 10x10 grid from (0,0) to (25,25)
	// must visit every cell from (0,0) to (2,2) inclusive along the
	// diagonal, since it exactly clips every corner at 10, 20.
	for _, want := range []GridPoint3{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}} {
		found := false
		for _, g := range got {
			if g == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("diagonal walk %v missing expected cell %v", got, want)
		}
	}
	start, end := got[0], got[len(got)-1]
	if start != (GridPoint3{0, 0, 0}) || end != (GridPoint3{2, 2, 0}) {
		t.Errorf("diagonal walk endpoints = %v,%v want {0 0 0},{2 2 0}", start, end)
	}
}

func TestWalkLineStopsEarlyWhenVisitorReturnsFalse(t *testing.T) {
	u := Utils{CellSize: slicer.Point3{X: 10, Y: 10, Z: 10}}
	count := 0
	completed := u.WalkLine(slicer.Point3{X: 0, Y: 0, Z: 0}, slicer.Point3{X: 50, Y: 0, Z: 0}, func(g GridPoint3) bool {
		count++
		return count < 2
	})
	if completed {
		t.Errorf("WalkLine reported completion after visitor stopped it")
	}
	if count != 2 {
		t.Errorf("visited %d cells before stopping, want 2", count)
	}
}

func TestWalkPolygonsVisitsSquareOutline(t *testing.T) {
	u := Utils{CellSize: slicer.Point3{X: 10, Y: 10, Z: 1}}
	poly := slicer.Polygons{{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 30}, {X: 0, Y: 30}}}

	visited := map[GridPoint3]struct{}{}
	u.WalkPolygons(poly, 0, func(g GridPoint3) bool {
		visited[g] = struct{}{}
		return true
	})

	// The outline must touch all four corners of the grid lines it runs
	// along (0 and 3, since a 30-wide square's edges sit exactly on cell
	// boundary 3), but must never claim the center cell (1,1), which only
	// the area walker (not the edge walker) would visit.
	if _, ok := visited[GridPoint3{1, 1, 0}]; ok {
		t.Errorf("WalkPolygons visited interior cell {1 1 0}, want edges only")
	}
	for _, corner := range []GridPoint3{{0, 0, 0}, {3, 0, 0}, {0, 3, 0}, {3, 3, 0}} {
		if _, ok := visited[corner]; !ok {
			t.Errorf("WalkPolygons did not visit corner cell %v", corner)
		}
	}
}

func TestWalkAreasVisitsInteriorAndEdges(t *testing.T) {
	u := Utils{CellSize: slicer.Point3{X: 10, Y: 10, Z: 1}}
	poly := slicer.Polygons{{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 30}, {X: 0, Y: 30}}}

	visited := map[GridPoint3]struct{}{}
	u.WalkAreas(poly, 0, func(g GridPoint3) bool {
		visited[g] = struct{}{}
		return true
	})

	// Every cell of the interior 3x3 block (X,Y in 0..2) must be present;
	// WalkPolygons additionally contributes the boundary cells sitting
	// exactly on the square's far edges (X=3 or Y=3), so the interior
	// block is a subset, not the whole result.
	for x := int64(0); x < 3; x++ {
		for y := int64(0); y < 3; y++ {
			if _, ok := visited[GridPoint3{X: x, Y: y, Z: 0}]; !ok {
				t.Errorf("WalkAreas did not visit interior cell {%d %d 0}", x, y)
			}
		}
	}
}

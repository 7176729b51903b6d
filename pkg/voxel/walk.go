package voxel

import (
	"math"

	"github.com/chazu/lignin/pkg/slicer"
)

func signOf(d slicer.Coord) int64 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// axisState tracks one axis of the Amanatides-Woo 3D DDA: the grid step
// direction, the parametric distance to the next cell boundary (tMax), and
// the parametric distance spanned by one full cell (tDelta).
type axisState struct {
	step   int64
	tMax   float64
	tDelta float64
}

func newAxisState(start slicer.Coord, startCell, cellSize int64, d slicer.Coord) axisState {
	step := signOf(d)
	if step == 0 {
		return axisState{step: 0, tMax: math.Inf(1), tDelta: math.Inf(1)}
	}
	var boundary int64
	if step > 0 {
		boundary = (startCell + 1) * cellSize
	} else {
		boundary = startCell * cellSize
	}
	tMax := float64(boundary-int64(start)) / float64(d)
	tDelta := float64(cellSize) / math.Abs(float64(d))
	return axisState{step: step, tMax: tMax, tDelta: tDelta}
}

// WalkLine enumerates every grid cell the segment (a,b] crosses using a 3D
// DDA: the cell containing a is emitted first, then the walk steps across
// cell boundaries in order of increasing parametric distance (ties broken
// in x, y, z priority) until it reaches the cell containing b, which is
// also emitted. A degenerate segment (a==b) emits only the cell containing
// a. Returns false, stopping immediately, the moment visit returns false.
func (u Utils) WalkLine(a, b slicer.Point3, visit Visitor) bool {
	ga := u.ToGrid(a)
	gb := u.ToGrid(b)
	if !visit(ga) {
		return false
	}
	if ga == gb {
		return true
	}

	ax := newAxisState(a.X, ga.X, int64(u.CellSize.X), b.X-a.X)
	ay := newAxisState(a.Y, ga.Y, int64(u.CellSize.Y), b.Y-a.Y)
	az := newAxisState(a.Z, ga.Z, int64(u.CellSize.Z), b.Z-a.Z)

	cur := ga
	// Safety bound on iterations: the Manhattan distance between start and
	// end cells is the maximum number of boundary crossings possible.
	maxSteps := absInt64(ga.X-gb.X) + absInt64(ga.Y-gb.Y) + absInt64(ga.Z-gb.Z) + 1
	for step := int64(0); step < maxSteps && cur != gb; step++ {
		switch {
		case ax.tMax <= ay.tMax && ax.tMax <= az.tMax:
			cur.X += ax.step
			ax.tMax += ax.tDelta
		case ay.tMax <= az.tMax:
			cur.Y += ay.step
			ay.tMax += ay.tDelta
		default:
			cur.Z += az.step
			az.tMax += az.tDelta
		}
		if !visit(cur) {
			return false
		}
	}
	return true
}

// WalkPolygons calls WalkLine for every edge of every polygon in polys, at
// world height z (for the shell voxelizer, z is an integer layer index
// rather than a real world Z, per spec §4.3).
func (u Utils) WalkPolygons(polys slicer.Polygons, z slicer.Coord, visit Visitor) bool {
	for _, poly := range polys {
		ok := poly.ForEachEdge(func(a, b slicer.Point2) bool {
			return u.WalkLine(
				slicer.Point3{X: a.X, Y: a.Y, Z: z},
				slicer.Point3{X: b.X, Y: b.Y, Z: z},
				visit,
			)
		})
		if !ok {
			return false
		}
	}
	return true
}

// WalkDilatedPolygons is WalkPolygons followed by kernel expansion of every
// visited cell.
func (u Utils) WalkDilatedPolygons(polys slicer.Polygons, z slicer.Coord, kernel DilationKernel, visit Visitor) bool {
	return u.WalkPolygons(polys, z, func(g GridPoint3) bool {
		return u.Dilate(g, kernel, visit)
	})
}

// WalkAreas emits every cell whose lower-corner square lies inside polys,
// plus every cell any edge of polys crosses (WalkPolygons), at most once
// each if the visitor itself deduplicates (the driver's visitors always do,
// via set insertion). Interior cells are found by shifting polys by minus
// half the cell size in X and Y, so that testing a cell's (unshifted)
// lower corner against the shifted polygons is equivalent to testing the
// cell's true center against the original polygons, then scanning row by
// row within the polygons' bounding box.
func (u Utils) WalkAreas(polys slicer.Polygons, z slicer.Coord, visit Visitor) bool {
	if !u.WalkPolygons(polys, z, visit) {
		return false
	}
	shifted := polys.Translate(slicer.Point2{X: -u.CellSize.X / 2, Y: -u.CellSize.Y / 2})
	return u.walkAreaInteriors(shifted, z, visit)
}

// WalkDilatedAreas is WalkAreas followed by kernel expansion of every
// visited cell.
func (u Utils) WalkDilatedAreas(polys slicer.Polygons, z slicer.Coord, kernel DilationKernel, visit Visitor) bool {
	return u.WalkAreas(polys, z, func(g GridPoint3) bool {
		return u.Dilate(g, kernel, visit)
	})
}

// walkAreaInteriors scans polys (already shifted so cell lower corners are
// effectively cell centers) row by row and emits, for every row that
// crosses the polygon interior, every cell whose lower corner X falls
// inside an entry/exit span, using the even-odd rule across edge
// crossings.
func (u Utils) walkAreaInteriors(polys slicer.Polygons, z slicer.Coord, visit Visitor) bool {
	box, ok := polys.BoundingBox()
	if !ok {
		return true
	}

	cellY := int64(u.CellSize.Y)
	cellX := int64(u.CellSize.X)
	gridZ := floorDiv(int64(z), int64(u.CellSize.Z))
	jMin := floorDiv(int64(box.Min.Y), cellY)
	jMax := floorDiv(int64(box.Max.Y), cellY)

	for j := jMin; j <= jMax; j++ {
		rowY := j * cellY
		xs := rowCrossings(polys, rowY)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			kMin := floorDiv(x0, cellX)
			if kMin*cellX < x0 {
				kMin++
			}
			for k := kMin; k*cellX < x1; k++ {
				if !visit(GridPoint3{X: k, Y: j, Z: gridZ}) {
					return false
				}
			}
		}
	}
	return true
}

// rowCrossings returns the sorted X coordinates at which the polygon set's
// edges cross the horizontal line Y=rowY, using the standard scanline
// polygon-fill algorithm (edges are tested half-open on Y so a vertex
// exactly on the scanline is attributed to exactly one of its two edges).
func rowCrossings(polys slicer.Polygons, rowY int64) []int64 {
	var xs []int64
	for _, poly := range polys {
		poly.ForEachEdge(func(a, b slicer.Point2) bool {
			y0, y1 := int64(a.Y), int64(b.Y)
			if y0 == y1 {
				return true
			}
			lo, hi := y0, y1
			if lo > hi {
				lo, hi = hi, lo
			}
			if rowY < lo || rowY >= hi {
				return true
			}
			t := float64(rowY-y0) / float64(y1-y0)
			x := float64(a.X) + t*float64(b.X-a.X)
			xs = append(xs, int64(math.Round(x)))
			return true
		})
	}
	sortInt64s(xs)
	return xs
}

func sortInt64s(xs []int64) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

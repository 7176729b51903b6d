package slicer

import (
	clipper "github.com/ctessum/go.clipper"
)

// Polygon is an ordered ring of points with an implicit closing edge between
// the last and first point.
type Polygon []Point2

// ForEachEdge calls visit for every edge of the polygon, including the
// closing edge from the last point back to the first. visit returning false
// stops iteration early and ForEachEdge returns false.
func (p Polygon) ForEachEdge(visit func(a, b Point2) bool) bool {
	n := len(p)
	if n < 2 {
		return true
	}
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		if !visit(a, b) {
			return false
		}
	}
	return true
}

// Translate returns a copy of the polygon shifted by v.
func (p Polygon) Translate(v Point2) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Add(v)
	}
	return out
}

// ApplyMatrix returns a copy of the polygon with m applied to every point.
func (p Polygon) ApplyMatrix(m Matrix) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = m.Apply(pt)
	}
	return out
}

// Polygons is a set of polygons, interpreted under the non-zero winding
// rule (consistently, for every boolean operation below, per spec §3).
type Polygons []Polygon

// Add appends poly without running it through any boolean operation.
func (p *Polygons) Add(poly Polygon) {
	*p = append(*p, poly)
}

// Translate returns a copy of every polygon shifted by v.
func (p Polygons) Translate(v Point2) Polygons {
	out := make(Polygons, len(p))
	for i, poly := range p {
		out[i] = poly.Translate(v)
	}
	return out
}

// ApplyMatrix returns a copy of every polygon with m applied.
func (p Polygons) ApplyMatrix(m Matrix) Polygons {
	out := make(Polygons, len(p))
	for i, poly := range p {
		out[i] = poly.ApplyMatrix(m)
	}
	return out
}

// BoundingBox returns the axis-aligned bounding box of all points in p.
// ok is false when p is empty.
func (p Polygons) BoundingBox() (box AABB, ok bool) {
	first := true
	for _, poly := range p {
		for _, pt := range poly {
			if first {
				box = AABB{Min: pt, Max: pt}
				first = false
				continue
			}
			if pt.X < box.Min.X {
				box.Min.X = pt.X
			}
			if pt.Y < box.Min.Y {
				box.Min.Y = pt.Y
			}
			if pt.X > box.Max.X {
				box.Max.X = pt.X
			}
			if pt.Y > box.Max.Y {
				box.Max.Y = pt.Y
			}
		}
	}
	return box, !first
}

func toPath(poly Polygon) clipper.Path {
	path := make(clipper.Path, len(poly))
	for i, p := range poly {
		path[i] = clipper.NewIntPoint(clipper.CInt(p.X), clipper.CInt(p.Y))
	}
	return path
}

func toPaths(polys Polygons) clipper.Paths {
	paths := make(clipper.Paths, 0, len(polys))
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		paths = append(paths, toPath(poly))
	}
	return paths
}

func fromPaths(paths clipper.Paths) Polygons {
	out := make(Polygons, len(paths))
	for i, path := range paths {
		poly := make(Polygon, len(path))
		for j, pt := range path {
			poly[j] = Point2{X: Coord(pt.X), Y: Coord(pt.Y)}
		}
		out[i] = poly
	}
	return out
}

// boolOp runs a and b through the Vatti clipper with the given clip type.
// b may be nil, in which case a is self-unioned/cleaned against an empty
// clip polygon set.
func boolOp(a, b Polygons, op clipper.ClipType) Polygons {
	subj := toPaths(a)
	if len(subj) == 0 && b == nil {
		return nil
	}
	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(subj, clipper.PtSubject, true)
	if b != nil {
		if clip := toPaths(b); len(clip) > 0 {
			c.AddPaths(clip, clipper.PtClip, true)
		}
	}
	solution, ok := c.Execute1(op, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil
	}
	return fromPaths(solution)
}

// Union merges every polygon in p into a non-overlapping set.
func (p Polygons) Union() Polygons {
	return boolOp(p, nil, clipper.CtUnion)
}

// UnionWith returns the union of p and o.
func (p Polygons) UnionWith(o Polygons) Polygons {
	return boolOp(p, o, clipper.CtUnion)
}

// Intersection returns the overlap of p and o.
func (p Polygons) Intersection(o Polygons) Polygons {
	return boolOp(p, o, clipper.CtIntersection)
}

// Difference returns p with o subtracted from it.
func (p Polygons) Difference(o Polygons) Polygons {
	return boolOp(p, o, clipper.CtDifference)
}

// Xor returns the symmetric difference of p and o.
func (p Polygons) Xor(o Polygons) Polygons {
	return boolOp(p, o, clipper.CtXor)
}

// Offset returns p grown (delta > 0) or shrunk (delta < 0) by delta, the
// Minkowski sum/difference with a disk of that radius. A close (offset by
// +d then -d) fills gaps narrower than 2d; an open (offset by -d then +d)
// drops specks and protrusions narrower than 2d.
func (p Polygons) Offset(delta Coord) Polygons {
	paths := toPaths(p)
	if len(paths) == 0 {
		return nil
	}
	co := clipper.NewClipperOffset()
	co.AddPaths(paths, clipper.JtSquare, clipper.EtClosedPolygon)
	solution := co.Execute(float64(delta))
	return fromPaths(solution)
}

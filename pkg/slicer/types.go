// Package slicer holds the fixed-point 2D/3D geometry types the
// interlocking generator operates on: sliced per-layer polygon stacks and
// the polygon algebra (union/difference/offset/rotate) used to rewrite them.
// Coordinates are integer micrometers; the only floating point that leaks
// into this package is the rotation matrix used by ApplyMatrix.
package slicer

// Coord is a fixed-point world coordinate, in micrometers.
type Coord = int64

// Point2 is a point in the XY plane of one layer.
type Point2 struct {
	X, Y Coord
}

// Add returns the sum of two points.
func (p Point2) Add(o Point2) Point2 {
	return Point2{p.X + o.X, p.Y + o.Y}
}

// Sub returns the difference of two points.
func (p Point2) Sub(o Point2) Point2 {
	return Point2{p.X - o.X, p.Y - o.Y}
}

// Point3 is a point in world space, z being either a real layer height or,
// within the voxel grid, an integer layer index (see pkg/voxel).
type Point3 struct {
	X, Y, Z Coord
}

// AABB is an axis-aligned bounding box in the XY plane.
type AABB struct {
	Min, Max Point2
}

// Offset inflates the box by d on every side.
func (b AABB) Offset(d Coord) AABB {
	return AABB{
		Min: Point2{b.Min.X - d, b.Min.Y - d},
		Max: Point2{b.Max.X + d, b.Max.Y + d},
	}
}

// Hit reports whether two boxes overlap, including touching edges.
func (b AABB) Hit(o AABB) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// MeshSettings is the subset of per-mesh slicer settings the generator
// needs: the wall line width (used to size beams) and the extruder that
// prints the mesh's outer wall (used to tell two meshes of different
// materials apart).
type MeshSettings interface {
	WallLineWidth0() Coord
	WallZeroExtruderNr() int
}

// SlicerLayer is one Z layer of a sliced mesh: its world Z height and the
// outline polygons at that height.
type SlicerLayer struct {
	Z        Coord
	Polygons Polygons
}

// Slicer is a sliced mesh: an ordered, bottom-up stack of layers plus the
// settings the interlocking generator reads from it. It is the collaborator
// contract described in spec §6 for "sliced mesh" — the upstream slicer
// itself is out of scope here.
type Slicer struct {
	Layers   []SlicerLayer
	Settings MeshSettings
	Bounds   AABB
}

// LayerCount returns the number of layers.
func (s *Slicer) LayerCount() int {
	return len(s.Layers)
}

// Package voxel provides the uniform 3D cell grid the interlocking
// generator rasterizes rotated polygon stacks onto: world<->grid coordinate
// mapping, a 3D line walker (DDA), a polygon-edge walker, a scanline area
// walker, and dilation-kernel expansion. It is a direct port of the voxel
// grid utilities CuraEngine's interlocking generator builds on top of,
// generalized to work over the slicer package's polygon algebra.
package voxel

import "github.com/chazu/lignin/pkg/slicer"

// GridPoint3 is an integer triple in cell-index space. Unlike
// slicer.Point3, its Z is always a cell index, never a world coordinate.
type GridPoint3 struct {
	X, Y, Z int64
}

// Add returns the componentwise sum of two grid points.
func (g GridPoint3) Add(o GridPoint3) GridPoint3 {
	return GridPoint3{g.X + o.X, g.Y + o.Y, g.Z + o.Z}
}

// Visitor is called once per visited cell. Returning false stops the walk.
type Visitor func(GridPoint3) bool

// Utils maps between world coordinates and the cell grid and walks cells
// crossed by lines, polygons, and polygon interiors.
type Utils struct {
	CellSize slicer.Point3
}

// floorDiv is integer division that rounds toward negative infinity,
// unlike Go's built-in truncating division. Negative world coordinates
// must map to the grid cell below zero, not the one truncation would
// pick, per spec invariant (i).
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ToGrid floor-divides each axis by the corresponding cell size.
func (u Utils) ToGrid(p slicer.Point3) GridPoint3 {
	return GridPoint3{
		X: floorDiv(int64(p.X), int64(u.CellSize.X)),
		Y: floorDiv(int64(p.Y), int64(u.CellSize.Y)),
		Z: floorDiv(int64(p.Z), int64(u.CellSize.Z)),
	}
}

// ToLowerCorner returns the world-space lower-left-bottom corner of cell g.
func (u Utils) ToLowerCorner(g GridPoint3) slicer.Point3 {
	return slicer.Point3{
		X: slicer.Coord(g.X) * u.CellSize.X,
		Y: slicer.Coord(g.Y) * u.CellSize.Y,
		Z: slicer.Coord(g.Z) * u.CellSize.Z,
	}
}

// ToCellPolygon returns the square occupied by cell g in the XY plane,
// ignoring g.Z.
func (u Utils) ToCellPolygon(g GridPoint3) slicer.Polygon {
	c := u.ToLowerCorner(g)
	return slicer.Polygon{
		{X: c.X, Y: c.Y},
		{X: c.X + u.CellSize.X, Y: c.Y},
		{X: c.X + u.CellSize.X, Y: c.Y + u.CellSize.Y},
		{X: c.X, Y: c.Y + u.CellSize.Y},
	}
}

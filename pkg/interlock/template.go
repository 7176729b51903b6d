package interlock

import "github.com/chazu/lignin/pkg/slicer"

// microstructureTemplate holds, for one beam-band parity, the polygon each
// mesh should stamp into a single cell. The two polygons always partition
// the cell footprint [0,cellSize.X]x[0,cellSize.Y] exactly, proportioned by
// each mesh's share of the beam width sum.
type microstructureTemplate [2][2]slicer.Polygon

// newMicrostructureTemplate builds the even/odd, mesh-0/mesh-1 template
// table described in spec §4.5: a cell-footprint rectangle split at
// middle = cellSize.X * w0/(w0+w1), and the same split transposed for the
// odd-band orientation so beams rotate 90 degrees every beam_layer_count
// layers.
func newMicrostructureTemplate(cellSize slicer.Point3, beamWidths [2]slicer.Coord) microstructureTemplate {
	w0, w1 := beamWidths[0], beamWidths[1]
	middle := cellSize.X * w0 / (w0 + w1)

	var t microstructureTemplate
	t[0][0] = slicer.Polygon{
		{X: 0, Y: 0}, {X: middle, Y: 0}, {X: middle, Y: cellSize.Y}, {X: 0, Y: cellSize.Y},
	}
	t[0][1] = slicer.Polygon{
		{X: middle, Y: 0}, {X: cellSize.X, Y: 0}, {X: cellSize.X, Y: cellSize.Y}, {X: middle, Y: cellSize.Y},
	}
	for mesh := 0; mesh < 2; mesh++ {
		transposed := make(slicer.Polygon, len(t[0][mesh]))
		for i, p := range t[0][mesh] {
			transposed[i] = slicer.Point2{X: p.Y, Y: p.X}
		}
		t[1][mesh] = transposed
	}
	return t
}

// at returns the template for the given band parity (0 or 1) and mesh
// index (0 or 1).
func (t microstructureTemplate) at(parity, mesh int64) slicer.Polygon {
	return t[parity][mesh]
}

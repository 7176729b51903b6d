package interlock

import (
	"github.com/chazu/lignin/pkg/slicer"
	"github.com/chazu/lignin/pkg/voxel"
)

// shellVoxels computes the cells overlapping the shell of a mesh: its wall
// outlines at every layer, plus the top/bottom skin transition between
// consecutive layers, dilated by kernel (spec §4.3). The mesh's layers are
// rotated into the interlocking pattern's frame first; the shell voxelizer
// never mutates the mesh itself.
func (d *Driver) shellVoxels(mesh *slicer.Slicer, kernel voxel.DilationKernel) cellSet {
	rotated := make([]slicer.Polygons, len(mesh.Layers))
	for i, layer := range mesh.Layers {
		rotated[i] = layer.Polygons.ApplyMatrix(d.rotation)
	}

	cells := make(cellSet)
	d.addBoundaryCells(rotated, kernel, cells)
	return cells
}

// addBoundaryCells walks every layer's wall outline and its skin transition
// from the layer below into cells, dilating both by kernel. It underlies
// both shell voxelization (per mesh) and the air-filtering boundary of the
// combined layer region.
func (d *Driver) addBoundaryCells(layers []slicer.Polygons, kernel voxel.DilationKernel, cells cellSet) {
	half := d.cellSize.X / 2

	for layerNr, polys := range layers {
		z := slicer.Coord(layerNr)
		d.vu.WalkDilatedPolygons(polys, z, kernel, cells.insert)

		skin := polys
		if layerNr > 0 {
			skin = polys.Xor(layers[layerNr-1])
		}
		// Morphological open: drop specks and slivers narrower than one
		// cell, which walkPolygons would otherwise have already covered
		// via the outline walk above, but which would inflate the shell
		// with meaningless sub-cell noise if left in the skin.
		skin = skin.Offset(-half).Offset(half)
		d.vu.WalkDilatedAreas(skin, z, kernel, cells.insert)
	}
}

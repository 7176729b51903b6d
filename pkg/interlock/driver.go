// Package interlock generates dovetail-like beam patterns between two
// sliced meshes printed in different materials so that the finished parts
// mechanically lock together along their shared boundary. It is a
// generalization of CuraEngine's InterlockingGenerator: a voxel-grid
// construction over rotated polygon stacks, a kernel-dilated shell
// computation, a boolean voxel intersection optionally filtered by an
// "air" erosion, and a per-layer polygon rewrite that preserves each
// mesh's volume envelope while transferring material along the contact
// region.
package interlock

import (
	"github.com/chazu/lignin/pkg/slicer"
	"github.com/chazu/lignin/pkg/voxel"
)

// Params bundles the per-pair parameters the driver needs. All of them are
// effectively fixed constants at the core level today (spec §4.6); see
// DefaultParams and DESIGN.md for the open question about promoting them
// to user settings.
type Params struct {
	BeamWidths      [2]slicer.Coord
	Rotation        slicer.Matrix
	CellSize        slicer.Point3
	BeamLayerCount  int64
	InterfaceKernel voxel.DilationKernel
	AirKernel       voxel.DilationKernel
	AirFiltering    bool
}

// DefaultParams derives a pair's interlocking parameters from the two
// meshes' wall line widths, matching the reference implementation's
// hard-coded choices: beam width = 2x wall_line_width_0 of each mesh,
// rotation = 22.5 degrees, beam_layer_count = 2, interface_depth = 2,
// boundary_avoidance = 0 (so air filtering is off by default).
func DefaultParams(a, b *slicer.Slicer) Params {
	const (
		beamLayerCount    = 2
		interfaceDepth    = 2
		boundaryAvoidance = 0
		rotationDegrees   = 22.5
	)

	w0 := 2 * a.Settings.WallLineWidth0()
	w1 := 2 * b.Settings.WallLineWidth0()
	cellWidth := w0 + w1

	return Params{
		BeamWidths:     [2]slicer.Coord{w0, w1},
		Rotation:       slicer.NewRotationMatrix(rotationDegrees),
		CellSize:       slicer.Point3{X: cellWidth, Y: cellWidth, Z: 2 * beamLayerCount},
		BeamLayerCount: beamLayerCount,
		InterfaceKernel: voxel.NewDilationKernel(
			voxel.GridPoint3{X: interfaceDepth, Y: interfaceDepth, Z: interfaceDepth}, voxel.Prism),
		AirKernel: voxel.NewDilationKernel(
			voxel.GridPoint3{X: boundaryAvoidance, Y: boundaryAvoidance, Z: boundaryAvoidance}, voxel.Diamond),
		AirFiltering: boundaryAvoidance > 0,
	}
}

// Driver generates the interlocking structure between exactly two meshes.
type Driver struct {
	meshA, meshB *slicer.Slicer
	rotation     slicer.Matrix
	cellSize     slicer.Point3
	beamWidths   [2]slicer.Coord
	beamLayerCnt int64
	airFiltering bool

	interfaceKernel voxel.DilationKernel
	airKernel       voxel.DilationKernel

	vu voxel.Utils
}

// NewDriver builds a driver for the given mesh pair and parameters.
func NewDriver(a, b *slicer.Slicer, p Params) *Driver {
	return &Driver{
		meshA:           a,
		meshB:           b,
		rotation:        p.Rotation,
		cellSize:        p.CellSize,
		beamWidths:      p.BeamWidths,
		beamLayerCnt:    p.BeamLayerCount,
		airFiltering:    p.AirFiltering,
		interfaceKernel: p.InterfaceKernel,
		airKernel:       p.AirKernel,
		vu:              voxel.Utils{CellSize: p.CellSize},
	}
}

// Run computes the interlocking structure for the pair and rewrites both
// meshes' layers in place.
func (d *Driver) Run() {
	shellA := d.shellVoxels(d.meshA, d.interfaceKernel)
	shellB := d.shellVoxels(d.meshB, d.interfaceKernel)
	contact := intersect(shellA, shellB)

	regions := d.layerRegions()

	if d.airFiltering {
		air := make(cellSet)
		d.addBoundaryCells(regions, d.airKernel, air)
		subtract(contact, air)
	}

	tmpl := newMicrostructureTemplate(d.cellSize, d.beamWidths)
	structPerMesh := d.stampMicrostructure(contact, tmpl)
	d.finalizeBands(structPerMesh, regions)
	d.rewriteLayers(structPerMesh)
}

// stampMicrostructure translates the per-parity, per-mesh template into
// every contact cell, at every beam-height band the cell spans, and
// accumulates the raw (un-unioned) polygons per mesh per band.
func (d *Driver) stampMicrostructure(contact cellSet, tmpl microstructureTemplate) [2][]slicer.Polygons {
	maxLayers := max(len(d.meshA.Layers), len(d.meshB.Layers))
	numBands := (maxLayers + 1) / int(d.beamLayerCnt)

	var structPerMesh [2][]slicer.Polygons
	structPerMesh[0] = make([]slicer.Polygons, numBands)
	structPerMesh[1] = make([]slicer.Polygons, numBands)

	for g := range contact {
		corner := d.vu.ToLowerCorner(g)
		for mesh := 0; mesh < 2; mesh++ {
			for l := corner.Z; l < corner.Z+d.cellSize.Z && int(l) < maxLayers; l += slicer.Coord(d.beamLayerCnt) {
				if l < 0 {
					// Dilation can reach cells below layer 0; there is no
					// layer or band there to stamp into.
					continue
				}
				band := int64(l) / d.beamLayerCnt
				parity := band % 2
				stamped := tmpl.at(parity, int64(mesh)).Translate(slicer.Point2{X: corner.X, Y: corner.Y})
				structPerMesh[mesh][band] = append(structPerMesh[mesh][band], stamped)
			}
		}
	}
	return structPerMesh
}

// finalizeBands unions each band's raw stamped polygons, clips them to the
// combined layer region when air filtering is off (so structure never
// protrudes past the models' envelope), and rotates them back out of the
// interlocking pattern's frame.
func (d *Driver) finalizeBands(structPerMesh [2][]slicer.Polygons, regions []slicer.Polygons) {
	unrotate := d.rotation.Inverse()

	for mesh := 0; mesh < 2; mesh++ {
		for band := range structPerMesh[mesh] {
			p := structPerMesh[mesh][band].Union()
			if !d.airFiltering {
				regionIdx := band * int(d.beamLayerCnt)
				p = regions[regionIdx].Intersection(p)
			}
			structPerMesh[mesh][band] = p.ApplyMatrix(unrotate)
		}
	}
}

// rewriteLayers is the only mutating step: every layer's polygons are
// extended outward by the mesh's own beams and cut inward by the other
// mesh's beams for the same band.
func (d *Driver) rewriteLayers(structPerMesh [2][]slicer.Polygons) {
	meshes := [2]*slicer.Slicer{d.meshA, d.meshB}
	for mesh := 0; mesh < 2; mesh++ {
		m := meshes[mesh]
		for l := range m.Layers {
			band := int64(l) / d.beamLayerCnt
			own := structPerMesh[mesh][band]
			other := structPerMesh[1-mesh][band]
			m.Layers[l].Polygons = m.Layers[l].Polygons.UnionWith(own).Difference(other)
		}
	}
}

package interlock

import "github.com/chazu/lignin/pkg/slicer"

// ignoredGap is the distance, in micrometers, within which two meshes are
// considered adjacent enough to interlock, and the morphological close
// radius used to merge their outlines into one combined footprint. It
// mirrors CuraEngine's hard-coded constant of the same name (spec §4.4,
// §4.6, §9); promoting it to a user setting is left as an open question.
const ignoredGap slicer.Coord = 100

// layerRegions computes, for every layer index up to one past the taller
// mesh's layer count (a "ghost" layer so the air-filtering and clipping
// steps can always reference band*beamLayerCount without bounds checks),
// the combined footprint of both meshes at that layer: their outlines
// unioned, morphologically closed to bridge small gaps between the two
// materials, then rotated into the interlocking pattern's frame.
func (d *Driver) layerRegions() []slicer.Polygons {
	maxLayers := max(len(d.meshA.Layers), len(d.meshB.Layers)) + 1
	regions := make([]slicer.Polygons, maxLayers)

	for l := 0; l < maxLayers; l++ {
		var region slicer.Polygons
		if l < len(d.meshA.Layers) {
			region = append(region, d.meshA.Layers[l].Polygons...)
		}
		if l < len(d.meshB.Layers) {
			region = append(region, d.meshB.Layers[l].Polygons...)
		}
		region = region.Offset(ignoredGap).Offset(-ignoredGap)
		regions[l] = region.ApplyMatrix(d.rotation)
	}
	return regions
}

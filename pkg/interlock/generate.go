package interlock

import "github.com/chazu/lignin/pkg/slicer"

// GenerateInterlockingStructure is the package's entry point: it examines
// every unordered pair of sliced volumes, skips pairs that cannot or need
// not interlock, and runs a driver over the rest. Each qualifying mesh's
// layers are rewritten in place.
//
// A pair is skipped when both meshes print from the same extruder (there
// is no material boundary to reinforce) or when their bounding boxes,
// expanded by ignoredGap, do not overlap (spec §4.6).
func GenerateInterlockingStructure(volumes []*slicer.Slicer) {
	for i := 0; i < len(volumes); i++ {
		for j := i + 1; j < len(volumes); j++ {
			a, b := volumes[i], volumes[j]
			if !shouldInterlock(a, b) {
				continue
			}
			d := NewDriver(a, b, DefaultParams(a, b))
			d.Run()
		}
	}
}

func shouldInterlock(a, b *slicer.Slicer) bool {
	if a.Settings.WallZeroExtruderNr() == b.Settings.WallZeroExtruderNr() {
		return false
	}
	return a.Bounds.Offset(ignoredGap).Hit(b.Bounds)
}

package voxel

// KernelType selects the shape of a DilationKernel's footprint.
type KernelType int

const (
	// Cube includes every cell in the kernel's bounding box.
	Cube KernelType = iota
	// Diamond includes cells within an L1 (Manhattan) ball.
	Diamond
	// Prism is a Diamond in XY, extruded straight through every Z.
	Prism
)

// DilationKernel is a precomputed set of relative cell offsets, enumerated
// once at construction and reused across every layer and mesh that dilates
// with it.
type DilationKernel struct {
	Size    GridPoint3
	Type    KernelType
	Offsets []GridPoint3
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// NewDilationKernel enumerates the offsets of a kernel of the given size and
// shape. When a dimension of size is even, the membership center for that
// axis (size/2, floor division) sits one cell toward the lower end of the
// interval rather than exactly in the middle, so the reference cell stays
// at the lower end of an even-sized kernel instead of splitting a cell.
func NewDilationKernel(size GridPoint3, kind KernelType) DilationKernel {
	k := DilationKernel{Size: size, Type: kind}
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return k
	}

	cx := size.X / 2
	cy := size.Y / 2
	cz := size.Z / 2
	r := maxInt64(maxInt64(size.X, size.Y), size.Z) / 2
	rXY := maxInt64(size.X, size.Y) / 2

	for i := int64(0); i < size.X; i++ {
		for j := int64(0); j < size.Y; j++ {
			for kk := int64(0); kk < size.Z; kk++ {
				var ok bool
				switch kind {
				case Cube:
					ok = true
				case Diamond:
					ok = absInt64(i-cx)+absInt64(j-cy)+absInt64(kk-cz) <= r
				case Prism:
					ok = absInt64(i-cx)+absInt64(j-cy) <= rXY
				}
				if ok {
					k.Offsets = append(k.Offsets, GridPoint3{X: i - cx, Y: j - cy, Z: kk - cz})
				}
			}
		}
	}
	return k
}

// Dilate calls visit once for g plus every offset in kernel.Offsets.
func (u Utils) Dilate(g GridPoint3, kernel DilationKernel, visit Visitor) bool {
	for _, off := range kernel.Offsets {
		if !visit(g.Add(off)) {
			return false
		}
	}
	return true
}

package voxel

import "testing"

// diamond2DCount returns the number of (i,j) cells within an L1 ball of
// radius r centered at (r,r) in a (2r+1)x(2r+1) box: the textbook
// centered-square / L1-ball formula 2r(r+1)+1.
func diamond2DCount(r int64) int64 {
	return 2*r*(r+1) + 1
}

func TestDiamondKernelOffsetCountMatchesL1BallFormula(t *testing.T) {
	for r := int64(0); r <= 5; r++ {
		size := 2*r + 1
		k := NewDilationKernel(GridPoint3{X: size, Y: size, Z: size}, Diamond)

		// Closed form of the 3D L1 ball of radius r: (2r+1)(2r^2+2r+3)/3,
		// i.e. 1, 7, 25, 63, 129, 231 for r = 0..5.
		want := (2*r + 1) * (2*r*r + 2*r + 3) / 3
		if int64(len(k.Offsets)) != want {
			t.Errorf("r=%d: len(Offsets) = %d, want %d", r, len(k.Offsets), want)
		}
	}
}

func TestPrismKernelOffsetCountIsDiamond2DTimesDepth(t *testing.T) {
	for r := int64(0); r <= 5; r++ {
		size := 2*r + 1
		for _, sz := range []int64{1, 2, 3, 7} {
			k := NewDilationKernel(GridPoint3{X: size, Y: size, Z: sz}, Prism)
			want := diamond2DCount(r) * sz
			if int64(len(k.Offsets)) != want {
				t.Errorf("r=%d sz=%d: len(Offsets) = %d, want %d", r, sz, len(k.Offsets), want)
			}
		}
	}
}

func TestCubeKernelOffsetCountIsVolume(t *testing.T) {
	k := NewDilationKernel(GridPoint3{X: 3, Y: 4, Z: 2}, Cube)
	if want := int64(3 * 4 * 2); int64(len(k.Offsets)) != want {
		t.Errorf("len(Offsets) = %d, want %d", len(k.Offsets), want)
	}
}

func TestZeroSizedKernelHasNoOffsets(t *testing.T) {
	k := NewDilationKernel(GridPoint3{X: 0, Y: 0, Z: 0}, Diamond)
	if len(k.Offsets) != 0 {
		t.Errorf("len(Offsets) = %d, want 0", len(k.Offsets))
	}
}

func TestEvenSizedKernelOffsetsSkewTowardLowerEnd(t *testing.T) {
	// size=4 -> center index c=2 (floor(4/2)), so offsets run -2..1: one
	// cell further in the negative direction than the positive, per the
	// "reference cell at the lower end" rule for even dimensions.
	k := NewDilationKernel(GridPoint3{X: 4, Y: 1, Z: 1}, Cube)
	min, max := k.Offsets[0].X, k.Offsets[0].X
	for _, o := range k.Offsets {
		if o.X < min {
			min = o.X
		}
		if o.X > max {
			max = o.X
		}
	}
	if min != -2 || max != 1 {
		t.Errorf("offset X range = [%d,%d], want [-2,1]", min, max)
	}
}

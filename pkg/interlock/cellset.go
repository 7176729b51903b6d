package interlock

import "github.com/chazu/lignin/pkg/voxel"

// cellSet is an unordered set of grid cells. Membership is the only
// observable property (spec §3 invariant iii); iteration order is
// intentionally not relied on anywhere in this package.
type cellSet map[voxel.GridPoint3]struct{}

func (s cellSet) insert(g voxel.GridPoint3) bool {
	s[g] = struct{}{}
	return true
}

// intersect returns the cells present in both a and b.
func intersect(a, b cellSet) cellSet {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	out := make(cellSet, len(small))
	for g := range small {
		if _, ok := big[g]; ok {
			out[g] = struct{}{}
		}
	}
	return out
}

// subtract removes every cell in b from a, in place.
func subtract(a, b cellSet) {
	for g := range b {
		delete(a, g)
	}
}

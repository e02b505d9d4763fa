package zfpcore

import "sort"

// perm4, perm16, perm64 are the fixed, size-dependent (never data-dependent,
// I5) zig-zag permutations: perm[i] is the source index contributing target
// position i, ordered by ascending L1 distance from the DC corner so that
// likely-zero high-frequency coefficients land last (spec.md §4.4).
var (
	perm4  = buildPerm(4, 1)
	perm16 = buildPerm(16, 2)
	perm64 = buildPerm(64, 3)
)

// buildPerm computes the frequency-ordered permutation for an n = 4^d block
// by sorting linear indices on the L1 norm of their base-4 digit vector,
// breaking ties on the natural index so the result is fully deterministic.
func buildPerm(n, d int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// The forward 1-D lift (lift.go) stores its lowpass/DC-like output in
	// the last slot of each 4-group and its detail coefficients in the
	// first three (verified by hand: lifting a constant 4-vector concentrates
	// the whole value in the last slot). So the per-axis "frequency digit"
	// runs opposite to the raw coordinate: coordinate 3 is frequency 0 (DC),
	// coordinate 0 is the highest frequency on that axis.
	l1 := func(i int) int {
		sum := 0
		for a := 0; a < d; a++ {
			coord := (i >> uint(2*a)) & 3
			sum += 3 - coord
		}
		return sum
	}
	sort.SliceStable(idx, func(a, b int) bool {
		la, lb := l1(idx[a]), l1(idx[b])
		if la != lb {
			return la < lb
		}
		return idx[a] < idx[b]
	})
	return idx
}

// permFor returns the permutation table for a block size.
func permFor(size BlockSize) []int {
	switch size {
	case Block4:
		return perm4
	case Block16:
		return perm16
	case Block64:
		return perm64
	default:
		return nil
	}
}

// ReorderInt32 permutes the transformed iblock into frequency order and
// negabinary-maps each coefficient into ublock (spec.md §4.4: ublock[i] =
// int_to_uint(iblock[perm[i]])).
func ReorderInt32(iblock []int32, size BlockSize, ublock []uint32) {
	perm := permFor(size)
	for i, p := range perm {
		ublock[i] = Int32ToUint32(iblock[p])
	}
}

// ReorderInt64 is the int64 analogue of ReorderInt32.
func ReorderInt64(iblock []int64, size BlockSize, ublock []uint64) {
	perm := permFor(size)
	for i, p := range perm {
		ublock[i] = Int64ToUint64(iblock[p])
	}
}

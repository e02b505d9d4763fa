package zfpcore

// NegabinaryMagic32/64 are the alternating-bit constants (0xAA...AA) used by
// the negabinary map (spec.md §4.1) to fold the sign into the high bit while
// preserving small-magnitude-to-small-UInt ordering.
const (
	NegabinaryMagic32 uint32 = 0xAAAAAAAA
	NegabinaryMagic64 uint64 = 0xAAAAAAAAAAAAAAAA
)

// Int32ToUint32 maps a signed int32 to its negabinary-ordered uint32.
// Defined for every value of x via unsigned wrap-around. The "+M, then
// XOR M" map is not its own inverse (only the XOR-only map would be); the
// true inverse undoes the XOR first and then subtracts M, see
// Uint32ToInt32.
func Int32ToUint32(x int32) uint32 {
	return (uint32(x) + NegabinaryMagic32) ^ NegabinaryMagic32
}

// Uint32ToInt32 inverts Int32ToUint32: XOR first, then undo the add.
func Uint32ToInt32(u uint32) int32 {
	return int32((u ^ NegabinaryMagic32) - NegabinaryMagic32)
}

// Int64ToUint64 maps a signed int64 to its negabinary-ordered uint64.
func Int64ToUint64(x int64) uint64 {
	return (uint64(x) + NegabinaryMagic64) ^ NegabinaryMagic64
}

// Uint64ToInt64 inverts Int64ToUint64: XOR first, then undo the add.
func Uint64ToInt64(u uint64) int64 {
	return int64((u ^ NegabinaryMagic64) - NegabinaryMagic64)
}

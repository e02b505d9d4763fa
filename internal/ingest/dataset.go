// Package ingest is the external collaborator layer spec.md treats as
// given: it reads a flat binary file of scalars, partitions it into fixed
// 4^d blocks (zero-padding a ragged final block), sanitizes non-finite
// floats, and hands the result to internal/zfpcore as plain, contiguous
// per-block slices. Modeled on the teacher's loader package, which performs
// the analogous job of turning an external byte stream into VM-resident
// data the encoder (there, the instruction encoder; here, zfpcore) can
// consume directly.
package ingest

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/lookbusy1344/zfpblock/internal/zfpcore"
)

// Dataset holds one scalar file's worth of data, already padded to a whole
// number of blocks of the requested size. Exactly one of F32/F64/I32/I64 is
// populated, selected by Kind. Block i occupies elements
// [i*int(Size), (i+1)*int(Size)) of that slice directly — no copy is needed
// to hand a block to zfpcore's encode_block entry points.
type Dataset struct {
	Kind      zfpcore.ScalarKind
	Size      zfpcore.BlockSize
	NumBlocks int

	F32 []float32
	F64 []float64
	I32 []int32
	I64 []int64

	// Sanitized counts the non-finite float elements replaced by zero.
	// Always 0 for integer kinds.
	Sanitized int
}

// Load reads path as a flat little-endian binary file of elements of the
// given kind, pads the trailing partial block with zeros, and optionally
// sanitizes non-finite floats (NaN, +Inf, -Inf -> 0), logging a summary
// through logger if non-nil and any sanitization occurred.
func Load(path string, kind zfpcore.ScalarKind, size zfpcore.BlockSize, sanitize bool, logger *log.Logger) (*Dataset, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- caller-provided input path
	if err != nil {
		return nil, WrapIngestError(path, "failed to read input file", err)
	}

	ds := &Dataset{Kind: kind, Size: size}
	n := int(size)

	switch kind {
	case zfpcore.Float32:
		vals, err := decodeFloat32s(raw)
		if err != nil {
			return nil, WrapIngestError(path, "failed to decode float32 elements", err)
		}
		if sanitize {
			ds.Sanitized = sanitizeFloat32s(vals)
		}
		ds.F32 = padFloat32(vals, n)
		ds.NumBlocks = len(ds.F32) / n

	case zfpcore.Float64:
		vals, err := decodeFloat64s(raw)
		if err != nil {
			return nil, WrapIngestError(path, "failed to decode float64 elements", err)
		}
		if sanitize {
			ds.Sanitized = sanitizeFloat64s(vals)
		}
		ds.F64 = padFloat64(vals, n)
		ds.NumBlocks = len(ds.F64) / n

	case zfpcore.Int32:
		vals, err := decodeInt32s(raw)
		if err != nil {
			return nil, WrapIngestError(path, "failed to decode int32 elements", err)
		}
		ds.I32 = padInt32(vals, n)
		ds.NumBlocks = len(ds.I32) / n

	case zfpcore.Int64:
		vals, err := decodeInt64s(raw)
		if err != nil {
			return nil, WrapIngestError(path, "failed to decode int64 elements", err)
		}
		ds.I64 = padInt64(vals, n)
		ds.NumBlocks = len(ds.I64) / n

	default:
		return nil, &IngestError{Path: path, Message: fmt.Sprintf("unsupported scalar kind %v", kind)}
	}

	if logger != nil && ds.Sanitized > 0 {
		logger.Printf("ingest: %s: sanitized %d non-finite %s value(s) to 0", path, ds.Sanitized, kind)
	}

	return ds, nil
}

func decodeFloat32s(raw []byte) ([]float32, error) {
	const elemSize = 4
	if len(raw)%elemSize != 0 {
		return nil, fmt.Errorf("file size %d is not a multiple of %d bytes", len(raw), elemSize)
	}
	out := make([]float32, len(raw)/elemSize)
	for i := range out {
		bits := binary.LittleEndian.Uint32(raw[i*elemSize:])
		out[i] = math.Float32frombits(bits)
	}
	return out, nil
}

func decodeFloat64s(raw []byte) ([]float64, error) {
	const elemSize = 8
	if len(raw)%elemSize != 0 {
		return nil, fmt.Errorf("file size %d is not a multiple of %d bytes", len(raw), elemSize)
	}
	out := make([]float64, len(raw)/elemSize)
	for i := range out {
		bits := binary.LittleEndian.Uint64(raw[i*elemSize:])
		out[i] = math.Float64frombits(bits)
	}
	return out, nil
}

func decodeInt32s(raw []byte) ([]int32, error) {
	const elemSize = 4
	if len(raw)%elemSize != 0 {
		return nil, fmt.Errorf("file size %d is not a multiple of %d bytes", len(raw), elemSize)
	}
	out := make([]int32, len(raw)/elemSize)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(raw[i*elemSize:])) // #nosec G115 -- bit-pattern reinterpretation
	}
	return out, nil
}

func decodeInt64s(raw []byte) ([]int64, error) {
	const elemSize = 8
	if len(raw)%elemSize != 0 {
		return nil, fmt.Errorf("file size %d is not a multiple of %d bytes", len(raw), elemSize)
	}
	out := make([]int64, len(raw)/elemSize)
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(raw[i*elemSize:])) // #nosec G115 -- bit-pattern reinterpretation
	}
	return out, nil
}

// sanitizeFloat32s replaces non-finite values in place and returns the count
// replaced.
func sanitizeFloat32s(vals []float32) int {
	count := 0
	for i, v := range vals {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			vals[i] = 0
			count++
		}
	}
	return count
}

func sanitizeFloat64s(vals []float64) int {
	count := 0
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			vals[i] = 0
			count++
		}
	}
	return count
}

// padFloat32 returns vals extended with trailing zeros so its length is a
// multiple of n (spec.md §4 supplement: "padding a ragged final block with
// zeros, a common zfp-lineage behavior"). If vals is already a multiple of
// n, vals is returned unchanged.
func padFloat32(vals []float32, n int) []float32 {
	rem := len(vals) % n
	if rem == 0 {
		return vals
	}
	return append(vals, make([]float32, n-rem)...)
}

func padFloat64(vals []float64, n int) []float64 {
	rem := len(vals) % n
	if rem == 0 {
		return vals
	}
	return append(vals, make([]float64, n-rem)...)
}

func padInt32(vals []int32, n int) []int32 {
	rem := len(vals) % n
	if rem == 0 {
		return vals
	}
	return append(vals, make([]int32, n-rem)...)
}

func padInt64(vals []int64, n int) []int64 {
	rem := len(vals) % n
	if rem == 0 {
		return vals
	}
	return append(vals, make([]int64, n-rem)...)
}

// BlockFloat32 returns the slice of block i's elements from the F32 field.
// BlockFloat64, BlockInt32 and BlockInt64 below do the same for the other
// kinds; each panics with a slice-bounds error if called against a Dataset
// of a different Kind, which callers avoid by switching on Kind once (see
// cmd/zfpencode).
func (d *Dataset) BlockFloat32(i int) []float32 {
	n := int(d.Size)
	return d.F32[i*n : (i+1)*n]
}

func (d *Dataset) BlockFloat64(i int) []float64 {
	n := int(d.Size)
	return d.F64[i*n : (i+1)*n]
}

func (d *Dataset) BlockInt32(i int) []int32 {
	n := int(d.Size)
	return d.I32[i*n : (i+1)*n]
}

func (d *Dataset) BlockInt64(i int) []int64 {
	n := int(d.Size)
	return d.I64[i*n : (i+1)*n]
}

// StreamWords returns the word count required to hold every block of this
// dataset at the given per-block bit budget (see zfpcore.StreamWords).
func (d *Dataset) StreamWords(maxbits int) int {
	return zfpcore.StreamWords(d.NumBlocks, maxbits)
}

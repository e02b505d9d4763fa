// Package inspect renders a previously-encoded zfpcore.Stream for human
// inspection: word occupancy, block boundaries, and per-block header bits.
// It never decodes a block's payload (decoding is out of scope, spec.md §1
// Non-goals); it only shows the raw bit layout the encoder produced.
package inspect

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/lookbusy1344/zfpblock/internal/zfpcore"
)

// LoadStream reads a file written by cmd/zfpencode (a flat sequence of
// little-endian 64-bit words) into a zfpcore.Stream.
func LoadStream(path string) (*zfpcore.Stream, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- caller-provided input path
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("%s: size %d is not a multiple of 8 bytes", path, len(raw))
	}

	nwords := len(raw) / 8
	s := zfpcore.NewStream(nwords)
	for i := 0; i < nwords; i++ {
		s.Store(i, binary.LittleEndian.Uint64(raw[i*8:]))
	}
	return s, nil
}

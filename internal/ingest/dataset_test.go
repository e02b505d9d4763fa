package ingest

import (
	"encoding/binary"
	"log"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookbusy1344/zfpblock/internal/zfpcore"
)

func writeFloat32File(t *testing.T, vals []float32) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.f32")
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	require.NoError(t, os.WriteFile(path, buf, 0600))
	return path
}

func writeInt32File(t *testing.T, vals []int32) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.i32")
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v)) //nolint:gosec // bit-pattern reinterpretation
	}
	require.NoError(t, os.WriteFile(path, buf, 0600))
	return path
}

func TestLoadFloat32PadsRaggedBlock(t *testing.T) {
	path := writeFloat32File(t, []float32{1, 2, 3, 4, 5})
	ds, err := Load(path, zfpcore.Float32, zfpcore.Block4, false, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.NumBlocks)
	assert.Len(t, ds.F32, 8)
	assert.Equal(t, []float32{5, 0, 0, 0}, ds.BlockFloat32(1))
}

func TestLoadFloat32ExactMultipleNoPadding(t *testing.T) {
	path := writeFloat32File(t, []float32{1, 2, 3, 4, 5, 6, 7, 8})
	ds, err := Load(path, zfpcore.Float32, zfpcore.Block4, false, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.NumBlocks)
	assert.Len(t, ds.F32, 8)
}

func TestLoadFloat32SanitizesNonFinite(t *testing.T) {
	path := writeFloat32File(t, []float32{1, float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))})
	ds, err := Load(path, zfpcore.Float32, zfpcore.Block4, true, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Sanitized)
	block := ds.BlockFloat32(0)
	assert.Equal(t, float32(1), block[0])
	assert.Equal(t, []float32{0, 0, 0}, block[1:])
}

func TestLoadFloat32LeavesNonFiniteWhenSanitizeDisabled(t *testing.T) {
	path := writeFloat32File(t, []float32{1, float32(math.NaN()), 3, 4})
	ds, err := Load(path, zfpcore.Float32, zfpcore.Block4, false, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, ds.Sanitized)
	assert.True(t, math.IsNaN(float64(ds.F32[1])))
}

type logWriterFunc func([]byte) (int, error)

func (f logWriterFunc) Write(p []byte) (int, error) { return f(p) }

func TestLoadLogsSanitizationSummary(t *testing.T) {
	path := writeFloat32File(t, []float32{float32(math.NaN()), 1, 2, 3})
	var logged string
	logger := log.New(logWriterFunc(func(p []byte) (int, error) {
		logged += string(p)
		return len(p), nil
	}), "", 0)

	_, err := Load(path, zfpcore.Float32, zfpcore.Block4, true, logger)
	require.NoError(t, err)
	assert.NotEmpty(t, logged)
}

func TestLoadInt32RoundTrip(t *testing.T) {
	path := writeInt32File(t, []int32{-1, 0, 1, math.MinInt32})
	ds, err := Load(path, zfpcore.Int32, zfpcore.Block4, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []int32{-1, 0, 1, math.MinInt32}, ds.BlockInt32(0))
}

func TestLoadRejectsMisalignedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.f32")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0600))

	_, err := Load(path, zfpcore.Float32, zfpcore.Block4, false, nil)
	assert.Error(t, err)
}

func TestLoadMissingFileReturnsIngestError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.f32"), zfpcore.Float32, zfpcore.Block4, false, nil)
	require.Error(t, err)

	var ie *IngestError
	assert.ErrorAs(t, err, &ie)
}

func TestStreamWordsMatchesCore(t *testing.T) {
	path := writeFloat32File(t, make([]float32, 64))
	ds, err := Load(path, zfpcore.Float32, zfpcore.Block16, false, nil)
	require.NoError(t, err)

	assert.Equal(t, zfpcore.StreamWords(ds.NumBlocks, 256), ds.StreamWords(256))
}

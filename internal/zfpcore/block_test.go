package zfpcore_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/lookbusy1344/zfpblock/internal/zfpcore"
)

// sentinelCheck asserts that the words strictly before and after a block's
// own range are exactly as poisoned: the sandwich technique of P5.
func sentinelCheck(t *testing.T, s *zfpcore.Stream, blockIdx, maxbits int) {
	t.Helper()
	first := blockIdx * maxbits / zfpcore.WordBits
	if first > 0 {
		for i := 0; i < first; i++ {
			if s.Load(i) != ^uint64(0) {
				t.Fatalf("sentinel word %d below block range corrupted: %#x", i, s.Load(i))
			}
		}
	}
	last := ((blockIdx+1)*maxbits - 1) / zfpcore.WordBits
	for i := last + 1; i < s.Len(); i++ {
		if s.Load(i) != ^uint64(0) {
			t.Fatalf("sentinel word %d above block range corrupted: %#x", i, s.Load(i))
		}
	}
}

// TestBitBudgetCompliance checks P5 across scalar kinds, block sizes,
// budgets, and block indices.
func TestBitBudgetCompliance(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	budgets := []int{0, 1, 8, 64, 1024}
	indices := []int{0, 1, 7}
	sizes := []zfpcore.BlockSize{zfpcore.Block4, zfpcore.Block16, zfpcore.Block64}

	for _, size := range sizes {
		n := int(size)
		for _, maxbits := range budgets {
			for _, idx := range indices {
				nwords := zfpcore.StreamWords(idx+2, maxbits)
				if nwords < 4 {
					nwords = 4
				}

				mkStream := func() *zfpcore.Stream {
					s := zfpcore.NewStream(nwords)
					for i := 0; i < nwords; i++ {
						s.Store(i, ^uint64(0))
					}
					return s
				}

				ff := make([]float64, n)
				for i := range ff {
					ff[i] = r.NormFloat64() * 1000
				}
				s1 := mkStream()
				zfpcore.EncodeFloat64Block(ff, size, maxbits, idx, s1)
				sentinelCheck(t, s1, idx, maxbits)

				ii := make([]int32, n)
				for i := range ii {
					ii[i] = int32(r.Intn(1 << 20))
				}
				s2 := mkStream()
				zfpcore.EncodeInt32Block(ii, size, maxbits, idx, s2)
				sentinelCheck(t, s2, idx, maxbits)
			}
		}
	}
}

// TestZeroBlockIdempotence checks P6: an all-zero float block produces zero
// written bits.
func TestZeroBlockIdempotence(t *testing.T) {
	block := make([]float64, 64)
	s := zfpcore.NewStream(zfpcore.StreamWords(1, 4096))
	zfpcore.EncodeFloat64Block(block, zfpcore.Block64, 4096, 0, s)
	for i := 0; i < s.Len(); i++ {
		if s.Load(i) != 0 {
			t.Fatalf("zero block must write zero bits, word %d = %#x", i, s.Load(i))
		}
	}
}

// blockBits extracts the maxbits-bit window belonging to blockIdx as a
// big.Int-free bit string (LSB-first), for prefix comparisons.
func blockBits(s *zfpcore.Stream, blockIdx, maxbits int) []byte {
	bits := make([]byte, maxbits)
	base := blockIdx * maxbits
	for i := 0; i < maxbits; i++ {
		pos := base + i
		word := s.Load(pos / zfpcore.WordBits)
		bits[i] = byte((word >> uint(pos%zfpcore.WordBits)) & 1)
	}
	return bits
}

// TestMonotoneTruncation checks P7: the output at a small budget is a prefix
// of the output at a much larger budget.
func TestMonotoneTruncation(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	block := make([]float32, 16)
	for i := range block {
		block[i] = r.Float32()*200 - 100
	}

	const bigBudget = 1024
	sBig := zfpcore.NewStream(zfpcore.StreamWords(1, bigBudget))
	zfpcore.EncodeFloat32Block(block, zfpcore.Block16, bigBudget, 0, sBig)
	want := blockBits(sBig, 0, bigBudget)

	for _, small := range []int{0, 16, 64} {
		s := zfpcore.NewStream(zfpcore.StreamWords(1, bigBudget))
		zfpcore.EncodeFloat32Block(block, zfpcore.Block16, small, 0, s)
		got := blockBits(s, 0, small)
		for i := 0; i < small; i++ {
			if got[i] != want[i] {
				t.Fatalf("budget=%d: bit %d diverges from the unlimited-budget encoding", small, i)
			}
		}
	}
}

// TestParallelIndependence checks P8: encoding N blocks sequentially into a
// zero buffer vs. encoding them concurrently (one goroutine per block, the
// spec.md §5 worker model) produces identical buffers.
func TestParallelIndependence(t *testing.T) {
	const maxbits = 193 // deliberately not word-aligned
	const numBlocks = 9
	r := rand.New(rand.NewSource(8))

	blocks := make([][]float64, numBlocks)
	for i := range blocks {
		b := make([]float64, 64)
		for j := range b {
			b[j] = r.NormFloat64() * 500
		}
		blocks[i] = b
	}

	seq := zfpcore.NewStream(zfpcore.StreamWords(numBlocks, maxbits))
	for i, b := range blocks {
		zfpcore.EncodeFloat64Block(b, zfpcore.Block64, maxbits, i, seq)
	}

	par := zfpcore.NewStream(zfpcore.StreamWords(numBlocks, maxbits))
	var wg sync.WaitGroup
	for i, b := range blocks {
		wg.Add(1)
		go func(i int, b []float64) {
			defer wg.Done()
			zfpcore.EncodeFloat64Block(b, zfpcore.Block64, maxbits, i, par)
		}(i, b)
	}
	wg.Wait()

	for i := 0; i < seq.Len(); i++ {
		if seq.Load(i) != par.Load(i) {
			t.Fatalf("word %d diverges between sequential and concurrent encoding: %#x vs %#x", i, seq.Load(i), par.Load(i))
		}
	}
}

// TestScenarioZeroBlock is end-to-end scenario 1.
func TestScenarioZeroBlock(t *testing.T) {
	block := make([]float64, 64)
	s := zfpcore.NewStream(zfpcore.StreamWords(1, 4096))
	zfpcore.EncodeFloat64Block(block, zfpcore.Block64, 4096, 0, s)
	for i := 0; i < s.Len(); i++ {
		if s.Load(i) != 0 {
			t.Fatalf("word %d should be zero, got %#x", i, s.Load(i))
		}
	}
}

// TestScenarioDCOnlyBlock is end-to-end scenario 2: a constant block's
// header should encode biased exponent e=1023 in the low ebits+1=12 bits.
func TestScenarioDCOnlyBlock(t *testing.T) {
	block := []float64{1.0, 1.0, 1.0, 1.0}
	s := zfpcore.NewStream(zfpcore.StreamWords(1, 32))
	zfpcore.EncodeFloat64Block(block, zfpcore.Block4, 32, 0, s)

	header := s.Load(0) & ((1 << 12) - 1)
	want := uint64(2*1023 + 1)
	if header != want {
		t.Fatalf("header: got %#x, want %#x", header, want)
	}
}

// TestScenarioIntBlockOffsetRange is end-to-end scenario 3: an int32 block
// at block_idx=3 with maxbits=256 must not touch bits outside [768, 1024).
func TestScenarioIntBlockOffsetRange(t *testing.T) {
	const maxbits = 256
	const idx = 3
	nwords := zfpcore.StreamWords(idx+2, maxbits)
	s := zfpcore.NewStream(nwords)
	for i := 0; i < nwords; i++ {
		s.Store(i, ^uint64(0))
	}
	block := []int32{-1, 0, 0, 0}
	zfpcore.EncodeInt32Block(block, zfpcore.Block4, maxbits, idx, s)
	sentinelCheck(t, s, idx, maxbits)
}

// TestEncodeInt32BlockBitExact hand-derives the full bit-plane payload for
// the int32 block [-1, 0, 0, 0] (the same block as scenario 3) and checks it
// literally, bit for bit. This is the kind of assertion TestScenarioIntBlockOffsetRange
// does not make: that test only sentinel-checks the block's boundary, so a
// coder that wrote the right number of bits in the wrong pattern (or all
// zero bits) would still pass it.
//
// Hand trace: fwdLift4Int32(-1, 0, 0, 0) = (w,z,y,x) = (0, 1, 0, -1), so
// iblock = [0, 1, 0, -1]. perm4 = [3, 2, 1, 0], so
// ublock = [Int32ToUint32(-1), Int32ToUint32(0), Int32ToUint32(1), Int32ToUint32(0)]
//        = [3, 0, 1, 0].
// Only bit-planes k=1 (plane bits 0b0001, from u[0]=3) and k=0 (plane bits
// 0b0101, from u[0]=3 and u[2]=1) are nonzero; the 30 planes above them
// (k=31..2) each contribute a single "0" group-test bit since every
// coefficient is still untested and zero in those planes:
//
//	k=31..2 (30 planes): one "0" test bit each                -> bits 0..29
//	k=1: test=1, raw(u0 bit)=1, raw(u1 bit)=0, test=0           -> bits 30..33 = 1,1,0,0
//	k=0: raw(u0 bit)=1, raw(u1 bit)=0, test=1, raw(u2 bit)=1,
//	     raw(u3 bit)=0 (n reaches blockSize, loop ends)         -> bits 34..38 = 1,0,1,1,0
func TestEncodeInt32BlockBitExact(t *testing.T) {
	const maxbits = 64
	s := zfpcore.NewStream(zfpcore.StreamWords(1, maxbits))
	block := []int32{-1, 0, 0, 0}
	zfpcore.EncodeInt32Block(block, zfpcore.Block4, maxbits, 0, s)

	want := make([]byte, maxbits)
	// bits 0..29 default to 0 (30 leading all-insignificant planes).
	copy(want[30:], []byte{1, 1, 0, 0, 1, 0, 1, 1, 0})

	got := blockBits(s, 0, maxbits)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bit %d: got %d, want %d (full got=%v)", i, got[i], want[i], got)
		}
	}
}

// TestScenarioBudgetTruncation16 is end-to-end scenario 4.
func TestScenarioBudgetTruncation16(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	block := make([]float32, 16)
	for i := range block {
		block[i] = r.Float32()*50 + 1
	}

	sBig := zfpcore.NewStream(zfpcore.StreamWords(1, 1024))
	zfpcore.EncodeFloat32Block(block, zfpcore.Block16, 1024, 0, sBig)
	sSmall := zfpcore.NewStream(zfpcore.StreamWords(1, 1024))
	zfpcore.EncodeFloat32Block(block, zfpcore.Block16, 16, 0, sSmall)

	want := blockBits(sBig, 0, 16)
	got := blockBits(sSmall, 0, 16)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bit %d diverges", i)
		}
	}
}

// TestScenarioBoundaryStraddle is end-to-end scenario 5.
func TestScenarioBoundaryStraddle(t *testing.T) {
	const maxbits = 37
	const idx = 5 // 5*37 = 185 = 2*64 + 57
	nwords := zfpcore.StreamWords(idx+2, maxbits)
	s := zfpcore.NewStream(nwords)
	for i := 0; i < nwords; i++ {
		s.Store(i, ^uint64(0))
	}

	block := make([]float64, 64)
	for i := range block {
		block[i] = float64(i) + 1
	}
	zfpcore.EncodeFloat64Block(block, zfpcore.Block64, maxbits, idx, s)

	if s.Load(1) != ^uint64(0) {
		t.Fatalf("word 1 (below the block) must be untouched")
	}
	if s.Load(4) != ^uint64(0) {
		t.Fatalf("word 4 (above the block) must be untouched")
	}
}

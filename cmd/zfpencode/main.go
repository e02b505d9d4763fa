// Command zfpencode compresses a flat binary file of scalars into a
// bit-packed stream using the block encoder core in internal/zfpcore.
// It wires config, internal/ingest, and internal/zfpcore together with a
// goroutine worker pool: one logical worker per block range, matching
// spec.md §5's "one thread per block" model with goroutines in place of
// GPU threads.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/lookbusy1344/zfpblock/config"
	"github.com/lookbusy1344/zfpblock/internal/ingest"
	"github.com/lookbusy1344/zfpblock/internal/zfpcore"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		scalarKind  = flag.String("kind", "", "Scalar kind: float32, float64, int32, int64 (default from config)")
		blockSize   = flag.Int("block-size", 0, "Block size: 4, 16, or 64 (default from config)")
		maxBits     = flag.Int("max-bits", 0, "Per-block bit budget (default from config)")
		workers     = flag.Int("workers", 0, "Worker goroutines (0 = GOMAXPROCS, default from config)")
		outFile     = flag.String("out", "", "Output file for the bit-packed stream (default: <input>.zfp)")
		verbose     = flag.Bool("verbose", false, "Verbose output")
		stats       = flag.Bool("stats", false, "Print encoding statistics")
		configPath  = flag.String("config", "", "Path to config file (default: platform config directory)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("zfpencode %s (%s)\n", Version, Commit)
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	applyOverrides(cfg, *scalarKind, *blockSize, *maxBits, *workers)

	kind, err := parseScalarKind(cfg.Encoding.ScalarKind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	size, err := parseBlockSize(cfg.Encoding.BlockSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inFile := flag.Arg(0)
	if _, err := os.Stat(inFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", inFile)
		os.Exit(1)
	}

	out := *outFile
	if out == "" {
		out = inFile + ".zfp"
	}

	logger := log.New(os.Stderr, "", 0)

	if *verbose {
		fmt.Printf("Loading %s as %s, block size %d, max-bits %d\n", inFile, kind, size, cfg.Encoding.MaxBits)
	}

	start := time.Now()
	dataset, err := ingest.Load(inFile, kind, size, cfg.Ingest.SanitizeNonFinite, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading input: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded %d block(s)\n", dataset.NumBlocks)
	}

	maxbits := cfg.Encoding.MaxBits
	nwords := dataset.StreamWords(maxbits)
	stream := zfpcore.NewStream(nwords)

	numWorkers := cfg.Encoding.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	encodeDataset(dataset, maxbits, stream, numWorkers)

	if err := writeStream(out, stream); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)

	if *stats {
		printStats(dataset, maxbits, nwords, elapsed)
	} else if *verbose {
		fmt.Printf("Wrote %s (%d words, %d bytes) in %s\n", out, nwords, nwords*zfpcore.WordBits/8, elapsed)
	}
}

// encodeDataset fans the dataset's blocks out across numWorkers goroutines,
// each claiming a disjoint, contiguous range of block indices. Every block
// still writes through its own BlockWriter into disjoint bits of the shared
// stream (spec.md §5's I1/I2 contract); the worker pool here only decides
// which goroutine calls encode_block for which index, not how the bits are
// merged.
func encodeDataset(ds *ingest.Dataset, maxbits int, stream *zfpcore.Stream, numWorkers int) {
	if numWorkers > ds.NumBlocks {
		numWorkers = ds.NumBlocks
	}
	if numWorkers < 1 {
		return
	}

	var wg sync.WaitGroup
	chunk := (ds.NumBlocks + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > ds.NumBlocks {
			hi = ds.NumBlocks
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				encodeBlock(ds, i, maxbits, stream)
			}
		}(lo, hi)
	}
	wg.Wait()
}

func encodeBlock(ds *ingest.Dataset, idx, maxbits int, stream *zfpcore.Stream) {
	switch ds.Kind {
	case zfpcore.Float32:
		zfpcore.EncodeFloat32Block(ds.BlockFloat32(idx), ds.Size, maxbits, idx, stream)
	case zfpcore.Float64:
		zfpcore.EncodeFloat64Block(ds.BlockFloat64(idx), ds.Size, maxbits, idx, stream)
	case zfpcore.Int32:
		zfpcore.EncodeInt32Block(ds.BlockInt32(idx), ds.Size, maxbits, idx, stream)
	case zfpcore.Int64:
		zfpcore.EncodeInt64Block(ds.BlockInt64(idx), ds.Size, maxbits, idx, stream)
	}
}

func writeStream(path string, stream *zfpcore.Stream) error {
	f, err := os.Create(path) // #nosec G304 -- caller-provided output path
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 8)
	for i := 0; i < stream.Len(); i++ {
		word := stream.Load(i)
		for b := 0; b < 8; b++ {
			buf[b] = byte(word >> (8 * b))
		}
		if _, err := f.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func printStats(ds *ingest.Dataset, maxbits, nwords int, elapsed time.Duration) {
	fmt.Printf("blocks:       %d\n", ds.NumBlocks)
	fmt.Printf("block size:   %d (d=%d)\n", ds.Size, ds.Size.Dims())
	fmt.Printf("scalar kind:  %s\n", ds.Kind)
	fmt.Printf("max bits:     %d\n", maxbits)
	fmt.Printf("output words: %d (%d bytes)\n", nwords, nwords*zfpcore.WordBits/8)
	fmt.Printf("sanitized:    %d\n", ds.Sanitized)
	fmt.Printf("elapsed:      %s\n", elapsed)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func applyOverrides(cfg *config.Config, kind string, blockSize, maxBits, workers int) {
	if kind != "" {
		cfg.Encoding.ScalarKind = kind
	}
	if blockSize != 0 {
		cfg.Encoding.BlockSize = blockSize
	}
	if maxBits != 0 {
		cfg.Encoding.MaxBits = maxBits
	}
	if workers != 0 {
		cfg.Encoding.Workers = workers
	}
}

func parseScalarKind(s string) (zfpcore.ScalarKind, error) {
	switch s {
	case "float32":
		return zfpcore.Float32, nil
	case "float64":
		return zfpcore.Float64, nil
	case "int32":
		return zfpcore.Int32, nil
	case "int64":
		return zfpcore.Int64, nil
	default:
		return 0, fmt.Errorf("unknown scalar kind %q (want float32, float64, int32, or int64)", s)
	}
}

func parseBlockSize(n int) (zfpcore.BlockSize, error) {
	switch n {
	case 4:
		return zfpcore.Block4, nil
	case 16:
		return zfpcore.Block16, nil
	case 64:
		return zfpcore.Block64, nil
	default:
		return 0, fmt.Errorf("unsupported block size %d (want 4, 16, or 64)", n)
	}
}

func printHelp() {
	fmt.Println("zfpencode - block-compress a flat binary scalar file")
	fmt.Println()
	fmt.Println("Usage: zfpencode [flags] <input-file>")
	fmt.Println()
	flag.PrintDefaults()
}

// Command zfpinspect is a terminal bitstream inspector for files produced
// by cmd/zfpencode. It renders word occupancy, block boundaries, and
// per-block header bits, adapted from the teacher's debugger TUI
// (debugger/tui.go) but driven by a read-only Stream instead of a live VM.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lookbusy1344/zfpblock/config"
	"github.com/lookbusy1344/zfpblock/internal/inspect"
	"github.com/lookbusy1344/zfpblock/internal/zfpcore"
)

func main() {
	var (
		blockSize  = flag.Int("block-size", 0, "Block size the file was encoded with (default from config)")
		maxBits    = flag.Int("max-bits", 0, "Per-block bit budget the file was encoded with (default from config)")
		configPath = flag.String("config", "", "Path to config file (default: platform config directory)")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("zfpinspect - inspect a zfpencode bitstream")
		fmt.Println()
		fmt.Println("Usage: zfpinspect [flags] <stream-file>")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *blockSize != 0 {
		cfg.Encoding.BlockSize = *blockSize
	}
	if *maxBits != 0 {
		cfg.Encoding.MaxBits = *maxBits
	}

	path := flag.Arg(0)
	stream, err := inspect.LoadStream(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stream: %v\n", err)
		os.Exit(1)
	}

	size, err := parseBlockSize(cfg.Encoding.BlockSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	view := inspect.NewView(stream, size, cfg.Encoding.MaxBits, cfg.Inspector.WordsPerRow, cfg.Inspector.NumberFormat)
	if err := view.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running inspector: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
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

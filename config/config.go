package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the zfpencode/zfpinspect configuration.
type Config struct {
	// Encoding settings
	Encoding struct {
		ScalarKind string `toml:"scalar_kind"` // float32, float64, int32, int64
		BlockSize  int    `toml:"block_size"`  // 4, 16, or 64
		MaxBits    int    `toml:"max_bits"`     // per-block bit budget
		Workers    int    `toml:"workers"`      // 0 = GOMAXPROCS
	} `toml:"encoding"`

	// Ingest settings
	Ingest struct {
		SanitizeNonFinite bool `toml:"sanitize_non_finite"`
		PadRaggedBlocks   bool `toml:"pad_ragged_blocks"`
	} `toml:"ingest"`

	// Trace settings
	Trace struct {
		OutputFile   string `toml:"output_file"`
		IncludeStats bool   `toml:"include_stats"`
	} `toml:"trace"`

	// Statistics settings
	Statistics struct {
		OutputFile string `toml:"output_file"`
		Format     string `toml:"format"` // json, csv
	} `toml:"statistics"`

	// Inspector (cmd/zfpinspect) display settings
	Inspector struct {
		ColorOutput  bool   `toml:"color_output"`
		WordsPerRow  int    `toml:"words_per_row"`
		NumberFormat string `toml:"number_format"` // hex, dec, both
	} `toml:"inspector"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Encoding.ScalarKind = "float64"
	cfg.Encoding.BlockSize = 64
	cfg.Encoding.MaxBits = 1024
	cfg.Encoding.Workers = 0

	cfg.Ingest.SanitizeNonFinite = true
	cfg.Ingest.PadRaggedBlocks = true

	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.IncludeStats = true

	cfg.Statistics.OutputFile = "stats.json"
	cfg.Statistics.Format = "json"

	cfg.Inspector.ColorOutput = true
	cfg.Inspector.WordsPerRow = 4
	cfg.Inspector.NumberFormat = "hex"

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\zfpblock\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "zfpblock")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/zfpblock/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "zfpblock")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "zfpblock", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "zfpblock", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. If the file does
// not exist, the defaults are returned unchanged.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

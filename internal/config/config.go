package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// GPIO backends.
const (
	BackendPeriph   = "periph"
	BackendGPIOCdev = "gpiocdev"
)

// Demo modes.
var Demos = []string{"all", "raw", "shapes", "text", "sysinfo"}

// SPIConfig selects the SPI port.
type SPIConfig struct {
	// Port is the periph.io spireg name; empty picks the first port.
	Port string `yaml:"port"`
	// Hz is the SPI clock.
	Hz int64 `yaml:"hz"`
}

// PinsConfig selects the D/C and RST lines.
type PinsConfig struct {
	// Backend is "periph" (gpioreg names) or "gpiocdev" (chip + offsets).
	Backend string `yaml:"backend"`

	// periph backend
	DC  string `yaml:"dc"`
	RST string `yaml:"rst"`

	// gpiocdev backend; a negative RSTOffset means no reset line.
	Chip      string `yaml:"chip"`
	DCOffset  int    `yaml:"dc_offset"`
	RSTOffset int    `yaml:"rst_offset"`
}

// DisplayConfig holds panel settings applied after Init.
type DisplayConfig struct {
	// Contrast overrides the power-up contrast when non-zero.
	Contrast int  `yaml:"contrast"`
	Invert   bool `yaml:"invert"`
}

// Config is the demo application configuration.
type Config struct {
	SPI     SPIConfig     `yaml:"spi"`
	Pins    PinsConfig    `yaml:"pins"`
	Display DisplayConfig `yaml:"display"`

	// Demo is one of Demos.
	Demo string `yaml:"demo"`
	// Interval is the time between frames.
	Interval time.Duration `yaml:"interval"`
	// LogLevel is DEBUG, INFO or ERROR.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		SPI: SPIConfig{
			Hz: 8_000_000,
		},
		Pins: PinsConfig{
			Backend:   BackendPeriph,
			DC:        "GPIO25",
			RST:       "GPIO24",
			Chip:      "gpiochip0",
			DCOffset:  25,
			RSTOffset: 24,
		},
		Demo:     "all",
		Interval: 500 * time.Millisecond,
		LogLevel: "INFO",
	}
}

// Normalize fills in missing/zero values with defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.SPI.Hz <= 0 {
		c.SPI.Hz = def.SPI.Hz
	}
	if c.Pins.Backend == "" {
		c.Pins.Backend = def.Pins.Backend
	}
	if c.Pins.DC == "" {
		c.Pins.DC = def.Pins.DC
	}
	if c.Pins.Chip == "" {
		c.Pins.Chip = def.Pins.Chip
	}
	if c.Demo == "" {
		c.Demo = def.Demo
	}
	if c.Interval <= 0 {
		c.Interval = def.Interval
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Validate reports settings the demo cannot run with.
func (c *Config) Validate() error {
	switch c.Pins.Backend {
	case BackendPeriph:
		if c.Pins.DC == "" {
			return errors.New("config: pins.dc is required")
		}
	case BackendGPIOCdev:
		if c.Pins.DCOffset < 0 {
			return errors.New("config: pins.dc_offset must not be negative")
		}
	default:
		return fmt.Errorf("config: unknown pins.backend %q", c.Pins.Backend)
	}
	if c.Display.Contrast < 0 || c.Display.Contrast > 255 {
		return fmt.Errorf("config: display.contrast %d out of range 0-255", c.Display.Contrast)
	}
	for _, d := range Demos {
		if c.Demo == d {
			return nil
		}
	}
	return fmt.Errorf("config: unknown demo %q", c.Demo)
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there with 0600
// permissions and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically via a temp file + rename, creating the
// parent directory (0700) if needed. The file ends up with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".ist7920-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

package layout

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config sizes the node arena and tunes the engine. It can be loaded from a
// TOML file:
//
//	initial_capacity = 256
//	max_nodes = 65536
//	fixed_capacity = false
//	clamp_lanes = 0
//	debug_log = "/tmp/flex.log"
type Config struct {
	// InitialCapacity is the number of node slots preallocated.
	// With FixedCapacity it is also the hard limit.
	InitialCapacity int `toml:"initial_capacity"`

	// MaxNodes caps arena growth; 0 means limited only by the handle index
	// space. Growing past it fails with ErrOutOfMemory.
	MaxNodes int `toml:"max_nodes"`

	// FixedCapacity forbids growth past InitialCapacity; adding a node to a
	// full arena fails with ErrCapacityExceeded.
	FixedCapacity bool `toml:"fixed_capacity"`

	// ClampLanes selects the constraint clamper's batch width:
	// 0 = detect from the CPU, 1 = scalar, 4 or 8.
	ClampLanes int `toml:"clamp_lanes"`

	// DebugLog, when set, enables the debug log at this path.
	DebugLog string `toml:"debug_log"`
}

// DefaultConfig returns a growable configuration with a small preallocation.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 64,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.InitialCapacity < 0 {
		return fmt.Errorf("initial_capacity must not be negative, got %d", c.InitialCapacity)
	}
	if c.FixedCapacity && c.InitialCapacity < 1 {
		return fmt.Errorf("fixed_capacity requires initial_capacity of at least 1")
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("max_nodes must not be negative, got %d", c.MaxNodes)
	}
	if c.MaxNodes > 0 && c.MaxNodes < c.InitialCapacity {
		return fmt.Errorf("max_nodes (%d) is below initial_capacity (%d)", c.MaxNodes, c.InitialCapacity)
	}
	switch c.ClampLanes {
	case 0, LanesScalar, Lanes4, Lanes8:
	default:
		return fmt.Errorf("clamp_lanes must be 0, 1, 4 or 8, got %d", c.ClampLanes)
	}
	return nil
}

// ParseConfig decodes TOML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

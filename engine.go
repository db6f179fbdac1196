package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Option is a functional option for configuring an Engine.
type Option = layout.Option

// Config sizes the node arena and tunes the engine.
type Config = layout.Config

// New creates an Engine.
func New(opts ...Option) (*Engine, error) {
	return layout.New(opts...)
}

// DefaultConfig returns a growable configuration with a small preallocation.
func DefaultConfig() Config {
	return layout.DefaultConfig()
}

// LoadConfig reads and validates a TOML config file.
func LoadConfig(path string) (Config, error) {
	return layout.LoadConfig(path)
}

// ParseConfig decodes and validates TOML config data.
func ParseConfig(data []byte) (Config, error) {
	return layout.ParseConfig(data)
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return layout.WithConfig(cfg)
}

// WithCapacity preallocates n node slots. The arena may still grow.
func WithCapacity(n int) Option {
	return layout.WithCapacity(n)
}

// WithFixedCapacity preallocates exactly n node slots and never grows.
func WithFixedCapacity(n int) Option {
	return layout.WithFixedCapacity(n)
}

// WithMaxNodes caps arena growth at n slots.
func WithMaxNodes(n int) Option {
	return layout.WithMaxNodes(n)
}

// WithClampLanes forces the constraint clamper's batch width (1, 4 or 8).
func WithClampLanes(lanes int) Option {
	return layout.WithClampLanes(lanes)
}

// WithMeasure sets the default measure function for auto-sized leaves.
func WithMeasure(fn MeasureFunc) Option {
	return layout.WithMeasure(fn)
}

package layout

import "fmt"

// Option is a functional option for configuring an Engine.
type Option func(*Engine) error

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		e.cfg = cfg
		return nil
	}
}

// WithCapacity preallocates n node slots. The arena may still grow.
func WithCapacity(n int) Option {
	return func(e *Engine) error {
		if n < 0 {
			return fmt.Errorf("capacity must not be negative")
		}
		e.cfg.InitialCapacity = n
		return nil
	}
}

// WithFixedCapacity preallocates exactly n node slots and never grows.
// Adding a node to a full engine fails with ErrCapacityExceeded.
func WithFixedCapacity(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("fixed capacity must be at least 1")
		}
		e.cfg.InitialCapacity = n
		e.cfg.FixedCapacity = true
		return nil
	}
}

// WithMaxNodes caps arena growth at n slots. Growing past it fails with
// ErrOutOfMemory.
func WithMaxNodes(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("max nodes must be at least 1")
		}
		e.cfg.MaxNodes = n
		return nil
	}
}

// WithClampLanes forces the clamper's batch width (1, 4 or 8).
// By default the width is detected from the CPU.
func WithClampLanes(lanes int) Option {
	return func(e *Engine) error {
		switch lanes {
		case LanesScalar, Lanes4, Lanes8:
		default:
			return fmt.Errorf("clamp lanes must be 1, 4 or 8, got %d", lanes)
		}
		e.cfg.ClampLanes = lanes
		return nil
	}
}

// WithMeasure sets the default measure function used for auto-sized leaves
// that have no measure function of their own.
func WithMeasure(fn MeasureFunc) Option {
	return func(e *Engine) error {
		e.measure = fn
		return nil
	}
}

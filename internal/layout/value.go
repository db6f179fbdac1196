package layout

import "math"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex, or unbounded for max
	UnitFixed               // Absolute length
	UnitPercent             // Percentage of the parent's content box
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
// As a max constraint, Auto means unbounded.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute length.
func Fixed(n float32) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual value given available space.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback float32) float32 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitPercent:
		return available * v.Amount / 100
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// sanitize turns a value that cannot describe a length (NaN, infinite,
// negative, unknown unit) into Auto.
func (v Value) sanitize() Value {
	switch v.Unit {
	case UnitFixed, UnitPercent:
		if !finite(v.Amount) || v.Amount < 0 {
			return Auto()
		}
		return v
	default:
		return Auto()
	}
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// nonNegative returns f, or 0 if f is NaN, infinite or negative.
func nonNegative(f float32) float32 {
	if !finite(f) || f < 0 {
		return 0
	}
	return f
}

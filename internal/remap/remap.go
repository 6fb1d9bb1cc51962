// Package remap maps a bounded scalar from one range onto another.
// It is how pointer coordinates in [-1, 1] become world positions.
package remap

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a source range is empty or inverted (min >= max).
var ErrInvalidRange = errors.New("remap: invalid source range")

// Remap clamps v to [vmin, vmax] and linearly interpolates it into [tmin, tmax].
// Values outside the source range are pinned to the nearest target bound, never
// extrapolated. The bounds themselves map exactly: Remap(vmin) == tmin and
// Remap(vmax) == tmax. tmin may be greater than tmax, which reverses the mapping.
func Remap(v, vmin, vmax, tmin, tmax float32) (float32, error) {
	if !(vmin < vmax) {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, vmin, vmax)
	}
	return remap(v, vmin, vmax, tmin, tmax), nil
}

// remap assumes vmin < vmax.
func remap(v, vmin, vmax, tmin, tmax float32) float32 {
	if v <= vmin {
		return tmin
	}
	if v >= vmax {
		return tmax
	}
	t := (v - vmin) / (vmax - vmin)
	out := tmin + t*(tmax-tmin)
	// Rounding must not push an interior value past either target bound.
	lo, hi := tmin, tmax
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(out, lo), hi)
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// Mapping is a validated-once source-to-target remapping, suited to per-frame use.
type Mapping struct {
	From Range `yaml:"from"`
	To   Range `yaml:"to"`
}

// Validate reports ErrInvalidRange if the source range is not strictly increasing.
func (m Mapping) Validate() error {
	if !(m.From.Min < m.From.Max) {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, m.From.Min, m.From.Max)
	}
	return nil
}

// Apply remaps v. Call Validate first; an invalid mapping returns To.Min.
func (m Mapping) Apply(v float32) float32 {
	if !(m.From.Min < m.From.Max) {
		return m.To.Min
	}
	return remap(v, m.From.Min, m.From.Max, m.To.Min, m.To.Max)
}

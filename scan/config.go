package scan

import (
	"math"
	"time"
)

// Config describes a scanner.
type Config struct {
	Direction     Direction     `yaml:"direction" json:"direction"`
	Speed         SpeedProfile  `yaml:"speed" json:"speed"`
	BandThickness float64       `yaml:"bandThickness" json:"bandThickness"`
	Duration      time.Duration `yaml:"duration" json:"duration"`
	// Midpoint is where eased-in-and-out passes change pace. Zero means
	// the centre of the axis.
	Midpoint float64 `yaml:"midpoint" json:"midpoint"`
	// Threshold is the fraction of the axis extent at which the threshold
	// callback fires.
	Threshold float64 `yaml:"threshold" json:"threshold"`
	Cycle     bool    `yaml:"cycle" json:"cycle"`
	Bounds    Bounds  `yaml:"bounds" json:"bounds"`
}

// DefaultConfig matches the stock widget: a 5pt band sweeping down over
// 1.5s and bouncing back indefinitely.
func DefaultConfig() Config {
	return Config{
		Direction:     TopToBottom,
		Speed:         Linear,
		BandThickness: 5,
		Duration:      1500 * time.Millisecond,
		Threshold:     1,
		Cycle:         true,
	}
}

// Normalize clamps values that cannot describe a pass. A non-positive
// duration becomes an instant pass.
func (c Config) Normalize() Config {
	if c.Duration < 0 {
		c.Duration = 0
	}
	if c.BandThickness < 0 || math.IsNaN(c.BandThickness) || math.IsInf(c.BandThickness, 0) {
		c.BandThickness = 0
	}
	if math.IsNaN(c.Midpoint) || math.IsInf(c.Midpoint, 0) {
		c.Midpoint = 0
	}
	if math.IsNaN(c.Threshold) {
		c.Threshold = 1
	}
	c.Bounds.Width = clampExtent(c.Bounds.Width)
	c.Bounds.Height = clampExtent(c.Bounds.Height)
	return c
}

// MaxExtent is the largest bounds dimension a Config keeps.
const MaxExtent = 1 << 20

func clampExtent(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > MaxExtent:
		return MaxExtent
	}
	return v
}

// Geometry lays out c over its bounds.
func (c Config) Geometry() Geometry {
	return Geometry{
		Bounds:    c.Bounds,
		Direction: c.Direction,
		Thickness: c.BandThickness,
		Midpoint:  c.Midpoint,
	}
}

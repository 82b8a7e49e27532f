// Package volume converts between mixer decibels and fader positions.
//
// The curve is db = 60*log10(p/100), which keeps the upper half of the
// fader for the range operators actually ride.
package volume

import (
	"fmt"
	"math"
)

const (
	// MinDecibels is the level reported for a fully closed fader
	MinDecibels = -96.0
	// MaxDecibels is unity gain
	MaxDecibels = 0.0
	// MutedThreshold is the level at or below which a source counts as muted
	MutedThreshold = -100.0
	// MaxPosition is the fully open fader position
	MaxPosition = 100.0
	// DefaultDecibels is used when the engine has not reported a level yet
	DefaultDecibels = -10.0
)

// ToSliderPosition maps a level in dB onto a fader position in [0,100]
func ToSliderPosition(db float64) float64 {
	if math.IsNaN(db) || db <= MinDecibels {
		return 0
	}
	if db >= MaxDecibels {
		return MaxPosition
	}
	return MaxPosition * math.Pow(10, db/60)
}

// ToDecibels maps a fader position in [0,100] onto a level in [-96,0] dB
func ToDecibels(position float64) float64 {
	if math.IsNaN(position) || position <= 0 {
		return MinDecibels
	}
	if position >= MaxPosition {
		return MaxDecibels
	}
	db := 60 * math.Log10(position/MaxPosition)
	if db < MinDecibels {
		return MinDecibels
	}
	return db
}

// IsMuted reports whether db is at or below the muted threshold
func IsMuted(db float64) bool {
	return db <= MutedThreshold
}

// Label formats a level for display
func Label(db float64) string {
	if IsMuted(db) {
		return "-∞"
	}
	return fmt.Sprintf("%.1fdB", db)
}

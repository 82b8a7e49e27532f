package volume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSliderPosition(t *testing.T) {
	testCases := []struct {
		name     string
		db       float64
		expected float64
	}{
		{name: "unity gain", db: 0, expected: 100},
		{name: "above unity clamps", db: 6, expected: 100},
		{name: "floor", db: -96, expected: 0},
		{name: "below floor clamps", db: -120, expected: 0},
		{name: "minus sixty", db: -60, expected: 10},
		{name: "minus thirty", db: -30, expected: 31.6227766},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ToSliderPosition(tc.db), 1e-6)
		})
	}
}

func TestToDecibels(t *testing.T) {
	testCases := []struct {
		name     string
		position float64
		expected float64
	}{
		{name: "closed", position: 0, expected: -96},
		{name: "negative clamps", position: -5, expected: -96},
		{name: "open", position: 100, expected: 0},
		{name: "past open clamps", position: 150, expected: 0},
		{name: "ten percent", position: 10, expected: -60},
		{name: "half", position: 50, expected: -18.0617997},
		{name: "tiny position clamps to floor", position: 0.001, expected: -96},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ToDecibels(tc.position), 1e-6)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// below ~2.51 the curve drops under the -96 dB floor
	for p := 3.0; p <= 100; p += 0.5 {
		assert.InDelta(t, p, ToSliderPosition(ToDecibels(p)), 1e-6, "position %v", p)
	}
	for db := -95.0; db <= 0; db += 0.25 {
		assert.InDelta(t, db, ToDecibels(ToSliderPosition(db)), 1e-6, "db %v", db)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "-∞", Label(-100))
	assert.Equal(t, "-∞", Label(-140))
	assert.Equal(t, "-10.0dB", Label(DefaultDecibels))
	assert.Equal(t, "-96.0dB", Label(-96))
	assert.True(t, IsMuted(-100))
	assert.False(t, IsMuted(-99.9))
}

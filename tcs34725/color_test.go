package tcs34725

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLux(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  uint16
		expected uint16
	}{
		{name: "dark", r: 0, g: 0, b: 0, expected: 0},
		{name: "balanced white", r: 100, g: 100, b: 100, expected: 52},
		{name: "typical indoor", r: 1000, g: 800, b: 600, expected: 498},
		{name: "negative result wraps", r: 1000, g: 0, b: 0, expected: 65212},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Lux(test.r, test.g, test.b))
		})
	}
}

func TestColorTemperature(t *testing.T) {
	t.Run("degenerate chromaticity", func(t *testing.T) {
		assert.Zero(t, ColorTemperature(0, 0, 0))
	})
	t.Run("intensity invariant", func(t *testing.T) {
		// CCT depends on chromaticity only, not on brightness
		assert.Equal(t, ColorTemperature(100, 100, 100), ColorTemperature(500, 500, 500))
	})
	t.Run("balanced channels", func(t *testing.T) {
		cct := ColorTemperature(100, 100, 100)
		assert.InDelta(t, 8890, int(cct), 5)
	})
	t.Run("near white", func(t *testing.T) {
		cct := ColorTemperature(1000, 800, 600)
		assert.InDelta(t, 3499, int(cct), 5)
	})
}

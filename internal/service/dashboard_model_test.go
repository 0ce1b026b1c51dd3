package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		expected float64
	}{
		{"zero previous", 5000, 0, 0},
		{"both zero", 0, 0, 0},
		{"drop", 0, 10000, -100},
		{"ten percent down", 9000, 10000, -10},
		{"growth", 15000, 10000, 50},
		{"rounded", 1, 3, -66.67},
		{"negative previous", 50, -100, -150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentageChange(tt.current, tt.previous)
			assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
			assert.InDelta(t, tt.expected, got, 0.005)
		})
	}
}

func TestPercentageChange_MatchesFormula(t *testing.T) {
	for _, pair := range [][2]int64{{123456, 98765}, {1, 7}, {987654321, 123456789}} {
		expected := float64(pair[0]-pair[1]) / float64(pair[1]) * 100
		assert.InDelta(t, expected, PercentageChange(pair[0], pair[1]), 0.005)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "436.44", FormatAmount(43644))
	assert.Equal(t, "-0.05", FormatAmount(-5))
	assert.Equal(t, "0.00", FormatAmount(0))
}

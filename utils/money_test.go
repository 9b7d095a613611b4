package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.0},
		{1.006, 1.01},
		{0, 0},
		{1234.5678, 1234.57},
		{-1.006, -1.01},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round2(tt.in), 1e-9, "Round2(%v)", tt.in)
	}
}

func TestRoundIDR(t *testing.T) {
	assert.Equal(t, 110000.0, RoundIDR(110000.11))
	assert.Equal(t, 110001.0, RoundIDR(110000.5))
	assert.Equal(t, 0.0, RoundIDR(0.4))
}

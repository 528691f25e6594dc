package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeather_TractionModifier(t *testing.T) {
	tests := []struct {
		condition string
		expected  float64
	}{
		{"clear", 1.0},
		{"rain", 0.8},
		{"storm", 0.7},
		{"fog", 1.0}, // unknown condition is neutral
		{"", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			assert.Equal(t, tt.expected, Weather{Condition: tt.condition}.TractionModifier())
		})
	}
}

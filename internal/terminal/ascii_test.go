package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestASCIIBar(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		width    int
		expected string
	}{
		{"empty", 0, 10, "[          ]"},
		{"half", 50, 10, "[=====     ]"},
		{"full", 100, 5, "[=====]"},
		{"fractional percent", 5.94, 20, "[=                   ]"},
		{"clamped above", 250, 4, "[====]"},
		{"clamped below", -10, 4, "[    ]"},
		{"zero width", 50, 0, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := asciiBar(tt.percent, tt.width)
			assert.Equal(t, tt.expected, result)
			assert.Len(t, result, tt.width+2)
		})
	}
}

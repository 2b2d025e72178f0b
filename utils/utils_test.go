package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1, Min(2, 1))
	assert.Equal(t, -3, Min(-3, 0))
}

func TestNormalizedPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0712345678", "254712345678"},
		{" 0712345678 ", "254712345678"},
		{"254712345678", "254712345678"},
		{"+254712345678", "+254712345678"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizedPhone(tc.in, "254"), "input %q", tc.in)
	}
}

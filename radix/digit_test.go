package radix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/edgesort/radix"
)

func TestTotalDigits(t *testing.T) {
	cases := []struct {
		numVertices, base, want int
	}{
		{0, 10, 0},
		{-5, 10, 0},
		{1, 10, 1},
		{9, 10, 1},
		{10, 10, 2},
		{99, 10, 2},
		{100, 10, 3},
		{1_000_000, 10, 7},
		{1, 2, 1},
		{8, 2, 4},
		{255, 16, 2},
		{256, 16, 3},
		{65535, 256, 2},
		{math.MaxInt, 2, 63},
		{100, 1, 0},
		{100, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, radix.TotalDigits(tc.numVertices, tc.base),
			"TotalDigits(%d, %d)", tc.numVertices, tc.base)
	}
}

func TestDigitValue(t *testing.T) {
	cases := []struct {
		id, digit, base, want int
	}{
		{0, 1, 10, 0},
		{7, 1, 10, 7},
		{7, 2, 10, 0},
		{1234, 1, 10, 4},
		{1234, 2, 10, 3},
		{1234, 3, 10, 2},
		{1234, 4, 10, 1},
		{1234, 5, 10, 0},
		{1234, 0, 10, 4},
		{0b1011, 1, 2, 1},
		{0b1011, 3, 2, 0},
		{0xAB, 1, 16, 0xB},
		{0xAB, 2, 16, 0xA},
		{1, 64, 2, 0},
		{1, 65, 2, 0},
		{math.MaxInt, 63, 2, 1},
		{math.MaxInt, 200, 10, 0},
		{1234, 1, 1, 0},
		{1234, 1, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, radix.DigitValue(tc.id, tc.digit, tc.base),
			"DigitValue(%d, %d, %d)", tc.id, tc.digit, tc.base)
	}
}

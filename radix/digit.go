package radix

import "math"

// TotalDigits returns the number of base-base digits of numVertices, which is
// the number of passes Sort performs. Zero for numVertices ≤ 0 or base < 2.
//
// The count comes from the vertex bound rather than the largest id present:
// numVertices = 10 yields two decimal passes even though ids stop at 9.
func TotalDigits(numVertices, base int) int {
	if base < 2 {
		return 0
	}
	digits := 0
	for n := numVertices; n > 0; n /= base {
		digits++
	}

	return digits
}

// DigitValue returns digit number digit (1 = least significant) of id in the
// given base: (id / base^(digit-1)) mod base. Digits below 1 are treated as 1.
// Returns 0 for base < 2 and for digits beyond the width of an int.
func DigitValue(id, digit, base int) int {
	if base < 2 {
		return 0
	}
	div := placeValue(digit, base)
	if div == 0 {
		return 0
	}

	return (id / div) % base
}

// placeValue returns base^(digit-1), or 0 when that power exceeds math.MaxInt.
// Sort never reaches the overflow case: its digits stop at TotalDigits.
func placeValue(digit, base int) int {
	mod := 1
	for i := 1; i < digit; i++ {
		if mod > math.MaxInt/base {
			return 0
		}
		mod *= base
	}

	return mod
}

package fiscalcode

import (
	"fmt"

	dErrors "fiscale/pkg/domain-errors"
)

// Control character computation, as defined by D.M. 23 dicembre 1976.
//
// Each of the first 15 characters is mapped to a numeric value through one of
// two tables depending on its 1-indexed position parity; the values are
// summed modulo 26 and the remainder indexes the alphabet. The algorithm is
// defined over the literal characters, so omocodia substitutions must NOT be
// decoded first.

// oddValues assigns values to characters in odd (1-indexed) positions.
// The assignment is fixed and non-monotonic.
var oddValues = map[byte]int{
	'0': 1, '1': 0, '2': 5, '3': 7, '4': 9,
	'5': 13, '6': 15, '7': 17, '8': 19, '9': 21,
	'A': 1, 'B': 0, 'C': 5, 'D': 7, 'E': 9,
	'F': 13, 'G': 15, 'H': 17, 'I': 19, 'J': 21,
	'K': 2, 'L': 4, 'M': 18, 'N': 20, 'O': 11,
	'P': 3, 'Q': 6, 'R': 8, 'S': 12, 'T': 14,
	'U': 16, 'V': 10, 'W': 22, 'X': 25, 'Y': 24, 'Z': 23,
}

// evenValues assigns values to characters in even (1-indexed) positions:
// digits map to themselves, letters to their alphabetic index.
func evenValue(c byte) (int, bool) {
	switch {
	case isDigit(c):
		return int(c - '0'), true
	case isLetter(c):
		return int(c - 'A'), true
	default:
		return 0, false
	}
}

// ControlChar computes the expected control character from the first 15
// characters of a fiscal code. The input must already be in normal form.
func ControlChar(first15 string) (byte, error) {
	if len(first15) != Length-1 {
		return 0, dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("control character requires %d characters, got %d", Length-1, len(first15)))
	}

	sum := 0
	for i := 0; i < len(first15); i++ {
		c := first15[i]
		if (i+1)%2 == 1 {
			v, ok := oddValues[c]
			if !ok {
				return 0, dErrors.New(dErrors.CodeInvalidInput, "formato non valido")
			}
			sum += v
		} else {
			v, ok := evenValue(c)
			if !ok {
				return 0, dErrors.New(dErrors.CodeInvalidInput, "formato non valido")
			}
			sum += v
		}
	}

	return byte('A' + sum%26), nil
}

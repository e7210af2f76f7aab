// Package fiscalcode implements the codec for the Italian Codice Fiscale,
// the 16-character personal fiscal identifier.
//
// The code is partitioned into fixed zones: surname fragment (3 letters),
// given-name fragment (3 letters), birth year (2 digits), birth month
// (1 letter), birth day combined with sex (2 digits, 41-71 means female),
// birth-place cadastral code (4 characters) and a control character.
//
// All functions are pure and safe for concurrent use; the lookup tables are
// package-level values that are never mutated after initialization.
package fiscalcode

import (
	"fmt"
	"strings"
	"unicode"
)

// Length is the exact length of a well-formed fiscal code.
const Length = 16

// Result reports the outcome of validating a fiscal code.
//
// IsValid reflects the positional grammar only (length and character
// classes). Checksum problems are warnings, never hard failures: codes in
// the wild carry omocodia-altered or simply mistyped control characters and
// must still be usable.
type Result struct {
	IsValid         bool     `json:"is_valid"`
	IsChecksumValid bool     `json:"is_checksum_valid"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
}

// charClass identifies the character class a position must match.
type charClass int

const (
	classLetter charClass = iota
	classAlnum
)

// grammar maps each 0-indexed position to its required character class:
// positions 1-6 letters, 7-8 alphanumeric, 9 letter, 10-11 alphanumeric,
// 12 letter, 13-15 alphanumeric, 16 letter (1-indexed).
var grammar = [Length]charClass{
	classLetter, classLetter, classLetter,
	classLetter, classLetter, classLetter,
	classAlnum, classAlnum,
	classLetter,
	classAlnum, classAlnum,
	classLetter,
	classAlnum, classAlnum, classAlnum,
	classLetter,
}

// Normalize upper-cases the input and strips all whitespace. Every other
// operation in this package assumes this normal form.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate checks the positional grammar and the control character of a raw
// fiscal code. Grammar violations are hard errors; a control character
// mismatch or a detected omocodia substitution is reported as a warning.
func Validate(raw string) Result {
	code := Normalize(raw)
	res := Result{}

	if len(code) != Length {
		res.Errors = append(res.Errors, fmt.Sprintf("lunghezza non valida: %d caratteri (attesi %d)", len(code), Length))
		return res
	}
	if !matchesGrammar(code) {
		res.Errors = append(res.Errors, "formato non valido")
		return res
	}

	res.IsValid = true

	expected, err := ControlChar(code[:Length-1])
	if err == nil && code[Length-1] == expected {
		res.IsChecksumValid = true
	} else {
		res.Warnings = append(res.Warnings, "checksum non valido")
	}

	if DecodeOmocodia(code) != code {
		res.Warnings = append(res.Warnings, "variante omocodica rilevata")
	}

	return res
}

// IsWellFormed reports whether the normalized code matches the positional
// grammar. It is a convenience for callers that do not need the full Result.
func IsWellFormed(raw string) bool {
	code := Normalize(raw)
	return len(code) == Length && matchesGrammar(code)
}

func matchesGrammar(code string) bool {
	for i := 0; i < Length; i++ {
		c := code[i]
		switch grammar[i] {
		case classLetter:
			if !isLetter(c) {
				return false
			}
		case classAlnum:
			if !isLetter(c) && !isDigit(c) {
				return false
			}
		}
	}
	return true
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

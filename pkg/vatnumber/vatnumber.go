// Package vatnumber implements the codec for the Italian Partita IVA, the
// 11-digit VAT registration number: taxpayer code (7 digits), provincial
// office code (3 digits) and a Luhn-variant check digit.
//
// All functions are pure and safe for concurrent use.
package vatnumber

import (
	"fmt"
	"strings"
	"unicode"

	dErrors "fiscale/pkg/domain-errors"
)

// Length is the exact number of digits in a well-formed VAT number.
const Length = 11

// CountryPrefix is the ISO country prefix accepted on input and applied by
// FormatWithPrefix.
const CountryPrefix = "IT"

// Result reports the outcome of validating a VAT number.
//
// IsValid reflects format only; a check-digit mismatch is a warning because
// transcribed numbers must remain usable. Formatted carries the normalized
// 11-digit string when the format is valid.
type Result struct {
	IsValid         bool     `json:"is_valid"`
	IsChecksumValid bool     `json:"is_checksum_valid"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
	Formatted       string   `json:"formatted,omitempty"`
	TaxpayerCode    string   `json:"taxpayer_code,omitempty"`
	OfficeCode      string   `json:"office_code,omitempty"`
}

// Normalize upper-cases the input, strips whitespace and hyphens, and drops
// a leading country prefix.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return strings.TrimPrefix(b.String(), CountryPrefix)
}

// Validate checks the 11-digit grammar, the all-zero sentinel and the check
// digit of a raw VAT number. Office codes outside the known issued range are
// reported as warnings, since new codes are issued over time.
func Validate(raw string) Result {
	n := Normalize(raw)
	res := Result{}

	if len(n) != Length {
		res.Errors = append(res.Errors, fmt.Sprintf("lunghezza non valida: %d cifre (attese %d)", len(n), Length))
		return res
	}
	for i := 0; i < len(n); i++ {
		if n[i] < '0' || n[i] > '9' {
			res.Errors = append(res.Errors, "formato non valido")
			return res
		}
	}
	if n == strings.Repeat("0", Length) {
		res.Errors = append(res.Errors, "partita IVA composta da soli zeri")
		return res
	}

	res.IsValid = true
	res.Formatted = n
	res.TaxpayerCode = n[:7]
	res.OfficeCode = n[7:10]

	expected, err := ControlDigit(n[:Length-1])
	if err == nil && n[Length-1] == expected {
		res.IsChecksumValid = true
	} else {
		res.Warnings = append(res.Warnings, "checksum non valido")
	}

	if !knownOfficeCode(res.OfficeCode) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("codice ufficio %s fuori dall'intervallo atteso", res.OfficeCode))
	}

	return res
}

// ControlDigit computes the expected check digit from the first 10 digits:
// digits in odd 1-indexed positions are summed directly, digits in even
// positions are doubled (minus 9 when the double exceeds 9), and the digit
// that brings the total to a multiple of 10 is the check digit.
func ControlDigit(first10 string) (byte, error) {
	if len(first10) != Length-1 {
		return 0, dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("control digit requires %d digits, got %d", Length-1, len(first10)))
	}

	sum := 0
	for i := 0; i < len(first10); i++ {
		c := first10[i]
		if c < '0' || c > '9' {
			return 0, dErrors.New(dErrors.CodeInvalidInput, "formato non valido")
		}
		d := int(c - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	check := (10 - sum%10) % 10
	return byte('0' + check), nil
}

// FormatWithPrefix normalizes the input and prepends the country prefix.
// Invalid input is returned unchanged.
func FormatWithPrefix(raw string) string {
	res := Validate(raw)
	if !res.IsValid {
		return raw
	}
	return CountryPrefix + res.Formatted
}

// knownOfficeCode reports whether the provincial office code falls in the
// issued range 001-100 or is one of the special values 120 and 121.
func knownOfficeCode(code string) bool {
	n := 0
	for i := 0; i < len(code); i++ {
		n = n*10 + int(code[i]-'0')
	}
	return (n >= 1 && n <= 100) || n == 120 || n == 121
}

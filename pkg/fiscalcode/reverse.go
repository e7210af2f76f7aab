package fiscalcode

import (
	"fmt"
	"strconv"
	"time"
)

// Sex is the sex encoded in the birth-day zone of a fiscal code.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Date is a calendar date without time-of-day. It deliberately avoids
// time.Time so that out-of-range components never normalize silently.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Identity holds the birth data reverse-engineered from a fiscal code.
// Every field is best effort and may be absent when the input is malformed
// or the place code is not in the sample municipality table. Derived, never
// authoritative.
type Identity struct {
	BirthDate     *Date  `json:"birth_date,omitempty"`
	BirthPlace    string `json:"birth_place,omitempty"`
	Province      string `json:"province,omitempty"`
	CadastralCode string `json:"cadastral_code,omitempty"`
	Sex           Sex    `json:"sex,omitempty"`
}

// monthLetters is the official birth-month alphabet: A=1 .. T=12.
var monthLetters = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'H': 6,
	'L': 7, 'M': 8, 'P': 9, 'R': 10, 'S': 11, 'T': 12,
}

// ReverseEngineer extracts birth date, sex and birth place from a fiscal
// code, resolving the two-digit year against the current date.
func ReverseEngineer(raw string) Identity {
	return ReverseEngineerAt(raw, time.Now())
}

// ReverseEngineerAt is ReverseEngineer with an explicit reference time for
// the century heuristic: a two-digit year above (reference year mod 100)+5
// resolves to 19xx, otherwise 20xx. The heuristic is inherently ambiguous
// for people near the 100-year boundary; callers needing historical accuracy
// beyond that must resolve the century themselves.
func ReverseEngineerAt(raw string, ref time.Time) Identity {
	code := Normalize(raw)
	if len(code) != Length || !matchesGrammar(code) {
		return Identity{}
	}

	// Numeric sub-fields are only meaningful after omocodia decoding.
	decoded := DecodeOmocodia(code)

	var ident Identity

	year, yearOK := decodeYear(decoded[6:8], ref)
	month, monthOK := monthLetters[code[8]]
	day, sex, dayOK := decodeDaySex(decoded[9:11])
	if dayOK {
		ident.Sex = sex
	}
	if yearOK && monthOK && dayOK {
		ident.BirthDate = &Date{Year: year, Month: month, Day: day}
	}

	ident.CadastralCode = decoded[11:15]
	if m, ok := LookupMunicipality(ident.CadastralCode); ok {
		ident.BirthPlace = m.Name
		ident.Province = m.Province
	} else {
		// The table is an explicit sample: an unmatched code is expected,
		// surface it literally instead of fabricating a place.
		ident.BirthPlace = fmt.Sprintf("comune sconosciuto (codice %s)", ident.CadastralCode)
	}

	return ident
}

func decodeYear(twoDigits string, ref time.Time) (int, bool) {
	n, err := strconv.Atoi(twoDigits)
	if err != nil {
		return 0, false
	}
	threshold := ref.Year()%100 + 5
	if n > threshold {
		return 1900 + n, true
	}
	return 2000 + n, true
}

// decodeDaySex interprets the omocodia-decoded day zone: values above 40
// are female days shifted by 40, everything else is a male day. The zone is
// decoded, not validated: a day like 35 is reported as-is, since the codec
// never repairs or rejects what the issuing authority wrote.
func decodeDaySex(twoDigits string) (int, Sex, bool) {
	n, err := strconv.Atoi(twoDigits)
	if err != nil {
		return 0, "", false
	}
	if n > 40 {
		return n - 40, SexFemale, true
	}
	return n, SexMale, true
}

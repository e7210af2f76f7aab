package fiscalcode

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Name-fragment generation: the first six characters of a fiscal code derive
// from surname and given name by consonant/vowel extraction.

const fragmentLen = 3

// foldDiacritics decomposes accented letters and drops the combining marks,
// so that "Nuñez" and "Nunez" extract the same consonants.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NameFragment generates the 6-character fragment a fiscal code would carry
// for the given surname and given name: three characters per name, consonants
// first, then vowels, padded with 'X'. For given names with more than three
// consonants the official algorithm takes the first, third and fourth,
// skipping the second.
func NameFragment(surname, givenName string) string {
	return fragment(surname, false) + fragment(givenName, true)
}

// MatchesName reports whether the code's first six characters equal the
// fragment generated from the supplied names. Equality means the code is
// consistent with that surname and given name.
func MatchesName(rawCode, surname, givenName string) bool {
	code := Normalize(rawCode)
	if len(code) < 2*fragmentLen {
		return false
	}
	return code[:2*fragmentLen] == NameFragment(surname, givenName)
}

func fragment(name string, isGivenName bool) string {
	consonants, vowels := splitLetters(name)

	if isGivenName && len(consonants) > fragmentLen {
		consonants = []byte{consonants[0], consonants[2], consonants[3]}
	}

	var b strings.Builder
	b.Grow(fragmentLen)
	b.Write(consonants)
	b.WriteString(string(vowels))
	frag := b.String()
	if len(frag) > fragmentLen {
		frag = frag[:fragmentLen]
	}
	for len(frag) < fragmentLen {
		frag += "X"
	}
	return frag
}

// splitLetters strips non-letters, folds diacritics and separates the
// remaining A-Z characters into consonants and vowels, preserving order.
func splitLetters(name string) (consonants, vowels []byte) {
	folded, _, err := transform.String(foldDiacritics, name)
	if err != nil {
		folded = name
	}

	for _, r := range strings.ToUpper(folded) {
		if r < 'A' || r > 'Z' {
			continue
		}
		c := byte(r)
		switch c {
		case 'A', 'E', 'I', 'O', 'U':
			vowels = append(vowels, c)
		default:
			consonants = append(consonants, c)
		}
	}
	return consonants, vowels
}

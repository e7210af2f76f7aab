package fiscalcode

// Omocodia handling.
//
// When two people would receive an identical code, the issuing authority
// substitutes letters for digits at fixed positions, rightmost first. The
// numeric sub-fields (birth year, birth day, cadastral digits) must be
// decoded back before interpretation.

// omocodiaLetters maps each substitution letter back to the digit it stands for.
var omocodiaLetters = map[byte]byte{
	'L': '0', 'M': '1', 'N': '2', 'P': '3', 'Q': '4',
	'R': '5', 'S': '6', 'T': '7', 'U': '8', 'V': '9',
}

// omocodiaPositions are the 0-indexed positions that may carry a substitution
// letter (1-indexed 7, 8, 10, 11, 13, 14, 15).
var omocodiaPositions = [...]int{6, 7, 9, 10, 12, 13, 14}

// DecodeOmocodia replaces omocodia substitution letters with the digits they
// stand for at the seven substitutable positions. Characters that are already
// digits are left unchanged, so the operation is idempotent and a no-op on a
// code without substitutions. Inputs shorter than 16 characters are returned
// as-is.
func DecodeOmocodia(code string) string {
	if len(code) != Length {
		return code
	}

	decoded := []byte(code)
	changed := false
	for _, pos := range omocodiaPositions {
		if d, ok := omocodiaLetters[decoded[pos]]; ok {
			decoded[pos] = d
			changed = true
		}
	}
	if !changed {
		return code
	}
	return string(decoded)
}

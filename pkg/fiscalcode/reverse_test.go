package fiscalcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refTime = time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)

func TestReverseEngineerAt_ReferenceCode(t *testing.T) {
	// Mario Rossi, born in Rome on 1 January 1980.
	ident := ReverseEngineerAt("RSSMRA80A01H501U", refTime)

	require.NotNil(t, ident.BirthDate)
	assert.Equal(t, Date{Year: 1980, Month: 1, Day: 1}, *ident.BirthDate)
	assert.Equal(t, SexMale, ident.Sex)
	assert.Equal(t, "H501", ident.CadastralCode)
	assert.Equal(t, "Roma", ident.BirthPlace)
	assert.Equal(t, "RM", ident.Province)
}

func TestReverseEngineerAt_CenturyHeuristic(t *testing.T) {
	// Threshold at the 2026 reference is 26+5=31: above resolves to 19xx,
	// at or below to 20xx.
	t.Run("above threshold is 19xx", func(t *testing.T) {
		ident := ReverseEngineerAt("RSSMRA32A01H501U", refTime)
		require.NotNil(t, ident.BirthDate)
		assert.Equal(t, 1932, ident.BirthDate.Year)
	})

	t.Run("at threshold is 20xx", func(t *testing.T) {
		ident := ReverseEngineerAt("RSSMRA31A01H501U", refTime)
		require.NotNil(t, ident.BirthDate)
		assert.Equal(t, 2031, ident.BirthDate.Year)
	})

	t.Run("below threshold is 20xx", func(t *testing.T) {
		ident := ReverseEngineerAt("RSSMRA20A01H501U", refTime)
		require.NotNil(t, ident.BirthDate)
		assert.Equal(t, 2020, ident.BirthDate.Year)
	})
}

func TestReverseEngineerAt_DayAndSex(t *testing.T) {
	t.Run("female days are shifted by 40", func(t *testing.T) {
		// Giovanna Bianchi, born in Naples on 1 February 1970 (day zone 41).
		ident := ReverseEngineerAt("BNCGNN70B41F839W", refTime)
		require.NotNil(t, ident.BirthDate)
		assert.Equal(t, Date{Year: 1970, Month: 2, Day: 1}, *ident.BirthDate)
		assert.Equal(t, SexFemale, ident.Sex)
		assert.Equal(t, "Napoli", ident.BirthPlace)
		assert.Equal(t, "NA", ident.Province)
	})

	t.Run("day partition covers the full 1-71 range", func(t *testing.T) {
		for d := 1; d <= 71; d++ {
			code := []byte("RSSMRA80A00H501U")
			code[9] = byte('0' + d/10)
			code[10] = byte('0' + d%10)
			ident := ReverseEngineerAt(string(code), refTime)

			require.NotNil(t, ident.BirthDate, "day zone %02d", d)
			if d > 40 {
				assert.Equal(t, SexFemale, ident.Sex, "day zone %02d", d)
				assert.Equal(t, d-40, ident.BirthDate.Day, "day zone %02d", d)
			} else {
				assert.Equal(t, SexMale, ident.Sex, "day zone %02d", d)
				assert.Equal(t, d, ident.BirthDate.Day, "day zone %02d", d)
			}
		}
	})

	t.Run("day zone is decoded not validated", func(t *testing.T) {
		// 35 is not a calendar day, but any value at or below 40 is male
		// with the day reported as written.
		ident := ReverseEngineerAt("RSSMRA80A35H501U", refTime)
		require.NotNil(t, ident.BirthDate)
		assert.Equal(t, SexMale, ident.Sex)
		assert.Equal(t, 35, ident.BirthDate.Day)

		// Above 71 the female shift still applies.
		ident = ReverseEngineerAt("RSSMRA80A72H501U", refTime)
		require.NotNil(t, ident.BirthDate)
		assert.Equal(t, SexFemale, ident.Sex)
		assert.Equal(t, 32, ident.BirthDate.Day)
	})
}

func TestReverseEngineerAt_OmocodeDecodesNumericZones(t *testing.T) {
	// Same person as RSSMRA80A01H501U behind a full omocodia substitution.
	ident := ReverseEngineerAt("RSSMRAULALMHRLMM", refTime)

	require.NotNil(t, ident.BirthDate)
	assert.Equal(t, Date{Year: 1980, Month: 1, Day: 1}, *ident.BirthDate)
	assert.Equal(t, SexMale, ident.Sex)
	assert.Equal(t, "H501", ident.CadastralCode)
	assert.Equal(t, "Roma", ident.BirthPlace)
}

func TestReverseEngineerAt_UnknownMonthLetter(t *testing.T) {
	// G is not in the month alphabet: no composed date, but day and sex still decode.
	ident := ReverseEngineerAt("RSSMRA80G01H501U", refTime)
	assert.Nil(t, ident.BirthDate)
	assert.Equal(t, SexMale, ident.Sex)
	assert.Equal(t, "H501", ident.CadastralCode)
}

func TestReverseEngineerAt_UnknownMunicipality(t *testing.T) {
	ident := ReverseEngineerAt("RSSMRA80A01A001U", refTime)
	assert.Equal(t, "A001", ident.CadastralCode)
	assert.Equal(t, "comune sconosciuto (codice A001)", ident.BirthPlace)
	assert.Empty(t, ident.Province)
}

func TestReverseEngineerAt_MalformedInput(t *testing.T) {
	assert.Equal(t, Identity{}, ReverseEngineerAt("", refTime))
	assert.Equal(t, Identity{}, ReverseEngineerAt("RSSMRA80A01H501", refTime))
	assert.Equal(t, Identity{}, ReverseEngineerAt("1SSMRA80A01H501U", refTime))
}

func TestLookupMunicipality(t *testing.T) {
	m, ok := LookupMunicipality("F205")
	require.True(t, ok)
	assert.Equal(t, Municipality{Name: "Milano", Province: "MI"}, m)

	m, ok = LookupMunicipality("Z404")
	require.True(t, ok)
	assert.Equal(t, "EE", m.Province)

	_, ok = LookupMunicipality("X999")
	assert.False(t, ok)
}

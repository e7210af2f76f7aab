package fiscalcode

// Municipality identifies an Italian municipality (or a foreign country,
// province "EE") by its cadastral code.
type Municipality struct {
	Name     string `json:"name"`
	Province string `json:"province"`
}

// municipalities is a deliberately partial sample of the national cadastral
// registry, covering the major cities plus a handful of foreign-country
// codes. An unmatched code is an expected outcome, not an error.
var municipalities = map[string]Municipality{
	"A662": {Name: "Bari", Province: "BA"},
	"A944": {Name: "Bologna", Province: "BO"},
	"B354": {Name: "Cagliari", Province: "CA"},
	"C351": {Name: "Catania", Province: "CT"},
	"D612": {Name: "Firenze", Province: "FI"},
	"D969": {Name: "Genova", Province: "GE"},
	"E506": {Name: "Livorno", Province: "LI"},
	"F205": {Name: "Milano", Province: "MI"},
	"F839": {Name: "Napoli", Province: "NA"},
	"G273": {Name: "Palermo", Province: "PA"},
	"G702": {Name: "Pisa", Province: "PI"},
	"H501": {Name: "Roma", Province: "RM"},
	"H703": {Name: "Salerno", Province: "SA"},
	"L219": {Name: "Torino", Province: "TO"},
	"L424": {Name: "Trieste", Province: "TS"},
	"L736": {Name: "Venezia", Province: "VE"},
	"L781": {Name: "Verona", Province: "VR"},

	// Foreign countries.
	"Z100": {Name: "Albania", Province: "EE"},
	"Z110": {Name: "Francia", Province: "EE"},
	"Z112": {Name: "Germania", Province: "EE"},
	"Z114": {Name: "Regno Unito", Province: "EE"},
	"Z129": {Name: "Romania", Province: "EE"},
	"Z133": {Name: "Svizzera", Province: "EE"},
	"Z404": {Name: "Stati Uniti d'America", Province: "EE"},
}

// LookupMunicipality resolves a 4-character cadastral code against the
// sample table.
func LookupMunicipality(code string) (Municipality, bool) {
	m, ok := municipalities[code]
	return m, ok
}

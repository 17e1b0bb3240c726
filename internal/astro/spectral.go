package astro

import "github.com/nightfall/orrery/internal/stellar"

// knownSpectralTypes gives Morgan-Keenan spectral types, in the same messy
// textual form found in real catalogs, for the well-known stars in
// defaultStars. Coverage is intentionally partial: most of defaultStars'
// hundred-odd fainter entries have no reliably known type on hand, and
// stellar.Parse degrades gracefully to an Unknown-spectral NormalStar for
// anything not listed here.
var knownSpectralTypes = map[string]string{
	"Sirius":     "A1V",
	"Canopus":    "A9II",
	"Arcturus":   "K1.5III",
	"Vega":       "A0V",
	"Capella":    "G3III",
	"Rigel":      "B8Ia",
	"Procyon":    "F5IV",
	"Achernar":   "B6V",
	"Betelgeuse": "M1Ia",
	"Hadar":      "B1III",
	"Altair":     "A7V",
	"Acrux":      "B0.5IV",
	"Aldebaran":  "K5III",
	"Antares":    "M1.5Iab",
	"Spica":      "B1III",
	"Pollux":     "K0III",
	"Fomalhaut":  "A3V",
	"Deneb":      "A2Ia",
	"Regulus":    "B8IV",
	"Castor":     "A1V",
	"Bellatrix":  "B2III",
	"Alnilam":    "B0Ia",
	"Alnitak":    "O9.5Iab",
	"Dubhe":      "K0III",
	"Polaris":    "F7Ib",
	"Algol":      "B8V",
	"Mizar":      "A2V",
	"Mirach":     "M0III",
}

// SpectralType returns the cataloged spectral-type text for a star name, or
// "" if none is known.
func SpectralType(name string) string {
	return knownSpectralTypes[name]
}

// Class returns the parsed stellar classification for s, derived from its
// cataloged spectral-type text if known. Stars with no cataloged type parse
// to an Unknown-spectral NormalStar, which is a valid, non-error result.
func (s Star) Class() stellar.Class {
	return stellar.Parse(knownSpectralTypes[s.Name])
}

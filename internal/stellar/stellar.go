// Package stellar implements the compact encoding, decoding, rendering, and
// parsing of Morgan-Keenan-style stellar spectral types: normal stars,
// Wolf-Rayet stars, brown dwarfs, white dwarfs, neutron stars, and black
// holes. It supports the legacy V1 and current V2 16-bit packed wire forms
// and a forgiving parser for the irregular text found in real catalogs.
package stellar

// StarType is the outer discriminant of a Class value.
type StarType uint8

const (
	NormalStar StarType = iota
	WhiteDwarf
	NeutronStar
	BlackHole
)

func (t StarType) String() string {
	switch t {
	case NormalStar:
		return "NormalStar"
	case WhiteDwarf:
		return "WhiteDwarf"
	case NeutronStar:
		return "NeutronStar"
	case BlackHole:
		return "BlackHole"
	default:
		return "Unknown"
	}
}

// SpectralClass is a single flat enumeration whose meaning is interpreted
// according to the owning Class's StarType, mirroring the source's reuse of
// one enum across NormalStar, WhiteDwarf, and NeutronStar families: the
// numeric values legitimately overlap across families (SpecO and SpecD are
// both 0) and must never be compared or rendered without also knowing the
// StarType.
type SpectralClass uint8

// NormalStar spectral classes. Unknown is a reserved placeholder among the
// 18 ordinals; the other 17 are the real classes named in the data model.
const (
	SpecO SpectralClass = iota
	SpecB
	SpecA
	SpecF
	SpecG
	SpecK
	SpecM
	SpecR
	SpecS
	SpecN
	SpecWC
	SpecWN
	SpecUnknown
	SpecL
	SpecT
	SpecY
	SpecC
	SpecWO
)

// WhiteDwarf spectral classes. Numerically restart from 0, distinct
// namespace from NormalStar's despite the shared Go type.
const (
	SpecD SpectralClass = iota
	SpecDA
	SpecDB
	SpecDC
	SpecDO
	SpecDQ
	SpecDX
	SpecDZ
	WDClassCount = SpecDZ + 1
)

// NeutronStar spectral classes. Also restart from 0.
const (
	SpecQ SpectralClass = iota
	SpecQN
	SpecQP
	SpecQM
	NeutronStarClassCount = SpecQM + 1
)

// Subclass is an integer 0..9 refining spectral class, or SubclassUnknown.
type Subclass uint8

// SubclassUnknown is the sentinel for "no subclass recorded".
const SubclassUnknown Subclass = 0xff

// LuminosityClass is the Roman-numeral supergiant/dwarf axis; always
// LumUnknown for non-NormalStar types.
type LuminosityClass uint8

const (
	LumIa0 LuminosityClass = iota
	LumIa
	LumIb
	LumII
	LumIII
	LumIV
	LumV
	LumVI
	LumUnknown
)

// Class is a small, freely copyable value type: (starType, spectralClass,
// subclass, luminosityClass). It has no owned heap storage and no identity;
// two instances compare equal exactly when their V2-packed forms match.
type Class struct {
	StarType        StarType
	SpectralClass   SpectralClass
	Subclass        Subclass
	LuminosityClass LuminosityClass
}

// BlackHoleClass is the canonical fully-Unknown BlackHole value.
func BlackHoleClass() Class {
	return Class{
		StarType:        BlackHole,
		SpectralClass:   SpecUnknown,
		Subclass:        SubclassUnknown,
		LuminosityClass: LumUnknown,
	}
}

// Equal reports whether c and o pack identically under V2 — the definition
// of equivalence used for catalog indexing.
func (c Class) Equal(o Class) bool {
	return c.PackV2() == o.PackV2()
}

// Less implements the strict weak ordering used to sort catalog entries,
// consistent with V2-pack ordering (spec Testable Property 5).
func (c Class) Less(o Class) bool {
	return c.PackV2() < o.PackV2()
}

// ApparentColor returns the display RGB triple derived from spectral class.
// Every non-NormalStar type is white (a WhiteDwarf's D-family spectralClass
// value numerically aliases a NormalStar letter and is not consulted here:
// only NormalStar-interpreted spectral letters produce a non-default color).
func (c Class) ApparentColor() (r, g, b float64) {
	if c.StarType != NormalStar {
		return 1.0, 1.0, 1.0
	}
	switch c.SpectralClass {
	case SpecO:
		return 0.7, 0.8, 1.0
	case SpecB:
		return 0.8, 0.9, 1.0
	case SpecA:
		return 1.0, 1.0, 1.0
	case SpecF:
		return 1.0, 1.0, 0.88
	case SpecG:
		return 1.0, 1.0, 0.75
	case SpecK:
		return 1.0, 0.9, 0.7
	case SpecM:
		return 1.0, 0.7, 0.7
	case SpecR, SpecS, SpecN, SpecC:
		return 1.0, 0.4, 0.4
	case SpecL, SpecT:
		return 0.75, 0.2, 0.2
	case SpecY:
		return 0.5, 0.175, 0.125
	default:
		return 1.0, 1.0, 1.0
	}
}

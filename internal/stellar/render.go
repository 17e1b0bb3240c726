package stellar

import "strconv"

// normalStarLetters renders a NormalStar spectralClass ordinal to its
// canonical letter(s). The source indexes a single-character string
// "OBAFGKMRSNWW?LTYC", which cannot disambiguate the three Wolf-Rayet
// types (WC/WN/WO share a single 'W' slot, and WO's ordinal in fact falls
// outside that string's bounds). Str renders WC/WN/WO with their full
// two-letter prefixes instead; see DESIGN.md.
var normalStarLetters = map[SpectralClass]string{
	SpecO:  "O",
	SpecB:  "B",
	SpecA:  "A",
	SpecF:  "F",
	SpecG:  "G",
	SpecK:  "K",
	SpecM:  "M",
	SpecR:  "R",
	SpecS:  "S",
	SpecN:  "N",
	SpecWC: "WC",
	SpecWN: "WN",
	SpecL:  "L",
	SpecT:  "T",
	SpecY:  "Y",
	SpecC:  "C",
	SpecWO: "WO",
}

var luminositySuffix = map[LuminosityClass]string{
	LumIa0: " I-a0",
	LumIa:  " I-a",
	LumIb:  " I-b",
	LumII:  " II",
	LumIII: " III",
	LumIV:  " IV",
	LumV:   " V",
	LumVI:  " VI",
}

// Str renders c to its canonical text form. Each star type is treated
// disjointly — the source's str() has unannotated fallthrough between the
// WhiteDwarf, NeutronStar, and BlackHole cases that must not be replicated.
func (c Class) Str() string {
	switch c.StarType {
	case BlackHole:
		return "X"

	case WhiteDwarf:
		return "WD" + digitOrEmpty(c.Subclass)

	case NeutronStar:
		return "Q" + digitOrEmpty(c.Subclass)

	case NormalStar:
		letter, ok := normalStarLetters[c.SpectralClass]
		if !ok {
			letter = "?"
		}
		return letter + digitOrEmpty(c.Subclass) + luminositySuffix[c.LuminosityClass]

	default:
		return "?"
	}
}

func digitOrEmpty(s Subclass) string {
	if s == SubclassUnknown || s > 9 {
		return ""
	}
	return strconv.Itoa(int(s))
}

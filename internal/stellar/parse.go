package stellar

// parseState enumerates the finite-state machine's states. Parsing always
// terminates: every state either consumes a character, transitions to
// end, or transitions to a state that does one of those on its next step.
type parseState int

const (
	stateBegin parseState = iota
	stateEnd
	stateWolfRayetType
	stateSubdwarfPrefix
	stateNormalStarClass
	stateNormalStarSubclass
	stateNormalStarSubclassDecimal
	stateNormalStarSubclassFinal
	stateLumClassBegin
	stateLumClassI
	stateLumClassII
	stateLumClassV
	stateLumClassIdash
	stateLumClassIa
	stateWDType
	stateWDExtendedType
	stateWDSubclass
	stateNeutronStarType
	stateNeutronStarExtendedType
	stateNeutronStarSubclass
)

// Parse decodes a possibly short, possibly malformed spectral-type string
// into a Class. Output is always valid; unrecognized fields remain at
// their Unknown sentinel and excess trailing characters are silently
// ignored. The machine reads one byte at a time, including a synthetic
// NUL sentinel past the end of the string, and never backtracks.
func Parse(s string) Class {
	i := 0
	state := stateBegin

	starType := NormalStar
	specClass := SpecUnknown
	lumClass := LumUnknown
	subclass := SubclassUnknown

	next := func() byte {
		if i < len(s) {
			return s[i]
		}
		return 0
	}

	for state != stateEnd {
		c := next()

		switch state {
		case stateBegin:
			switch c {
			case 'Q':
				starType = NeutronStar
				specClass = SpecQ
				state = stateNeutronStarType
				i++
			case 'X':
				starType = BlackHole
				state = stateEnd
			case 'D':
				starType = WhiteDwarf
				specClass = SpecD
				state = stateWDType
				i++
			case 's':
				state = stateSubdwarfPrefix
				i++
			case '?':
				state = stateEnd
			default:
				state = stateNormalStarClass
			}

		case stateSubdwarfPrefix:
			if c == 'd' {
				lumClass = LumVI
				state = stateNormalStarClass
				i++
			} else {
				state = stateEnd
			}

		case stateNormalStarClass:
			switch c {
			case 'W':
				state = stateWolfRayetType
			case 'O':
				specClass = SpecO
				state = stateNormalStarSubclass
			case 'B':
				specClass = SpecB
				state = stateNormalStarSubclass
			case 'A':
				specClass = SpecA
				state = stateNormalStarSubclass
			case 'F':
				specClass = SpecF
				state = stateNormalStarSubclass
			case 'G':
				specClass = SpecG
				state = stateNormalStarSubclass
			case 'K':
				specClass = SpecK
				state = stateNormalStarSubclass
			case 'M':
				specClass = SpecM
				state = stateNormalStarSubclass
			case 'R':
				specClass = SpecR
				state = stateNormalStarSubclass
			case 'S':
				specClass = SpecS
				state = stateNormalStarSubclass
			case 'N':
				specClass = SpecN
				state = stateNormalStarSubclass
			case 'L':
				specClass = SpecL
				state = stateNormalStarSubclass
			case 'T':
				specClass = SpecT
				state = stateNormalStarSubclass
			case 'Y':
				specClass = SpecY
				state = stateNormalStarSubclass
			case 'C':
				specClass = SpecC
				state = stateNormalStarSubclass
			default:
				state = stateEnd
			}
			i++

		case stateWolfRayetType:
			switch c {
			case 'C':
				specClass = SpecWC
				state = stateNormalStarSubclass
				i++
			case 'N':
				specClass = SpecWN
				state = stateNormalStarSubclass
				i++
			case 'O':
				specClass = SpecWO
				state = stateNormalStarSubclass
				i++
			default:
				specClass = SpecWC
				state = stateNormalStarSubclass
			}

		case stateNormalStarSubclass:
			if isDigit(c) {
				subclass = Subclass(c - '0')
				state = stateNormalStarSubclassDecimal
				i++
			} else {
				state = stateLumClassBegin
			}

		case stateNormalStarSubclassDecimal:
			if c == '.' {
				state = stateNormalStarSubclassFinal
				i++
			} else {
				state = stateLumClassBegin
			}

		case stateNormalStarSubclassFinal:
			if isDigit(c) {
				state = stateLumClassBegin
			} else {
				state = stateEnd
			}
			i++

		case stateLumClassBegin:
			// A space before the luminosity class, as Str writes it, is
			// skipped.
			switch c {
			case ' ':
				state = stateLumClassBegin
			case 'I':
				state = stateLumClassI
			case 'V':
				state = stateLumClassV
			default:
				state = stateEnd
			}
			i++

		case stateLumClassI:
			switch c {
			case 'I':
				state = stateLumClassII
			case 'V':
				lumClass = LumIV
				state = stateEnd
			case 'a':
				state = stateLumClassIa
			case 'b':
				lumClass = LumIb
				state = stateEnd
			case '-':
				state = stateLumClassIdash
			default:
				lumClass = LumIb
				state = stateEnd
			}
			i++

		case stateLumClassII:
			// Deliberately does not consume on the default branch: the
			// machine still reaches End either way, but the asymmetry
			// mirrors the source and must be preserved.
			if c == 'I' {
				lumClass = LumIII
			} else {
				lumClass = LumII
			}
			state = stateEnd

		case stateLumClassIdash:
			switch c {
			case 'a':
				state = stateLumClassIa
				i++
			default:
				lumClass = LumIb
				state = stateEnd
			}

		case stateLumClassIa:
			if c == '0' {
				lumClass = LumIa0
			} else {
				lumClass = LumIa
			}
			state = stateEnd

		case stateLumClassV:
			if c == 'I' {
				lumClass = LumVI
			} else {
				lumClass = LumV
			}
			state = stateEnd

		case stateWDType:
			switch c {
			case 'A':
				specClass = SpecDA
				i++
			case 'B':
				specClass = SpecDB
				i++
			case 'C':
				specClass = SpecDC
				i++
			case 'O':
				specClass = SpecDO
				i++
			case 'Q':
				specClass = SpecDQ
				i++
			case 'X':
				specClass = SpecDX
				i++
			case 'Z':
				specClass = SpecDZ
				i++
			default:
				specClass = SpecD
			}
			state = stateWDExtendedType

		case stateWDExtendedType:
			switch c {
			case 'A', 'B', 'C', 'O', 'Q', 'Z', 'X', 'V', 'P', 'H', 'E':
				i++
			default:
				state = stateWDSubclass
			}

		case stateWDSubclass:
			if isDigit(c) {
				subclass = Subclass(c - '0')
				i++
			}
			state = stateEnd

		case stateNeutronStarType:
			switch c {
			case 'N':
				specClass = SpecQN
				i++
			case 'P':
				specClass = SpecQP
				i++
			case 'M':
				specClass = SpecQM
				i++
			default:
				specClass = SpecQ
			}
			state = stateNeutronStarExtendedType

		case stateNeutronStarExtendedType:
			switch c {
			case 'P', 'M', 'N':
				i++
			default:
				state = stateNeutronStarSubclass
			}

		case stateNeutronStarSubclass:
			if isDigit(c) {
				subclass = Subclass(c - '0')
				i++
			}
			state = stateEnd

		default:
			state = stateEnd
		}
	}

	return Class{
		StarType:        starType,
		SpectralClass:   specClass,
		Subclass:        subclass,
		LuminosityClass: lumClass,
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

package stellar

// PackV2 encodes c into the current 16-bit wire form:
//
//	bits 15..13 starType        (3 bits)
//	bits 12..8  spectralClass   (5 bits)
//	bits  7..4  subclass        (4 bits)
//	bits  3..0  luminosityClass (4 bits)
//
// WhiteDwarf and NeutronStar spectralClass values are already dense from 0
// (SpecD, SpecQ), so no family-specific offset is needed here. Pack is
// infallible.
func (c Class) PackV2() uint16 {
	return uint16(c.StarType)<<13 |
		(uint16(c.SpectralClass)&0x1f)<<8 |
		(uint16(subclassBits(c.Subclass))&0xf)<<4 |
		uint16(c.LuminosityClass)&0xf
}

// PackV1 encodes c into the legacy 16-bit wire form:
//
//	bits 15..12 starType        (4 bits, only low 3 used)
//	bits 11..8  spectralClass   (4 bits)
//	bits  7..4  subclass        (4 bits)
//	bits  3..0  luminosityClass (4 bits)
//
// V1 predates Spectral_Y: a Y-classed NormalStar packs as Unknown, and any
// class beyond Y (Spectral_C, and Spectral_WO as below) is shifted down
// by one to reclaim Y's slot. Spectral_WO — added to the ordinal set after
// V1's 4-bit field was already full — is not representable and collides
// with SpecO on pack; see DESIGN.md. Pack is infallible.
func (c Class) PackV1() uint16 {
	var sc SpectralClass
	switch {
	case c.SpectralClass == SpecY:
		sc = SpecUnknown
	case c.SpectralClass > SpecY:
		sc = c.SpectralClass - 1
	default:
		sc = c.SpectralClass
	}
	return uint16(c.StarType)<<12 |
		(uint16(sc)&0xf)<<8 |
		(uint16(subclassBits(c.Subclass))&0xf)<<4 |
		uint16(c.LuminosityClass)&0xf
}

// subclassNone is the wire-form sentinel for SubclassUnknown: real subclass
// digits are 0-9, so 0xf is unused and free to reserve.
const subclassNone = 0xf

// subclassBits maps SubclassUnknown to the reserved wire sentinel so it
// round-trips distinctly from a real subclass digit of 0; a real digit
// passes through unchanged.
func subclassBits(s Subclass) Subclass {
	if s == SubclassUnknown {
		return subclassNone
	}
	return s
}

// unpackSubclass is subclassBits's inverse: the reserved wire sentinel
// decodes back to SubclassUnknown, everything else passes through.
func unpackSubclass(bits uint16) Subclass {
	if bits == subclassNone {
		return SubclassUnknown
	}
	return Subclass(bits)
}

// UnpackV2 decodes the current wire form. It fails with false (and a zero
// Class) when st encodes a reserved starType value or a WhiteDwarf or
// NeutronStar spectral class beyond that family's range.
func UnpackV2(st uint16) (Class, bool) {
	var c Class
	c.StarType = StarType(st >> 13)

	switch c.StarType {
	case NormalStar:
		c.SpectralClass = SpectralClass(st >> 8 & 0x1f)
		c.Subclass = unpackSubclass(st >> 4 & 0xf)
		c.LuminosityClass = LuminosityClass(st & 0xf)
	case WhiteDwarf:
		raw := SpectralClass(st >> 8 & 0xf)
		if raw >= WDClassCount {
			return Class{}, false
		}
		c.SpectralClass = SpecD + raw
		c.Subclass = unpackSubclass(st >> 4 & 0xf)
		c.LuminosityClass = LumUnknown
	case NeutronStar:
		raw := SpectralClass(st >> 8 & 0xf)
		if raw >= NeutronStarClassCount {
			return Class{}, false
		}
		c.SpectralClass = SpecQ + raw
		c.Subclass = unpackSubclass(st >> 4 & 0xf)
		c.LuminosityClass = LumUnknown
	case BlackHole:
		c.SpectralClass = SpecUnknown
		c.Subclass = SubclassUnknown
		c.LuminosityClass = LumUnknown
	default:
		return Class{}, false
	}
	return c, true
}

// UnpackV1 decodes the legacy wire form into c. WhiteDwarf and NeutronStar
// bounds violations, and reserved starType values, fail with false.
//
// NeutronStar preserves a source quirk documented in DESIGN.md: the
// spectral sub-type offset and the subclass digit are read from the same
// 4 bits (7..4) rather than the 4 bits the corresponding PackV1 wrote the
// spectral class into (11..8) — a NeutronStar only round-trips through V1
// when its subclass digit happens to equal its Q/QN/QP/QM family index.
func UnpackV1(st uint16) (Class, bool) {
	var c Class
	c.StarType = StarType(st >> 12)

	switch c.StarType {
	case NormalStar:
		raw := SpectralClass(st >> 8 & 0xf)
		if raw == SpecY {
			// StarDB Ver. 0x0100 predates Spectral_Y: this slot held
			// Spectral_C before Y was introduced into the ordinal set.
			raw = SpecC
		}
		c.SpectralClass = raw
		c.Subclass = unpackSubclass(st >> 4 & 0xf)
		c.LuminosityClass = LuminosityClass(st & 0xf)
	case WhiteDwarf:
		raw := SpectralClass(st >> 8 & 0xf)
		if raw >= WDClassCount {
			return Class{}, false
		}
		c.SpectralClass = SpecD + raw
		c.Subclass = unpackSubclass(st >> 4 & 0xf)
		c.LuminosityClass = LumUnknown
	case NeutronStar:
		raw := SpectralClass(st >> 4 & 0xf)
		if raw >= NeutronStarClassCount {
			return Class{}, false
		}
		c.SpectralClass = SpecQ + raw
		c.Subclass = unpackSubclass(st >> 4 & 0xf)
		c.LuminosityClass = LumUnknown
	case BlackHole:
		c.SpectralClass = SpecUnknown
		c.Subclass = SubclassUnknown
		c.LuminosityClass = LumUnknown
	default:
		return Class{}, false
	}
	return c, true
}

// Package ephemeris loads NASA JPL DE-series and IMCCE INPOP binary
// ephemeris files and evaluates planetary positions from their
// Chebyshev-coefficient records.
package ephemeris

import "github.com/nightfall/orrery/internal/logging"

// Body identifies a queryable position. Mercury through Nutation have
// coefficients stored directly in coeffInfo; Libration has its own
// coeffInfo slot outside that array; SSB and Earth are virtual and
// computed rather than looked up.
type Body int

const (
	Mercury Body = iota
	Venus
	EarthMoonBary
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Moon
	Sun
	Nutation
	nStoredItems

	Libration
	SSB
	Earth
)

// NItems counts the bodies whose coefficients live in the header's
// coeffInfo array. Nutation is the final such item and, uniquely, has 2
// components rather than 3. Libration is stored separately.
const NItems = int(nStoredItems)

// maxChebyshevCoeffs bounds a single component's coefficient count, an
// invariant checked at load and re-asserted before interpolation.
const maxChebyshevCoeffs = 32

// allGranulesSentinel marks a body whose coefficients span the whole
// record rather than being subdivided into granules.
const allGranulesSentinel = 0xFFFFFFFF

func (b Body) String() string {
	switch b {
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case EarthMoonBary:
		return "EarthMoonBary"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	case Pluto:
		return "Pluto"
	case Moon:
		return "Moon"
	case Sun:
		return "Sun"
	case Nutation:
		return "Nutation"
	case Libration:
		return "Libration"
	case SSB:
		return "SSB"
	case Earth:
		return "Earth"
	default:
		return "Unknown"
	}
}

// coeffInfo locates one body's coefficients within every record: offset is
// the 0-based double index where they begin, nCoeffs is the per-component,
// per-granule length, and nGranules subdivides the record's interval
// (allGranulesSentinel means the body spans the whole record).
type coeffInfo struct {
	offset    uint32
	nCoeffs   uint32
	nGranules uint32
}

// Record is one time-indexed block of Chebyshev coefficients. t1-t0 equals
// the ephemeris's DaysPerInterval for every record.
type Record struct {
	T0, T1 float64
	Coeffs []float64
}

// Ephemeris is the immutable, fully loaded state of one DE/INPOP file.
// Once Load returns successfully, GetPlanetPosition is safe to call
// concurrently from multiple goroutines: nothing here is mutated after
// construction.
type Ephemeris struct {
	DENum              int
	StartDate, EndDate float64
	DaysPerInterval    float64
	AU                 float64
	EarthMoonMassRatio float64
	swapBytes          bool
	recordSize         uint32
	coeffInfo          [NItems]coeffInfo
	librationInfo      coeffInfo
	records            []Record
	log                *logging.Logger
}

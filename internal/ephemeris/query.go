package ephemeris

import (
	"github.com/nightfall/orrery/internal/astro"
	"github.com/nightfall/orrery/internal/logging"
)

// GetPlanetPosition returns body's position in kilometers at TDB Julian
// date tjd, relative to the Solar System Barycenter (geocentric for Moon).
// The query is infallible: out-of-range tjd is clamped to the ephemeris's
// covered span, and body is expected to be one of the enumerated values.
func (e *Ephemeris) GetPlanetPosition(body Body, tjd float64) astro.Vec3 {
	switch body {
	case SSB:
		return astro.Vec3{}
	case Earth:
		emb := e.GetPlanetPosition(EarthMoonBary, tjd)
		moon := e.GetPlanetPosition(Moon, tjd)
		return emb.Sub(moon.Scale(1 / (e.EarthMoonMassRatio + 1)))
	}

	if tjd < e.StartDate {
		tjd = e.StartDate
	}
	if tjd > e.EndDate {
		tjd = e.EndDate
	}

	recNo := int((tjd - e.StartDate) / e.DaysPerInterval)
	if recNo >= len(e.records) {
		recNo = len(e.records) - 1
	}
	if recNo < 0 {
		recNo = 0
	}
	rec := e.records[recNo]

	var info coeffInfo
	if body == Libration {
		info = e.librationInfo
	} else {
		info = e.coeffInfo[body]
	}

	log := e.log
	if log == nil {
		log = logging.Discard()
	}

	var u float64
	coeffsStart := int(info.offset)
	if info.nGranules == allGranulesSentinel {
		u = 2*(tjd-rec.T0)/e.DaysPerInterval - 1
	} else {
		daysPerGranule := e.DaysPerInterval / float64(info.nGranules)
		granule := int((tjd - rec.T0) / daysPerGranule)
		if granule < 0 {
			granule = 0
		}
		if granule >= int(info.nGranules) {
			granule = int(info.nGranules) - 1
		}
		granuleStart := rec.T0 + float64(granule)*daysPerGranule
		u = 2*(tjd-granuleStart)/daysPerGranule - 1
		coeffsStart += granule * int(info.nCoeffs) * 3
		log.Debug("granule selection: body=%v granule=%d/%d", body, granule, info.nGranules)
	}

	nCoeffs := int(info.nCoeffs)
	if nCoeffs > maxChebyshevCoeffs {
		nCoeffs = maxChebyshevCoeffs
	}

	x := evalChebyshev(rec.Coeffs[coeffsStart:coeffsStart+nCoeffs], u)
	y := evalChebyshev(rec.Coeffs[coeffsStart+nCoeffs:coeffsStart+2*nCoeffs], u)
	z := evalChebyshev(rec.Coeffs[coeffsStart+2*nCoeffs:coeffsStart+3*nCoeffs], u)

	return astro.Vec3{X: x, Y: y, Z: z}
}

// evalChebyshev sums coeffs[i]*T_i(u) using the standard three-term
// recurrence T0=1, T1=u, Tj=2u*Tj-1-Tj-2.
func evalChebyshev(coeffs []float64, u float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	t0, t1 := 1.0, u
	sum := coeffs[0] * t0
	if len(coeffs) > 1 {
		sum += coeffs[1] * t1
	}
	for j := 2; j < len(coeffs); j++ {
		t2 := 2*u*t1 - t0
		sum += coeffs[j] * t2
		t0, t1 = t1, t2
	}
	return sum
}

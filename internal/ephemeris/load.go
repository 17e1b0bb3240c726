package ephemeris

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/nightfall/orrery/internal/binio"
	"github.com/nightfall/orrery/internal/logging"
	"github.com/nightfall/orrery/internal/xerrors"
)

// headerSize is the fixed byte length of the packed header preceding the
// constants-value record: three 84-byte labels, 400 six-byte constant
// names, three doubles, a u32 constant count, two more doubles, NItems
// coeffInfo triples, the deNum field, and the trailing libration triple.
const headerSize = 3*84 + 400*6 + 3*8 + 4 + 8 + 8 + NItems*12 + 4 + 12

const (
	offStartDate  = 3*84 + 400*6
	offEndDate    = offStartDate + 8
	offDPI        = offEndDate + 8
	offNConstants = offDPI + 8
	offAU         = offNConstants + 4
	offEMRatio    = offAU + 8
	offCoeffInfo  = offEMRatio + 8
	offDENum      = offCoeffInfo + NItems*12
	offLibration  = offDENum + 4
)

func headerU32(buf []byte, off int, swap bool) uint32 {
	if !swap {
		return binary.LittleEndian.Uint32(buf[off : off+4])
	}
	var rev [4]byte
	rev[0], rev[1], rev[2], rev[3] = buf[off+3], buf[off+2], buf[off+1], buf[off]
	return binary.LittleEndian.Uint32(rev[:])
}

func headerF64(buf []byte, off int, swap bool) float64 {
	if !swap {
		return math.Float64frombits(binary.LittleEndian.Uint64(buf[off : off+8]))
	}
	var rev [8]byte
	for i := 0; i < 8; i++ {
		rev[i] = buf[off+7-i]
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(rev[:]))
}

// Load reads a complete DE/INPOP ephemeris from r, discovering its
// endianness from the deNum header field and validating structural
// invariants before returning. r is consumed exclusively; Load does not
// seek and must not be called on a stream shared with another reader.
func Load(r io.Reader) (*Ephemeris, error) {
	return LoadWithLogger(r, logging.Discard())
}

// LoadWithLogger behaves like Load but reports the endianness discovery
// outcome and the derived record layout at debug level on log, mirroring
// how the CLI wires a *logging.Logger through its own fetch path.
func LoadWithLogger(r io.Reader, log *logging.Logger) (*Ephemeris, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, xerrors.WrapIO(err, "read ephemeris header")
	}

	rawDENum := headerU32(header, offDENum, false)
	swappedDENum := headerU32(header, offDENum, true)

	var swap bool
	switch {
	case rawDENum == 100:
		swap = false
	case swappedDENum == 100:
		swap = true
	case rawDENum > 1<<15 && swappedDENum >= 200:
		swap = true
	case rawDENum <= 1<<15 && rawDENum >= 200:
		swap = false
	default:
		return nil, xerrors.NewInvalidFormat("unrecognized ephemeris header (deNum=%d, swapped=%d)", rawDENum, swappedDENum)
	}

	deNum := rawDENum
	if swap {
		deNum = swappedDENum
	}
	isINPOP := deNum == 100
	log.Debug("ephemeris header: deNum=%d swap=%v inpop=%v", deNum, swap, isINPOP)

	e := &Ephemeris{
		DENum:              int(deNum),
		StartDate:          headerF64(header, offStartDate, swap),
		EndDate:            headerF64(header, offEndDate, swap),
		DaysPerInterval:    headerF64(header, offDPI, swap),
		AU:                 headerF64(header, offAU, swap),
		EarthMoonMassRatio: headerF64(header, offEMRatio, swap),
		swapBytes:          swap,
		log:                log,
	}

	var computedRecordSize uint32 = 2 // leading t0/t1 pair
	for i := 0; i < NItems; i++ {
		base := offCoeffInfo + i*12
		rawOffset := headerU32(header, base, swap)
		nCoeffs := headerU32(header, base+4, swap)
		rawGranules := headerU32(header, base+8, swap)

		if nCoeffs > maxChebyshevCoeffs {
			return nil, xerrors.NewInvalidFormat("body %d: nCoeffs %d exceeds maximum %d", i, nCoeffs, maxChebyshevCoeffs)
		}

		components := uint32(3)
		if i == NItems-1 {
			components = 2 // Nutation
		}
		effectiveGranules := rawGranules
		storedGranules := rawGranules
		if rawGranules <= 1 {
			effectiveGranules = 1
			storedGranules = allGranulesSentinel
		}
		computedRecordSize += nCoeffs * effectiveGranules * components

		e.coeffInfo[i] = coeffInfo{
			offset:    rawOffset - 3,
			nCoeffs:   nCoeffs,
			nGranules: storedGranules,
		}
	}

	{
		base := offLibration
		nCoeffs := headerU32(header, base+4, swap)
		rawGranules := headerU32(header, base+8, swap)
		if nCoeffs > maxChebyshevCoeffs {
			return nil, xerrors.NewInvalidFormat("libration: nCoeffs %d exceeds maximum %d", nCoeffs, maxChebyshevCoeffs)
		}
		effectiveGranules := rawGranules
		storedGranules := rawGranules
		if rawGranules <= 1 {
			effectiveGranules = 1
			storedGranules = allGranulesSentinel
		}
		computedRecordSize += nCoeffs * effectiveGranules * 3
		e.librationInfo = coeffInfo{
			offset:    headerU32(header, base, swap) - 3,
			nCoeffs:   nCoeffs,
			nGranules: storedGranules,
		}
	}

	br := binio.New(r)

	var recordSize uint32
	if isINPOP {
		explicit, err := br.ReadU32(swap)
		if err != nil {
			return nil, err
		}
		recordSize = explicit
		if err := br.Skip(int64(recordSize)*8 - int64(headerSize) - 4); err != nil {
			return nil, err
		}
	} else {
		recordSize = computedRecordSize
		if err := br.Skip(int64(recordSize)*8 - int64(headerSize)); err != nil {
			return nil, err
		}
	}
	e.recordSize = recordSize
	log.Debug("ephemeris record layout: recordSize=%d words", recordSize)

	// Skip the constants-value record.
	if err := br.Skip(int64(recordSize) * 8); err != nil {
		return nil, err
	}

	if e.DaysPerInterval <= 0 {
		return nil, xerrors.NewInvalidFormat("non-positive daysPerInterval %v", e.DaysPerInterval)
	}
	nRecords := int((e.EndDate - e.StartDate) / e.DaysPerInterval)
	if nRecords <= 0 {
		return nil, xerrors.NewInvalidFormat("non-positive record count %d", nRecords)
	}

	records := make([]Record, nRecords)
	for i := 0; i < nRecords; i++ {
		t0, err := br.ReadF64(swap)
		if err != nil {
			return nil, err
		}
		t1, err := br.ReadF64(swap)
		if err != nil {
			return nil, err
		}
		coeffs := make([]float64, recordSize-2)
		for j := range coeffs {
			v, err := br.ReadF64(swap)
			if err != nil {
				return nil, err
			}
			coeffs[j] = v
		}
		records[i] = Record{T0: t0, T1: t1, Coeffs: coeffs}
	}
	e.records = records

	return e, nil
}

// Package binio provides endian-aware primitive readers over a forward-only
// byte source, the leaf dependency of the ephemeris loader.
package binio

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/nightfall/orrery/internal/xerrors"
)

// Reader wraps an io.Reader with endian-aware uint32/float64 primitives.
// It never seeks; callers that need to skip bytes call Skip, which reads
// and discards.
type Reader struct {
	r io.Reader
}

// New wraps r for endian-aware primitive reads.
func New(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadU32 reads four bytes as a host-native (little-endian) uint32. If swap
// is true the byte order is reversed before interpretation, yielding the
// value as the opposite-endian host would see it.
func (b *Reader) ReadU32(swap bool) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(b.r, buf[:]); err != nil {
		return 0, xerrors.WrapIO(err, "read u32")
	}
	if swap {
		buf[0], buf[1], buf[2], buf[3] = buf[3], buf[2], buf[1], buf[0]
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadF64 reads eight bytes as an IEEE-754 binary64, byte-swapping first if
// swap is true.
func (b *Reader) ReadF64(swap bool) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(b.r, buf[:]); err != nil {
		return 0, xerrors.WrapIO(err, "read f64")
	}
	if swap {
		for i, j := 0, 7; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	bits := binary.LittleEndian.Uint64(buf[:])
	return math.Float64frombits(bits), nil
}

// ReadBytes reads exactly n raw bytes.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return nil, xerrors.WrapIO(err, "read bytes")
	}
	return buf, nil
}

// Skip discards n bytes.
func (b *Reader) Skip(n int64) error {
	if n <= 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, b.r, n); err != nil {
		return xerrors.WrapIO(err, "skip")
	}
	return nil
}

// Package xerrors centralizes error construction and inspection for orrery
// on top of github.com/cockroachdb/errors, giving every core package stack
// traces and typed sentinels instead of bespoke error structs.
package xerrors

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Is    = crdb.Is
	As    = crdb.As
)

// Sentinel error kinds from the ephemeris/classification error model:
// a stream failure, a header that fails endianness discrimination or a
// bounds check, and an unpack of a reserved starType value.
var (
	// ErrIO signals a stream read failure during ephemeris load.
	ErrIO = New("orrery: i/o error")

	// ErrInvalidFormat signals a header that fails endianness discrimination
	// or a record-count bound exceeded on unpack.
	ErrInvalidFormat = New("orrery: invalid format")

	// ErrDecode signals an unpack that encountered a reserved starType value.
	ErrDecode = New("orrery: decode error")
)

// WrapIO wraps err as an ErrIO with the given context.
func WrapIO(err error, context string) error {
	return Wrap(Wrap(ErrIO, err.Error()), context)
}

// NewInvalidFormat builds an ErrInvalidFormat with a formatted message.
func NewInvalidFormat(format string, args ...interface{}) error {
	return Wrap(ErrInvalidFormat, Newf(format, args...).Error())
}

// NewDecode builds an ErrDecode with a formatted message.
func NewDecode(format string, args ...interface{}) error {
	return Wrap(ErrDecode, Newf(format, args...).Error())
}

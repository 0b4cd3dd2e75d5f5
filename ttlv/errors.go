package ttlv

import (
	"github.com/ansel1/merry"
)

// Sentinel error kinds. Every error this package constructs wraps one of
// these via merry, so callers can classify a failure with merry.Is(err, ttlv.ErrReadValue)
// without caring about the exact primitive that produced it. Errors
// returned by the underlying Writer (Malloc, Flush) are passed through
// unwrapped.
var (
	ErrReadValue           = merry.New("read value error")
	ErrWriteOverflow       = merry.New("write overflow error")
	ErrInvalidPrimitiveLen = merry.New("invalid primitive length")
	ErrType                = merry.New("type error")
	ErrRange               = merry.New("range error")
	ErrStreamNotEmpty      = merry.New("stream not empty")
	ErrEnumerationValue    = merry.New("enumeration value error")
)

func readValueErrorf(format string, a ...interface{}) error {
	return merry.Prependf(ErrReadValue, format, a...)
}

func writeOverflowErrorf(format string, a ...interface{}) error {
	return merry.Prependf(ErrWriteOverflow, format, a...)
}

func invalidLenErrorf(format string, a ...interface{}) error {
	return merry.Prependf(ErrInvalidPrimitiveLen, format, a...)
}

func typeErrorf(format string, a ...interface{}) error {
	return merry.Prependf(ErrType, format, a...)
}

func rangeErrorf(format string, a ...interface{}) error {
	return merry.Prependf(ErrRange, format, a...)
}

func streamNotEmptyError(extra int) error {
	return merry.WithValue(merry.Prependf(ErrStreamNotEmpty, "%d trailing byte(s)", extra), "extraBytes", extra)
}

func enumValueErrorf(format string, a ...interface{}) error {
	return merry.Prependf(ErrEnumerationValue, format, a...)
}

// tagMismatchError reports both the expected and observed tag in hex, as
// required by the header codec's read path.
func tagMismatchError(expected, observed Tag) error {
	return readValueErrorf("tag mismatch: expected %s, observed %s", expected.hexString(), observed.hexString())
}

func typeMismatchError(expected, observed Type) error {
	return readValueErrorf("type mismatch: expected %s (%#x), observed %s (%#x)", expected, byte(expected), observed, byte(observed))
}

func shortReadError(field string, want, got int) error {
	return readValueErrorf("short read on %s: wanted %d byte(s), got %d", field, want, got)
}

package ttlv

import "encoding/binary"

const lenLongInt = 8

// LongInteger bounds for signed 64-bit values.
const (
	LongIntegerMin = -9223372036854775808
	LongIntegerMax = 9223372036854775807
)

// LongInteger is the signed 64-bit primitive. Already 8-byte aligned,
// it carries no padding on the wire. DateTime reuses this exact wire
// format under a different type discriminant.
type LongInteger struct {
	Tag   Tag
	Value int64
}

// NewLongInteger constructs a LongInteger.
func NewLongInteger(tag Tag, value int64) LongInteger {
	return LongInteger{Tag: tag, Value: value}
}

// Validate is a no-op for any int64 value: the full int64 range is
// valid, it exists so LongInteger has the same shape as the other
// primitives.
func (l LongInteger) Validate() error {
	return nil
}

// Encode writes the header (type=LongInteger, length=8) then the 8-byte
// signed big-endian value.
func (l LongInteger) Encode(w Writer) error {
	return encodeLongIntegerLike(w, l.Tag, TypeLongInteger, l.Value)
}

// DecodeLongInteger reads a LongInteger's header and value off r,
// validating the tag and that length == 8.
func DecodeLongInteger(r Reader, tag Tag) (LongInteger, error) {
	value, err := decodeLongIntegerLike(r, tag, TypeLongInteger)
	if err != nil {
		return LongInteger{}, err
	}
	return LongInteger{Tag: tag, Value: value}, nil
}

// encodeLongIntegerLike is shared by LongInteger and DateTime, which are
// wire-identical apart from the type discriminant.
func encodeLongIntegerLike(w Writer, tag Tag, typ Type, value int64) error {
	if err := WriteHeader(w, tag, typ, lenLongInt); err != nil {
		return err
	}
	buf, err := w.Malloc(lenLongInt)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(buf, uint64(value))
	return nil
}

func decodeLongIntegerLike(r Reader, tag Tag, typ Type) (int64, error) {
	length, err := ReadHeader(r, tag, typ)
	if err != nil {
		return 0, err
	}
	if length != lenLongInt {
		return 0, invalidLenErrorf("long integer length: expected %d, observed %d", lenLongInt, length)
	}
	valBytes, err := r.Next(lenLongInt)
	if err != nil {
		return 0, shortReadError("long integer value", lenLongInt, len(valBytes))
	}
	return int64(binary.BigEndian.Uint64(valBytes)), nil
}

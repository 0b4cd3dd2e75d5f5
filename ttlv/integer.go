package ttlv

import "encoding/binary"

const lenInt = 4

// Integer bounds for signed 32-bit values.
const (
	IntegerMin = -2147483648
	IntegerMax = 2147483647
)

// IntegerMaxUnsigned is the upper bound accepted when an Integer is
// constructed with Unsigned: true (Enumeration reuses this wire format).
const IntegerMaxUnsigned = 4294967295

// Integer is the signed (or, in Unsigned mode, unsigned) 32-bit
// primitive. Its wire form always occupies 8 value-area bytes: the
// 4-byte value followed by 4 zero-padding bytes.
type Integer struct {
	Tag      Tag
	Unsigned bool
	Value    int64 // holds the unsigned value too; range-checked by mode
}

// NewInteger constructs a signed Integer. An int32 is always within
// [IntegerMin, IntegerMax]; no check is made here.
func NewInteger(tag Tag, value int32) Integer {
	return Integer{Tag: tag, Value: int64(value)}
}

// NewUnsignedInteger constructs an Integer in unsigned mode (used
// directly by Interval, and as Enumeration's wire representation). A
// uint32 is always within [0, IntegerMaxUnsigned]; no check is made here.
func NewUnsignedInteger(tag Tag, value uint32) Integer {
	return Integer{Tag: tag, Unsigned: true, Value: int64(value)}
}

// Validate checks Value against the range implied by Unsigned.
func (i Integer) Validate() error {
	if i.Unsigned {
		if i.Value < 0 || i.Value > IntegerMaxUnsigned {
			return rangeErrorf("unsigned integer value %d outside [0, %d]", i.Value, IntegerMaxUnsigned)
		}
		return nil
	}
	if i.Value < IntegerMin || i.Value > IntegerMax {
		return rangeErrorf("integer value %d outside [%d, %d]", i.Value, IntegerMin, IntegerMax)
	}
	return nil
}

// Encode writes the header (type=Integer, length=4) then the 4-byte
// value followed by 4 zero-padding bytes.
func (i Integer) Encode(w Writer) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := WriteHeader(w, i.Tag, TypeInteger, lenInt); err != nil {
		return err
	}
	return writeUnsignedValueArea(w, i.Value)
}

// writeUnsignedValueArea writes the shared 8-byte value area (4-byte
// value + 4-byte zero pad) used by Integer, Interval, and Enumeration.
// value is carried as int64 so this one helper serves both the signed
// and unsigned Integer modes; the bit pattern narrows identically for
// either interpretation.
func writeUnsignedValueArea(w Writer, value int64) error {
	buf, err := w.Malloc(lenInt + lenInt)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(buf[0:4], uint32(value))
	binary.BigEndian.PutUint32(buf[4:8], 0)
	return nil
}

// readUnsignedValueArea reads and validates the shared 8-byte value
// area (4-byte value + 4-byte zero pad), returning the value as an
// unsigned 32-bit quantity widened to int64.
func readUnsignedValueArea(r Reader) (int64, error) {
	valBytes, err := r.Next(lenInt)
	if err != nil {
		return 0, shortReadError("value", lenInt, len(valBytes))
	}
	padBytes, err := r.Next(lenInt)
	if err != nil {
		return 0, shortReadError("padding", lenInt, len(padBytes))
	}
	if binary.BigEndian.Uint32(padBytes) != 0 {
		err := readValueErrorf("non-zero padding: %#x", padBytes)
		log.Errorf("%s", err)
		return 0, err
	}
	return int64(binary.BigEndian.Uint32(valBytes)), nil
}

// DecodeInteger reads an Integer's header and value off r, validating
// the tag and that length == 4, and that the 4 padding bytes are zero.
func DecodeInteger(r Reader, tag Tag, unsigned bool) (Integer, error) {
	length, err := ReadHeader(r, tag, TypeInteger)
	if err != nil {
		return Integer{}, err
	}
	if length != lenInt {
		return Integer{}, invalidLenErrorf("integer length: expected %d, observed %d", lenInt, length)
	}

	raw, err := readUnsignedValueArea(r)
	if err != nil {
		return Integer{}, err
	}

	i := Integer{Tag: tag, Unsigned: unsigned}
	if unsigned {
		i.Value = raw
	} else {
		i.Value = int64(int32(uint32(raw)))
	}
	if err := i.Validate(); err != nil {
		return Integer{}, err
	}
	return i, nil
}

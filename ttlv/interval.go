package ttlv

import "time"

// Interval is a thin alias of unsigned Integer: identical wire
// encoding, discriminated only by its type byte. Value is carried on
// the wire as whole seconds, matching KMIP 1.1's Interval semantics;
// Encode truncates any sub-second part.
type Interval struct {
	Tag   Tag
	Value time.Duration
}

// NewInterval constructs an Interval.
func NewInterval(tag Tag, value time.Duration) Interval {
	return Interval{Tag: tag, Value: value}
}

// Encode writes the header (type=Interval, length=4) then the 4-byte
// unsigned second count followed by 4 zero-padding bytes.
func (i Interval) Encode(w Writer) error {
	seconds := i.Value / time.Second
	if seconds < 0 || seconds > IntegerMaxUnsigned {
		return rangeErrorf("interval value %s outside representable range", i.Value)
	}
	if err := WriteHeader(w, i.Tag, TypeInterval, lenInt); err != nil {
		return err
	}
	return writeUnsignedValueArea(w, int64(seconds))
}

// DecodeInterval reads an Interval's header and value off r, validating
// the tag and that length == 4.
func DecodeInterval(r Reader, tag Tag) (Interval, error) {
	length, err := ReadHeader(r, tag, TypeInterval)
	if err != nil {
		return Interval{}, err
	}
	if length != lenInt {
		return Interval{}, invalidLenErrorf("interval length: expected %d, observed %d", lenInt, length)
	}
	seconds, err := readUnsignedValueArea(r)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Tag: tag, Value: time.Duration(seconds) * time.Second}, nil
}

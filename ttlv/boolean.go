package ttlv

import "encoding/binary"

const lenBool = 8

// Boolean is the two-valued primitive. Its wire form is an unsigned
// big-endian 64-bit integer constrained to {0, 1}.
type Boolean struct {
	Tag   Tag
	Value bool
}

// NewBoolean constructs a Boolean.
func NewBoolean(tag Tag, value bool) Boolean {
	return Boolean{Tag: tag, Value: value}
}

// Encode writes the header (type=Boolean, length=8) then the 8-byte
// unsigned representation of Value (0 or 1).
func (b Boolean) Encode(w Writer) error {
	if err := WriteHeader(w, b.Tag, TypeBoolean, lenBool); err != nil {
		return err
	}
	buf, err := w.Malloc(lenBool)
	if err != nil {
		return err
	}
	var v uint64
	if b.Value {
		v = 1
	}
	binary.BigEndian.PutUint64(buf, v)
	return nil
}

// DecodeBoolean reads a Boolean's header and value off r, validating
// the tag, that length == 8, and that the decoded 64-bit value is
// exactly 0 or 1.
func DecodeBoolean(r Reader, tag Tag) (Boolean, error) {
	length, err := ReadHeader(r, tag, TypeBoolean)
	if err != nil {
		return Boolean{}, err
	}
	if length != lenBool {
		return Boolean{}, invalidLenErrorf("boolean length: expected %d, observed %d", lenBool, length)
	}
	valBytes, err := r.Next(lenBool)
	if err != nil {
		return Boolean{}, shortReadError("boolean value", lenBool, len(valBytes))
	}
	v := binary.BigEndian.Uint64(valBytes)
	switch v {
	case 0:
		return Boolean{Tag: tag, Value: false}, nil
	case 1:
		return Boolean{Tag: tag, Value: true}, nil
	default:
		err := readValueErrorf("boolean value: expected 0 or 1, observed %d", v)
		log.Errorf("%s", err)
		return Boolean{}, err
	}
}

package ttlv

import (
	"encoding/binary"
	"math"
)

const (
	lenTag    = 3
	lenType   = 1
	lenLength = 4
	lenHeader = lenTag + lenType + lenLength
)

// ReadHeader reads the fixed-width (tag, type, length) prefix shared by
// every primitive and validates it against expectedTag/expectedType. It
// returns the decoded length (the byte count of the value, excluding
// padding) on success.
func ReadHeader(r Reader, expectedTag Tag, expectedType Type) (uint32, error) {
	tagBytes, err := r.Next(lenTag)
	if err != nil {
		return 0, shortReadError("tag", lenTag, len(tagBytes))
	}
	tag := Tag(uint32(tagBytes[0])<<16 | uint32(tagBytes[1])<<8 | uint32(tagBytes[2]))
	if tag != expectedTag {
		err := tagMismatchError(expectedTag, tag)
		log.Errorf("%s", err)
		return 0, err
	}

	typeBytes, err := r.Next(lenType)
	if err != nil {
		return 0, shortReadError("type", lenType, len(typeBytes))
	}
	typ := Type(typeBytes[0])
	if typ != expectedType {
		err := typeMismatchError(expectedType, typ)
		log.Errorf("%s", err)
		return 0, err
	}

	lenBytes, err := r.Next(lenLength)
	if err != nil {
		return 0, shortReadError("length", lenLength, len(lenBytes))
	}
	return binary.BigEndian.Uint32(lenBytes), nil
}

// WriteHeader serializes tag, typ, and length as the fixed-width header
// prefix. length must fit in 32 bits (the variable-length primitives
// compute it from a Go int, which can be wider) and typ must be one of
// the ten KMIP §9.1 discriminants.
func WriteHeader(w Writer, tag Tag, typ Type, length int) error {
	if !typ.Valid() {
		return typeErrorf("unrecognized type discriminant %#x", byte(typ))
	}
	if length < 0 || length > math.MaxUint32 {
		return writeOverflowErrorf("length %d exceeds maximum of %d", length, uint32(math.MaxUint32))
	}

	buf, err := w.Malloc(lenHeader)
	if err != nil {
		return err
	}
	buf[0] = byte(tag >> 16)
	buf[1] = byte(tag >> 8)
	buf[2] = byte(tag)
	buf[3] = byte(typ)
	binary.BigEndian.PutUint32(buf[4:8], uint32(length))
	return nil
}

// IsTagNext peeks the next 3 bytes of r without consuming them and
// reports whether they decode to tag. A short read (fewer than 3 bytes
// available) reports false rather than erroring, so callers can use it
// freely to probe for optional or polymorphic fields.
func IsTagNext(tag Tag, r Reader) bool {
	b, ok := peekExact(r, lenTag)
	if !ok {
		return false
	}
	observed := Tag(uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]))
	return observed == tag
}

// IsTypeNext peeks the next 4 bytes of r (tag + type) without consuming
// them and reports whether the type byte equals typ.
func IsTypeNext(typ Type, r Reader) bool {
	b, ok := peekExact(r, lenTag+lenType)
	if !ok {
		return false
	}
	return Type(b[lenTag]) == typ
}

// IsOversized asserts that r has been fully drained. It is meant to be
// called after decoding a single top-level primitive off a stream that
// is expected to contain exactly one message. If bytes remain, it
// returns a stream-not-empty error carrying the count of trailing
// bytes; the stream is left fully consumed either way.
func IsOversized(r Reader) error {
	var extra int
	for {
		b, err := r.Next(1)
		if err != nil {
			break
		}
		extra += len(b)
	}
	if extra > 0 {
		return streamNotEmptyError(extra)
	}
	return nil
}
